package cmd

import (
	"os"

	"github.com/deepc-skill/deepc/inline"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/media"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(featuredCmd)
	featuredCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	featuredCmd.Flags().IntP("limit", "l", -1, "Show at most this many entries")
}

var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "List the whole catalog as featured media",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := loadSkill(cmd.Context(), false)

		featured := s.Featured()
		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit >= 0 && limit < len(featured) {
			featured = featured[:limit]
		}

		handleErr(inline.Write(featured, &inline.Options{
			Out:      os.Stdout,
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Query:    "featured",
			Category: media.Primary,
		}))
	},
}

func init() {
	rootCmd.AddCommand(playlistCmd)
	playlistCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	playlistCmd.Flags().Int("score", 0, "Confidence of the playlist (default from playlist.score)")
	playlistCmd.Flags().IntP("limit", "l", 0, "Number of entries (default from playlist.limit)")
}

var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "Show the featured playlist envelope",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		score := viper.GetInt(key.PlaylistScore)
		if cmd.Flags().Changed("score") {
			score = lo.Must(cmd.Flags().GetInt("score"))
		}

		limit := viper.GetInt(key.PlaylistLimit)
		if cmd.Flags().Changed("limit") {
			limit = lo.Must(cmd.Flags().GetInt("limit"))
		}

		s := loadSkill(cmd.Context(), false)
		playlist := s.Playlist(score, limit)

		options := &inline.Options{
			Out:      os.Stdout,
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Query:    "playlist",
			Category: media.Primary,
		}

		if options.Json {
			handleErr(inline.Write([]*media.Result{playlist}, options))
			return
		}

		handleErr(inline.Write(append([]*media.Result{playlist}, playlist.Playlist...), options))
	},
}
