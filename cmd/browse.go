package cmd

import (
	"strings"

	"github.com/deepc-skill/deepc/media"
	"github.com/deepc-skill/deepc/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringP("category", "c", media.Primary.String(), "Category to search: movie or documentary")
	_ = browseCmd.RegisterFlagCompletionFunc("category", completionCategories)
	browseCmd.Flags().BoolP("featured", "f", false, "Start on the whole catalog")
	browseCmd.Flags().StringP("browser", "b", "", "Open videos with this application")
}

var browseCmd = &cobra.Command{
	Use:   "browse [phrase]",
	Short: "Search and watch interactively",
	Run: func(cmd *cobra.Command, args []string) {
		s := loadSkill(cmd.Context(), false)

		handleErr(tui.Run(s, &tui.Options{
			Query:    strings.Join(args, " "),
			Category: categoryFlag(cmd),
			Featured: lo.Must(cmd.Flags().GetBool("featured")),
			Browser:  lo.Must(cmd.Flags().GetString("browser")),
		}))
	},
}
