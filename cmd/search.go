package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/history"
	"github.com/deepc-skill/deepc/icon"
	"github.com/deepc-skill/deepc/inline"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/log"
	"github.com/deepc-skill/deepc/media"
	"github.com/deepc-skill/deepc/open"
	"github.com/deepc-skill/deepc/query"
	"github.com/deepc-skill/deepc/style"
	"github.com/deepc-skill/deepc/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("category", "c", media.Primary.String(), "Category to search: movie or documentary")
	_ = searchCmd.RegisterFlagCompletionFunc("category", completionCategories)
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	searchCmd.Flags().StringP("pick", "p", "", "Keep only some results: first, last, all, [index], [from]-[to], @[substring]@")
	searchCmd.Flags().StringP("output", "o", "", "Write the output to a file")
	searchCmd.Flags().BoolP("sync", "s", false, "Sync the catalog before searching")
	searchCmd.Flags().Bool("open", false, "Open the first video result in the browser")

	searchCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

var searchCmd = &cobra.Command{
	Use:   "search [phrase]",
	Short: "Answer a voice phrase the way the skill would",
	Long: `Run a spoken phrase through the keyword matcher and scoring.

Results come in the order title matches, documentary matches, playlist.
The playlist is only offered when the phrase names the provider.`,
	Example: `  deepc search play Homecoming Massacre
  deepc search -c documentary play Is Genesis History
  deepc search -j play something on Deep C Digital`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			phrase = strings.Join(args, " ")
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			pick   = lo.Must(cmd.Flags().GetString("pick"))
			output = lo.Must(cmd.Flags().GetString("output"))
		)

		options := &inline.Options{
			Out:      os.Stdout,
			Json:     asJson,
			Query:    phrase,
			Category: categoryFlag(cmd),
		}

		if pick != "" {
			picker, err := inline.ParsePicker(pick)
			handleErr(err)
			options.Picker = mo.Some(picker)
		}

		if output == "" && !asJson {
			if w, _, err := util.TerminalSize(); err == nil {
				options.Width = w / 2
			}
		}

		s := loadSkill(cmd.Context(), lo.Must(cmd.Flags().GetBool("sync")))
		results, err := searchTo(s, options, output)
		handleErr(err)

		if len(results) > 0 {
			if viper.GetBool(key.SearchRememberQueries) {
				if err := query.Remember(phrase, 1); err != nil {
					log.Warn(err)
				}
			}

			if lo.Must(cmd.Flags().GetBool("open")) {
				watch(results)
			}
			return
		}

		if asJson {
			return
		}

		_, _ = fmt.Fprintf(os.Stderr, "%s No results for %s\n", icon.Get(icon.Fail), style.Fg(color.Yellow)(phrase))
		if suggestion, ok := query.Suggest(phrase).Get(); ok {
			_, _ = fmt.Fprintf(os.Stderr, "%s Did you mean %s?\n", icon.Get(icon.Search), style.Bold(suggestion))
		}
	},
}

// searchTo writes the answer to the output file, or to options.Out when
// output is empty. The file is closed before returning.
func searchTo(searcher inline.Searcher, options *inline.Options, output string) ([]*media.Result, error) {
	if output == "" {
		return inline.Run(searcher, options)
	}

	file, err := filesystem.API().Create(output)
	if err != nil {
		return nil, err
	}

	options.Out = file
	results, err := inline.Run(searcher, options)
	return results, errors.Join(err, file.Close())
}

// watch opens the first result that is not a playlist.
func watch(results []*media.Result) {
	r, ok := lo.Find(results, func(r *media.Result) bool {
		return !r.IsPlaylist()
	})
	if !ok {
		handleErr(errors.New("no video to open"))
	}

	handleErr(open.Watch(r, ""))
	if err := history.Save(r); err != nil {
		log.Warn(err)
	}
}
