package cmd

import (
	"encoding/json"
	"os"

	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/history"
	"github.com/deepc-skill/deepc/style"
	"github.com/deepc-skill/deepc/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().IntP("limit", "l", 20, "Show at most this many entries")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List what was opened for watching, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		watched, err := history.Get()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit >= 0 && limit < len(watched) {
			watched = watched[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(watched))
			return
		}

		for _, w := range watched {
			cmd.Printf(
				"%s %s %s\n",
				style.Faint(w.WatchedAt.Format("2006-01-02 15:04")),
				style.Bold(w.Title),
				style.Fg(color.Yellow)(util.Quantify(w.Times, "time", "times")),
			)
			cmd.Println("  " + style.Faint(w.URL))
		}
	},
}
