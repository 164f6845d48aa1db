package cmd

import (
	"encoding/json"
	"os"

	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/style"
	"github.com/deepc-skill/deepc/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type location struct {
	name        string
	path        func() string
	description string
	hidden      bool
}

var locations = []location{
	{"config", where.Config, "Configuration file and logs", false},
	{"catalog", where.Catalog, "Local mirror of the remote catalog", false},
	{"history", where.History, "Watched entries", false},
	{"logs", where.Logs, "Daily log files", false},
	{"cache", where.Cache, "Cache directory", true},
	{"queries", where.Queries, "Remembered search phrases", true},
	{"temp", where.Temp, "Scratch directory, wiped on start", true},
}

func locationNames() []string {
	return lo.Map(locations, func(l location, _ int) string { return l.name })
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.Flags().BoolP("all", "a", false, "Also show internal locations")
	whereCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where [location]",
	Short: "Show where deepc keeps its files",
	Example: `  deepc where
  deepc where catalog`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return locationNames(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			l, ok := lo.Find(locations, func(l location) bool { return l.name == args[0] })
			if !ok {
				handleErr(errUnknown("location", args[0], locationNames()))
			}
			cmd.Println(l.path())
			return
		}

		all := lo.Must(cmd.Flags().GetBool("all"))
		shown := lo.Filter(locations, func(l location, _ int) bool { return all || !l.hidden })

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(shown, func(l location) (string, string) { return l.name, l.path() })
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(paths))
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, l := range shown {
			cmd.Println(header(l.name) + " " + style.Faint(l.description))
			cmd.Println(style.Fg(color.Yellow)(l.path()))
			if i < len(shown)-1 {
				cmd.Println()
			}
		}
	},
}
