package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/deepc-skill/deepc/history"
	"github.com/deepc-skill/deepc/icon"
	"github.com/deepc-skill/deepc/query"
	"github.com/deepc-skill/deepc/util"
	"github.com/deepc-skill/deepc/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

var clearTargets = []clearTarget{
	{"catalog mirror", "catalog", mo.Some("m"), func() error { return deleteIfExists(where.Catalog()) }},
	{"queries history", "queries", mo.Some("q"), query.Forget},
	{"watch history", "history", mo.Some("s"), history.Clear},
	{"cache directory", "cache", mo.Some("c"), func() error { return deleteIfExists(where.Cache()) }},
}

func deleteIfExists(path string) error {
	if err := util.Delete(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the catalog mirror, query history or the whole cache",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			e()
			handleErr(err)
			printSuccess("%s cleared", util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
