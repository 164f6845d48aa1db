package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/icon"
	"github.com/deepc-skill/deepc/log"
	"github.com/deepc-skill/deepc/style"
	"github.com/deepc-skill/deepc/util"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download the remote catalog and merge it into the local mirror",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := newSkill()
		s.Load()
		before := s.Len()

		erase := util.PrintErasable(fmt.Sprintf("%s Syncing catalog...", icon.Get(icon.Progress)))
		err := s.Sync(cmd.Context())
		erase()
		handleErr(err)

		printSuccess(
			"%s in catalog, %s new",
			util.Quantify(s.Len(), "entry", "entries"),
			style.Fg(color.Yellow)(fmt.Sprint(s.Len()-before)),
		)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolP("verbose", "V", false, "Log to stderr at debug level")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Keep the catalog fresh, refreshing at random intervals until interrupted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("verbose")) {
			log.SetOutput(os.Stderr, logrus.DebugLevel)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := newSkill()
		s.Initialize(ctx)

		fmt.Printf(
			"%s serving %s, press ctrl+c to stop\n",
			icon.Get(icon.Success),
			util.Quantify(s.Len(), "entry", "entries"),
		)

		<-ctx.Done()
		s.Shutdown()
		log.Info("refresh loop stopped")
	},
}
