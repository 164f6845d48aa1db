// Package cmd implements the deepc command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/config"
	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/icon"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/log"
	"github.com/deepc-skill/deepc/media"
	"github.com/deepc-skill/deepc/skill"
	"github.com/deepc-skill/deepc/style"
	"github.com/deepc-skill/deepc/tui"
	"github.com/deepc-skill/deepc/util"
	"github.com/deepc-skill/deepc/version"
	"github.com/deepc-skill/deepc/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant (emoji, kaomoji, plain, squares, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("fingerprint", false, "Download the catalog with a browser TLS fingerprint")
	lo.Must0(viper.BindPFlag(key.NetworkTLSFingerprint, rootCmd.PersistentFlags().Lookup("fingerprint")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Deepc,
	Short: "Search and browse the Deep C Digital movie catalog",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Search and browse the Deep C Digital movie catalog"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		s := loadSkill(cmd.Context(), false)
		handleErr(tui.Run(s, &tui.Options{Category: media.Primary}))
	},
}

// Execute runs the command line.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

func printSuccess(format string, a ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, a...))
}

// newSkill exits when the configuration is invalid.
func newSkill() *skill.Skill {
	handleErr(config.Validate())
	return skill.FromConfig()
}

// loadSkill reads the local mirror, syncing first when it is empty or when
// forced. A failed sync is fatal only if there is nothing to fall back on.
func loadSkill(ctx context.Context, forceSync bool) *skill.Skill {
	s := newSkill()
	s.Load()

	if !forceSync && s.Len() > 0 {
		return s
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Syncing catalog...", icon.Get(icon.Progress)))
	err := s.Sync(ctx)
	erase()

	if err != nil {
		if s.Len() == 0 {
			handleErr(err)
		}
		log.Warn(err)
	}

	return s
}

func categoryFlag(cmd *cobra.Command) media.Category {
	c, err := media.ParseCategory(lo.Must(cmd.Flags().GetString("category")))
	handleErr(err)
	return c
}

func completionCategories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(media.Categories(), func(c media.Category, _ int) string {
		return c.String()
	}), cobra.ShellCompDirectiveNoFileComp
}
