package cmd

import (
	"os"

	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/config"
	"github.com/deepc-skill/deepc/style"
	"github.com/deepc-skill/deepc/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables deepc reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		names := lo.Map(config.EnvExposed, func(key string, _ int) string {
			field := config.Default[key]
			return field.Env()
		})
		names = append(names, where.EnvConfigPath)
		slices.Sort(names)

		for _, env := range names {
			value, present := os.LookupEnv(env)

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
