package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/style"
	"github.com/deepc-skill/deepc/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type buildInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
	SkillID  string `json:"skill_id"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		SkillID:  viper.GetString(key.SkillID),
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		info := currentBuild()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(info.Version)
			return
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		defer version.Notify()

		accent := style.Fg(color.Purple)
		cmd.Println(accent("▇▇▇") + " " + accent(constant.Deepc))
		cmd.Println()
		for _, row := range [][2]string{
			{"Version", info.Version},
			{"Git Commit", info.Revision},
			{"Build Date", info.BuiltAt},
			{"Built By", info.BuiltBy},
			{"Platform", info.Platform},
			{"Skill", info.SkillID},
		} {
			cmd.Println("  " + style.Faint(fmt.Sprintf("%-12s", row[0])) + style.Bold(row[1]))
		}
	},
}
