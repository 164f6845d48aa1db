package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/index"
	"github.com/deepc-skill/deepc/style"
	"github.com/deepc-skill/deepc/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keywordsCmd)
	keywordsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	keywordsCmd.Flags().StringP("group", "g", "", "Only show one group: "+strings.Join(keywordGroups, ", "))
	_ = keywordsCmd.RegisterFlagCompletionFunc("group", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return keywordGroups, cobra.ShellCompDirectiveNoFileComp
	})
	keywordsCmd.SetOut(os.Stdout)
}

var keywordGroups = []string{index.GroupTitle, index.GroupDocumentary, index.GroupProvider}

var keywordsCmd = &cobra.Command{
	Use:   "keywords [phrase]",
	Short: "Show the registered keyword phrases, or what a phrase matches",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			group  = lo.Must(cmd.Flags().GetString("group"))
			s      = loadSkill(cmd.Context(), false)
		)

		if len(args) > 0 {
			matches := s.Match(strings.Join(args, " "))
			if asJson {
				handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(matches))
				return
			}
			for _, g := range keywordGroups {
				if m, ok := matches[g]; ok {
					cmd.Printf("%s %s\n", style.Fg(color.Purple)(g), style.Fg(color.Yellow)(m))
				}
			}
			return
		}

		ix := s.Index()
		groups := map[string][]string{
			index.GroupTitle:       ix.Titles,
			index.GroupDocumentary: ix.Documentaries,
			index.GroupProvider:    ix.Providers,
		}

		if group != "" {
			phrases, ok := groups[group]
			if !ok {
				handleErr(errUnknown("group", group, keywordGroups))
			}
			groups = map[string][]string{group: phrases}
		}

		if asJson {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(groups))
			return
		}

		for _, g := range keywordGroups {
			phrases, ok := groups[g]
			if !ok {
				continue
			}
			cmd.Println(style.New().Bold(true).Foreground(color.HiPurple).Render(g) + " " + style.Faint("("+util.Quantify(len(phrases), "phrase", "phrases")+")"))
			for _, p := range phrases {
				cmd.Println("  " + p)
			}
		}
	},
}
