package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/config"
	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/style"
	"github.com/deepc-skill/deepc/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errUnknown suggests the closest known name.
func errUnknown(kind, name string, known []string) error {
	if len(known) == 0 {
		return fmt.Errorf("unknown %s %s", kind, name)
	}

	closest := lo.MinBy(known, func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	return fmt.Errorf(
		"unknown %s %s, did you mean %s?",
		kind,
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

// lookupField exits with a suggestion when name is not a config key.
func lookupField(name string) config.Field {
	field, ok := config.Default[name]
	if !ok {
		handleErr(errUnknown("key", name, lo.Keys(config.Default)))
	}
	return field
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	keys := lo.Keys(config.Default)
	sort.Strings(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}

func configFilePath() string {
	return filepath.Join(where.Config(), constant.Deepc+".toml")
}

// writeConfig writes to the existing file, creating it on first use.
func writeConfig() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change configuration",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))

		var fields []config.Field
		if len(keys) == 0 {
			fields = lo.Values(config.Default)
		} else {
			fields = lo.Map(keys, func(k string, _ int) config.Field { return lookupField(k) })
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			pointers := lo.Map(fields, func(f config.Field, _ int) *config.Field { return &f })
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(pointers))
			return
		}

		section := ""
		for _, field := range fields {
			if s := field.Section(); s != section {
				section = s
				cmd.Println(style.Title(section))
				cmd.Println()
			}
			cmd.Println(field.Pretty())
			cmd.Println()
		}
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Change a configuration value",
	Example:           "  deepc config set refresh.max 12h\n  deepc config set network.tls_fingerprint true",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field := lookupField(args[0])

		v, err := field.Parse(args[1:])
		handleErr(err)

		previous := viper.Get(field.Key)
		viper.Set(field.Key, v)
		if err := config.Validate(); err != nil {
			viper.Set(field.Key, previous)
			handleErr(err)
		}
		handleErr(writeConfig())

		printSuccess("set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field := lookupField(args[0])
		fmt.Println(viper.Get(field.Key))
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFilePath()

		if lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(deleteIfExists(path))
		}

		handleErr(viper.SafeWriteConfigAs(path))
		printSuccess("wrote config to %s", path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFilePath()))
		printSuccess("deleted config")
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default values",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			handleErr(writeConfig())
			printSuccess("reset all config values")
			return
		}

		field := lookupField(lo.Must(cmd.Flags().GetString("key")))
		viper.Set(field.Key, field.Value)
		handleErr(writeConfig())
		printSuccess("reset %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configSetCmd, configGetCmd, configWriteCmd, configDeleteCmd, configResetCmd)

	configInfoCmd.Flags().StringSliceP("key", "k", nil, "Only show these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
	configInfoCmd.SetOut(os.Stdout)

	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	configResetCmd.Flags().StringP("key", "k", "", "Key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}
