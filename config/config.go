// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"strings"

	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
// Values are not checked here; commands that depend on them call Validate.
func Setup() error {
	viper.SetConfigName(constant.Deepc)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Deepc)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}
