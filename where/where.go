// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "DEEPC_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden with the DEEPC_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Deepc))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Deepc))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Catalog resolves the local mirror of the remote catalog document.
func Catalog() string {
	return filepath.Join(Cache(), "catalog.json")
}

// Queries resolves the search query suggestion registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// History resolves the record of watched entries.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Temp resolves a volatile directory for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Deepc))
}
