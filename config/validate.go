package config

import (
	"fmt"
	"net/url"

	"github.com/deepc-skill/deepc/key"
	"github.com/spf13/viper"
)

// Validate rejects configuration values the catalog and scoring code cannot work with.
func Validate() error {
	u, err := url.Parse(viper.GetString(key.CatalogURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s: invalid catalog url %q", key.CatalogURL, viper.GetString(key.CatalogURL))
	}

	minDelay, maxDelay := viper.GetDuration(key.RefreshMin), viper.GetDuration(key.RefreshMax)
	if minDelay <= 0 || maxDelay <= minDelay {
		return fmt.Errorf("%s/%s: need 0 < min < max, got %s and %s", key.RefreshMin, key.RefreshMax, minDelay, maxDelay)
	}

	if s := viper.GetInt(key.PlaylistScore); s < 0 || s > 100 {
		return fmt.Errorf("%s: must be within 0-100, got %d", key.PlaylistScore, s)
	}

	if viper.GetInt(key.PlaylistLimit) < 0 {
		return fmt.Errorf("%s: must not be negative", key.PlaylistLimit)
	}

	return nil
}
