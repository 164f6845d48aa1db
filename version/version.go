// Package version checks the published releases for a newer build.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/network"
	"github.com/deepc-skill/deepc/util"
	"github.com/deepc-skill/deepc/where"
	"github.com/metafates/gache"
)

var releasesURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

var versionCacher *gache.Cache[string]

func cacher() *gache.Cache[string] {
	if versionCacher == nil {
		versionCacher = gache.New[string](&gache.Options{
			Path:       filepath.Join(where.Cache(), "version.json"),
			Lifetime:   time.Hour * 24 * 2,
			FileSystem: &filesystem.GacheFs{},
		})
	}
	return versionCacher
}

// Latest returns the newest released version, without the leading "v".
// The answer is cached for two days.
func Latest(ctx context.Context) (string, error) {
	ver, expired, err := cacher().Get()
	if err == nil && !expired && ver != "" {
		return ver, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	ver = strings.TrimPrefix(release.TagName, "v")
	_ = cacher().Set(ver)
	return ver, nil
}
