package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/log"
	"github.com/deepc-skill/deepc/network"
	"github.com/deepc-skill/deepc/util"
	"github.com/spf13/viper"
)

// ErrBadStatus is returned when the catalog server answers with a non-2xx status.
var ErrBadStatus = errors.New("unexpected catalog response status")

// Fetch downloads and decodes the remote catalog document.
func Fetch(ctx context.Context, url string) (*Document, error) {
	if timeout := viper.GetDuration(key.CatalogTimeout); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := network.Default().Do(req)
	if err != nil {
		return nil, fmt.Errorf("download catalog: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	doc := NewDocument()
	if err = json.NewDecoder(resp.Body).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return doc, nil
}

// Refresh fetches the catalog at url and merges it into the store.
// On failure the store is left as it was.
func (s *Store) Refresh(ctx context.Context, url string) (added int, err error) {
	log.Infof("fetching catalog from %s", url)

	doc, err := Fetch(ctx, url)
	if err != nil {
		log.Warnf("catalog fetch failed: %s", err)
		return 0, err
	}

	added, err = s.Merge(doc)
	if err != nil {
		log.Error(err)
		return 0, err
	}

	log.WithFields(log.Fields{
		"fetched": doc.Len(),
		"added":   added,
		"total":   s.Len(),
	}).Info("catalog merged")
	return added, nil
}
