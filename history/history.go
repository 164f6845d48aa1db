// Package history records which catalog entries were opened for watching.
package history

import (
	"sort"
	"sync"
	"time"

	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/media"
	"github.com/deepc-skill/deepc/open"
	"github.com/deepc-skill/deepc/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

// Watched is one remembered entry, keyed by its watch URL.
type Watched struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	Times     int       `json:"times"`
	WatchedAt time.Time `json:"watched_at"`
}

var (
	mu     sync.Mutex
	cacher *gache.Cache[map[string]*Watched]
)

func store() *gache.Cache[map[string]*Watched] {
	if cacher == nil {
		cacher = gache.New[map[string]*Watched](&gache.Options{
			Path:       where.History(),
			FileSystem: &filesystem.GacheFs{},
		})
	}
	return cacher
}

func get() (map[string]*Watched, error) {
	cached, expired, err := store().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Watched), nil
	}
	return cached, nil
}

// Get returns every watched entry, most recent first.
func Get() ([]*Watched, error) {
	mu.Lock()
	defer mu.Unlock()

	saved, err := get()
	if err != nil {
		return nil, err
	}

	watched := lo.Values(saved)
	sort.Slice(watched, func(i, j int) bool {
		return watched[i].WatchedAt.After(watched[j].WatchedAt)
	})
	return watched, nil
}

// Save marks r as watched now. Playlists are not recorded.
func Save(r *media.Result) error {
	url := open.WatchURL(r)
	if url == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	saved, err := get()
	if err != nil {
		return err
	}

	w, ok := saved[url]
	if !ok {
		w = &Watched{URL: url}
		saved[url] = w
	}
	w.Title = r.Title
	w.Category = r.MediaType.String()
	w.Times++
	w.WatchedAt = time.Now()

	return store().Set(saved)
}

// Has reports whether r was watched before.
func Has(r *media.Result) bool {
	mu.Lock()
	defer mu.Unlock()

	saved, err := get()
	if err != nil {
		return false
	}
	_, ok := saved[open.WatchURL(r)]
	return ok
}

// Remove forgets a watched entry.
func Remove(url string) error {
	mu.Lock()
	defer mu.Unlock()

	saved, err := get()
	if err != nil {
		return err
	}

	delete(saved, url)
	return store().Set(saved)
}

// Clear forgets everything.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()
	return store().Set(make(map[string]*Watched))
}
