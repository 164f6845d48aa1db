// Package skill ties the catalog, the keyword index and the search engine
// into the media skill lifecycle.
package skill

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/deepc-skill/deepc/catalog"
	"github.com/deepc-skill/deepc/index"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/log"
	"github.com/deepc-skill/deepc/media"
	"github.com/deepc-skill/deepc/search"
	"github.com/deepc-skill/deepc/vocab"
	"github.com/deepc-skill/deepc/where"
	"github.com/spf13/viper"
)

// Options configure a Skill.
type Options struct {
	CatalogURL     string
	RefreshMin     time.Duration
	RefreshMax     time.Duration
	RefreshOnStart bool

	Search search.Options

	// Registrar, when set, receives every keyword rebuild in addition to
	// the skill's own matcher.
	Registrar vocab.Registrar
}

// OptionsFromConfig reads Options from the loaded configuration.
func OptionsFromConfig() Options {
	return Options{
		CatalogURL:     viper.GetString(key.CatalogURL),
		RefreshMin:     viper.GetDuration(key.RefreshMin),
		RefreshMax:     viper.GetDuration(key.RefreshMax),
		RefreshOnStart: viper.GetBool(key.RefreshOnStart),
		Search: search.Options{
			SkillID:       viper.GetString(key.SkillID),
			SkillIcon:     viper.GetString(key.SkillIcon),
			Background:    viper.GetString(key.SkillBackground),
			PlaylistScore: viper.GetInt(key.PlaylistScore),
			PlaylistLimit: viper.GetInt(key.PlaylistLimit),
		},
	}
}

type snapshot struct {
	entries  []*media.Entry
	index    *index.Index
	registry *vocab.Registry
	engine   *search.Engine
}

// Skill answers media queries over the Deep C Digital catalog.
//
// Entries, their categories and the matcher are rebuilt together and
// published as one snapshot, so a query never sees a category computed
// from a different catalog than the one it searches.
type Skill struct {
	options   Options
	store     *catalog.Store
	refresher *catalog.Refresher
	current   atomic.Pointer[snapshot]
}

// New returns a skill over store. Call Initialize before querying.
func New(store *catalog.Store, options Options) *Skill {
	s := &Skill{
		options: options,
		store:   store,
	}
	s.refresher = catalog.NewRefresher(options.RefreshMin, options.RefreshMax, s.Sync)
	s.rebuild()
	return s
}

// FromConfig returns a skill mirrored at the default location and
// configured from viper.
func FromConfig() *Skill {
	return New(catalog.NewStore(where.Catalog()), OptionsFromConfig())
}

// Load reads the local mirror and rebuilds the index. An unreadable mirror
// is logged and treated as an empty catalog.
func (s *Skill) Load() {
	if err := s.store.Load(); err != nil {
		log.Warnf("starting with an empty catalog: %s", err)
	}
	s.rebuild()
}

// Initialize loads the local mirror, optionally refreshes it once and arms
// the periodic refresh. Failures are logged; the skill always comes up.
func (s *Skill) Initialize(ctx context.Context) {
	s.Load()

	if s.options.RefreshOnStart {
		_ = s.Sync(ctx)
	}

	s.refresher.Start(ctx)
}

// Shutdown disarms the periodic refresh.
func (s *Skill) Shutdown() {
	s.refresher.Stop()
}

// Sync refreshes the catalog from the remote document and rebuilds the
// index. The previous snapshot stays in place when the refresh fails.
func (s *Skill) Sync(ctx context.Context) error {
	if _, err := s.store.Refresh(ctx, s.options.CatalogURL); err != nil {
		return err
	}
	s.rebuild()
	return nil
}

func (s *Skill) rebuild() {
	entries, ix := index.Build(s.store.Records())

	registry := vocab.NewRegistry()
	ix.Register(registry)
	if s.options.Registrar != nil {
		ix.Register(s.options.Registrar)
	}

	s.current.Store(&snapshot{
		entries:  entries,
		index:    ix,
		registry: registry,
		engine:   search.New(entries, registry, s.options.Search),
	})

	log.WithFields(log.Fields{
		"entries":       len(entries),
		"titles":        len(ix.Titles),
		"documentaries": len(ix.Documentaries),
	}).Debug("keyword index rebuilt")
}

// Search answers a voice query for the given category.
func (s *Skill) Search(phrase string, category media.Category) []*media.Result {
	return s.current.Load().engine.Search(phrase, category)
}

// Featured lists the whole catalog.
func (s *Skill) Featured() []*media.Result {
	return s.current.Load().engine.Featured()
}

// Playlist wraps the first limit featured entries in one envelope.
func (s *Skill) Playlist(score, limit int) *media.Result {
	return s.current.Load().engine.Playlist(score, limit)
}

// Len returns the number of catalog entries.
func (s *Skill) Len() int {
	return len(s.current.Load().entries)
}

// Entries returns the classified catalog.
func (s *Skill) Entries() []*media.Entry {
	return s.current.Load().entries
}

// Index returns the phrase groups of the current snapshot.
func (s *Skill) Index() *index.Index {
	return s.current.Load().index
}

// Match reports the entities the skill recognizes in phrase.
func (s *Skill) Match(phrase string) map[string]string {
	return s.current.Load().registry.Match(phrase)
}
