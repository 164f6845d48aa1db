// Package query remembers search phrases and suggests them back when a
// search comes up empty.
package query

import (
	"strings"
	"sync"

	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/vocab"
	"github.com/deepc-skill/deepc/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	mu     sync.Mutex
	cacher *gache.Cache[map[string]*record]
)

func history() *gache.Cache[map[string]*record] {
	if cacher == nil {
		cacher = gache.New[map[string]*record](&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		})
	}
	return cacher
}

// Remember adds weight to the rank of q, recording it if new.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	cached, expired, err := history().Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*record)
	}

	if r, ok := cached[q]; ok {
		r.Rank += weight
	} else {
		cached[q] = &record{Rank: weight, Query: q}
	}

	return history().Set(cached)
}

// Suggest returns the best remembered phrase close to q.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered phrases fuzzily matching q, highest rank first.
// Ties go to the phrase closest to q.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	cached, expired, err := history().Get()
	mu.Unlock()
	if err != nil || expired || cached == nil {
		return []string{}
	}

	queries := lo.Keys(cached)
	ranks := fuzzy.RankFindNormalizedFold(q, queries)

	slices.SortFunc(ranks, func(a, b fuzzy.Rank) int {
		if d := cached[b.Target].Rank - cached[a.Target].Rank; d != 0 {
			return d
		}
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return strings.Compare(a.Target, b.Target)
	})

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return r.Target
	})
}

// Forget drops every remembered phrase.
func Forget() error {
	mu.Lock()
	defer mu.Unlock()
	return history().Set(make(map[string]*record))
}

func sanitize(q string) string {
	return vocab.Fold(q)
}
