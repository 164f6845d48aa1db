// Package vocab implements the phrase registration and entity matching contract
// the voice runtime offers to skills.
package vocab

import (
	"sync"

	"github.com/deepc-skill/deepc/media"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Registrar accepts the phrases of an entity group.
type Registrar interface {
	Register(category media.Category, group string, phrases []string)
}

// Matcher detects which entity groups an utterance references. The result
// maps each matched group name to the registered phrase that matched.
type Matcher interface {
	Match(utterance string) map[string]string
}

type groupKey struct {
	category media.Category
	name     string
}

type phrase struct {
	raw    string
	folded string
}

// Registry is an in-memory Registrar and Matcher. Within a group the
// longest matching phrase wins; ties go to the phrase registered first.
type Registry struct {
	mu     sync.RWMutex
	groups map[groupKey][]phrase
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{groups: make(map[groupKey][]phrase)}
}

// Register replaces the phrases of (category, group). Duplicates and phrases
// that fold to nothing are dropped.
func (r *Registry) Register(category media.Category, group string, phrases []string) {
	seen := make(map[string]struct{}, len(phrases))
	list := make([]phrase, 0, len(phrases))
	for _, p := range phrases {
		folded := Fold(p)
		if folded == "" {
			continue
		}
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		list = append(list, phrase{raw: p, folded: folded})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups[groupKey{category, group}] = list
}

// Match implements Matcher.
func (r *Registry) Match(utterance string) map[string]string {
	text := Fold(utterance)
	matches := make(map[string]string)
	if text == "" {
		return matches
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	best := make(map[string]int)
	for key, list := range r.groups {
		for _, p := range list {
			if !containsWords(text, p.folded) {
				continue
			}
			if l, ok := best[key.name]; ok && l >= len(p.folded) {
				continue
			}
			best[key.name] = len(p.folded)
			matches[key.name] = p.raw
		}
	}

	return matches
}

// Phrases returns a copy of the phrases registered for (category, group).
func (r *Registry) Phrases(category media.Category, group string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.groups[groupKey{category, group}], func(p phrase, _ int) string {
		return p.raw
	})
}

// Groups lists the group names registered under category, sorted.
func (r *Registry) Groups(category media.Category) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for key := range r.groups {
		if key.category == category {
			names = append(names, key.name)
		}
	}
	slices.Sort(names)
	return names
}
