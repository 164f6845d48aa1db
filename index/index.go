// Package index derives the keyword phrases and category annotations of a catalog.
//
// The whole index is rebuilt in a single pass whenever the catalog changes;
// it is never patched in place.
package index

import (
	"strings"
	"unicode"

	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/media"
	"github.com/deepc-skill/deepc/vocab"
)

// Entity group names registered with the matcher.
const (
	GroupTitle       = "movie_name"
	GroupDocumentary = "documentary_name"
	GroupProvider    = "movie_streaming_provider"
)

const trimmedPunctuation = "¿?.!"

// Index holds the phrase groups of one rebuild.
type Index struct {
	Titles        []string
	Documentaries []string
	Providers     []string
}

// Normalize extracts the matchable part of a catalog title: the text before
// the first '|', then before the first '(', trimmed of whitespace and of
// ¿?.! on both ends.
func Normalize(title string) string {
	title, _, _ = strings.Cut(title, "|")
	title, _, _ = strings.Cut(title, "(")
	return strings.TrimFunc(title, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(trimmedPunctuation, r)
	})
}

// Classify returns the category a record belongs to.
func Classify(r *media.Record) media.Category {
	if strings.Contains(strings.ToLower(r.Title), constant.DocumentaryMarker) {
		return media.Documentary
	}
	return media.Primary
}

// Build classifies every record and collects the phrase groups, preserving
// catalog order.
func Build(records []*media.Record) ([]*media.Entry, *Index) {
	ix := &Index{Providers: append([]string(nil), constant.ProviderNames...)}
	entries := make([]*media.Entry, 0, len(records))

	for _, r := range records {
		category := Classify(r)
		entries = append(entries, &media.Entry{Record: r, Category: category})

		t := Normalize(r.Title)
		if category == media.Documentary {
			ix.Documentaries = appendPhrase(ix.Documentaries, t)
			continue
		}

		ix.Titles = appendPhrase(ix.Titles, t)
		if head, tail, ok := strings.Cut(t, ":"); ok {
			ix.Titles = appendPhrase(ix.Titles, strings.TrimSpace(head))
			ix.Titles = appendPhrase(ix.Titles, strings.TrimSpace(tail))
		}
	}

	return entries, ix
}

func appendPhrase(list []string, p string) []string {
	if p == "" {
		return list
	}
	return append(list, p)
}

// Register hands the phrase groups to the matcher, replacing earlier ones.
func (ix *Index) Register(reg vocab.Registrar) {
	reg.Register(media.Movie, GroupTitle, ix.Titles)
	reg.Register(media.Documentary, GroupDocumentary, ix.Documentaries)
	reg.Register(media.Movie, GroupProvider, ix.Providers)
}
