// Package search scores catalog entries against a voice query.
package search

import (
	"strings"

	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/index"
	"github.com/deepc-skill/deepc/media"
	"github.com/deepc-skill/deepc/vocab"
	"github.com/samber/lo"
)

// Options are the skill-level values stamped on every result.
type Options struct {
	SkillID    string
	SkillIcon  string
	Background string

	PlaylistScore int
	PlaylistLimit int
}

// Engine answers queries over one immutable snapshot of the catalog.
type Engine struct {
	entries []*media.Entry
	matcher vocab.Matcher
	options Options
}

// New returns an engine over entries. The matcher must have been fed the
// phrases indexed from the same entries.
func New(entries []*media.Entry, matcher vocab.Matcher, options Options) *Engine {
	return &Engine{
		entries: entries,
		matcher: matcher,
		options: options,
	}
}

// Search returns the results for phrase in the order title matches,
// documentary matches, playlist. Nothing matched means an empty slice.
func (e *Engine) Search(phrase string, category media.Category) []*media.Result {
	entities := e.matcher.Match(phrase)
	return e.Score(entities, category)
}

// Score runs the ranking on already matched entities.
//
// Filtering is cumulative: when both a title and a documentary name
// matched, documentary results are drawn from the entries that survived
// the title filter.
func (e *Engine) Score(entities map[string]string, category media.Category) []*media.Result {
	score := 0
	if category == media.Primary {
		score = constant.PrimaryCategoryBonus
	}

	_, provider := entities[index.GroupProvider]
	score += constant.EntityWeight * len(entities)

	candidates := e.Candidates(category)
	results := make([]*media.Result, 0)

	if title := entities[index.GroupTitle]; title != "" {
		score += constant.TitleMatchBonus
		candidates = containing(candidates, title)
		for _, c := range candidates {
			results = append(results, e.result(c.Record, capped(score), media.Movie))
		}
	}

	if title := entities[index.GroupDocumentary]; title != "" {
		score += constant.DocumentaryBonus
		candidates = containing(candidates, title)
		for _, c := range candidates {
			results = append(results, e.result(c.Record, capped(score), media.Documentary))
		}
	}

	if provider && len(e.entries) > 0 {
		results = append(results, e.Playlist(e.options.PlaylistScore, e.options.PlaylistLimit))
	}

	return results
}

// Candidates returns the entries eligible for a category: documentaries
// for the documentary category and everything else otherwise.
func (e *Engine) Candidates(category media.Category) []*media.Entry {
	wantDocumentary := category == media.Documentary
	return lo.Filter(e.entries, func(entry *media.Entry, _ int) bool {
		return (entry.Category == media.Documentary) == wantDocumentary
	})
}

// Featured returns every entry in catalog order at the featured confidence.
func (e *Engine) Featured() []*media.Result {
	return lo.Map(e.entries, func(entry *media.Entry, _ int) *media.Result {
		return e.result(entry.Record, constant.FeaturedConfidence, media.Movie)
	})
}

// Playlist wraps the first limit featured entries in a playlist envelope.
// A negative limit means no limit.
func (e *Engine) Playlist(score, limit int) *media.Result {
	featured := e.Featured()
	if limit >= 0 && limit < len(featured) {
		featured = featured[:limit]
	}

	return &media.Result{
		Title:           constant.PlaylistTitle,
		Author:          constant.PlaylistAuthor,
		MatchConfidence: capped(score),
		MediaType:       media.Movie,
		Playback:        media.Video,
		SkillIcon:       e.options.SkillIcon,
		Image:           e.options.SkillIcon,
		BgImage:         e.options.Background,
		Playlist:        featured,
	}
}

func (e *Engine) result(r *media.Record, score int, category media.Category) *media.Result {
	image := lo.Ternary(r.Thumbnail != "", r.Thumbnail, e.options.SkillIcon)
	return &media.Result{
		Title:           r.Title,
		Author:          r.Author,
		MatchConfidence: score,
		MediaType:       category,
		URI:             constant.StreamPrefix + r.URL,
		Playback:        media.Video,
		SkillIcon:       e.options.SkillIcon,
		SkillID:         e.options.SkillID,
		Image:           image,
		BgImage:         image,
	}
}

func containing(entries []*media.Entry, phrase string) []*media.Entry {
	phrase = strings.ToLower(phrase)
	return lo.Filter(entries, func(entry *media.Entry, _ int) bool {
		return strings.Contains(strings.ToLower(entry.Title), phrase)
	})
}

func capped(score int) int {
	return lo.Clamp(score, 0, constant.MaxConfidence)
}
