package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/deepc-skill/deepc/history"
	"github.com/deepc-skill/deepc/icon"
	"github.com/deepc-skill/deepc/media"
	"github.com/deepc-skill/deepc/style"
	"github.com/deepc-skill/deepc/util"
	"github.com/samber/lo"
)

type listItem struct {
	internal *media.Result
}

func toItems(results []*media.Result) []list.Item {
	return lo.Map(results, func(r *media.Result, _ int) list.Item {
		return &listItem{internal: r}
	})
}

func (t *listItem) icon() string {
	switch {
	case t.internal.IsPlaylist():
		return icon.Get(icon.Playlist)
	case t.internal.MediaType == media.Documentary:
		return icon.Get(icon.Documentary)
	default:
		return icon.Get(icon.Movie)
	}
}

func (t *listItem) Title() string {
	title := strings.TrimSpace(t.icon() + " " + t.internal.Title)
	if !t.internal.IsPlaylist() && history.Has(t.internal) {
		title += " " + style.Faint(icon.Get(icon.Success))
	}
	return title
}

func (t *listItem) Description() string {
	parts := []string{style.Confidence(t.internal.MatchConfidence)}

	if t.internal.IsPlaylist() {
		parts = append(parts, util.Quantify(len(t.internal.Playlist), "entry", "entries"))
	} else {
		parts = append(parts, t.internal.MediaType.String())
	}

	if t.internal.Author != "" {
		parts = append(parts, t.internal.Author)
	}

	return strings.Join(parts, style.Faint(" • "))
}

func (t *listItem) FilterValue() string {
	return t.internal.Title
}
