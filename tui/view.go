package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/icon"
	"github.com/deepc-skill/deepc/style"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case searchState:
		return b.viewSearch()
	case resultsState:
		return listExtraPaddingStyle.Render(b.resultsC.View())
	case playlistState:
		return listExtraPaddingStyle.Render(b.playlistC.View())
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search Deep C Digital") + " " + style.Category(b.category),
		"",
		b.inputC.View(),
	}

	if b.notice != "" {
		lines = append(lines, "", style.Fg(color.Yellow)(b.notice))
	}

	if s, ok := b.suggestion.Get(); ok {
		lines = append(lines, style.Faint("Did you mean ")+style.Bold(s)+style.Faint("?"))
	}

	lines = append(lines, "", b.helpC.View(b.keymap))
	return b.renderLines(lines)
}

func (b *statefulBubble) viewError() string {
	msg := ""
	if b.lastError != nil {
		msg = b.lastError.Error()
	}

	return b.renderLines([]string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " " + wrap.String(msg, max(b.width-6, 20)),
		"",
		b.helpC.View(b.keymap),
	})
}

func (b *statefulBubble) renderLines(lines []string) string {
	return paddingStyle.Render(strings.Join(lines, "\n"))
}
