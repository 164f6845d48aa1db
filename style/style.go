// Package style holds the lipgloss helpers used to render results in the
// terminal.
package style

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/media"
)

// TUI palette.
var (
	Accent  = lipgloss.Color("#cba6f7")
	Subtle  = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")
	Text    = lipgloss.Color("#cdd6f4")
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded banner.
func Title(s string) string {
	return Tag(color.New("230"), color.New("62"))(s)
}

// ErrorTitle is Title on red.
func ErrorTitle(s string) string {
	return Tag(color.New("230"), color.Red)(s)
}

// Tag returns a renderer wrapping its input in a padded colored block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string {
		return New().Foreground(fg).Background(bg).Padding(0, 1).Render(s)
	}
}

// Confidence colors a match score: green from 75, yellow from 50, red below.
func Confidence(score int) string {
	s := strconv.Itoa(score)
	switch {
	case score >= 75:
		return Fg(color.Green)(s)
	case score >= 50:
		return Fg(color.Yellow)(s)
	default:
		return Fg(color.Red)(s)
	}
}

// Category renders a media category as a tag.
func Category(c media.Category) string {
	if c == media.Documentary {
		return Tag(color.Black, color.Cyan)(c.String())
	}
	return Tag(color.Black, color.Purple)(c.String())
}
