// Package color names the terminal colors the CLI renders with.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI code ("1".."255") or a hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Base ANSI colors follow the user's terminal theme.
var (
	Black  = New("0")
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

// Bright variants used for headings.
var (
	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Orange marks the watch action.
var Orange = New("#ffb703")
