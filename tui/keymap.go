package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/style"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm, watch, back,
	acceptSuggestion, toggleCategory,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		watch: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("watch")),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		acceptSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		toggleCategory: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "movie/documentary"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// listKeys are appended to the list component's own help.
func (k *statefulKeymap) listKeys() []key.Binding {
	return []key.Binding{k.watch, k.back}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	switch k.state {
	case searchState:
		return []key.Binding{k.confirm, k.acceptSuggestion, k.toggleCategory, k.forceQuit}
	case errorState:
		return []key.Binding{k.back, k.quit}
	default:
		return []key.Binding{k.watch, k.back, k.showHelp}
	}
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
