// Package tui is an interactive browser over search results.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/deepc-skill/deepc/media"
)

// Searcher answers the browser's queries.
type Searcher interface {
	Search(phrase string, category media.Category) []*media.Result
	Featured() []*media.Result
}

// Options configure the browser.
type Options struct {
	// Query, when set, is searched right away.
	Query    string
	Category media.Category

	// Featured starts on the full catalog instead of the search prompt.
	Featured bool

	// Browser opens watch URLs instead of the default handler.
	Browser string
}

// Run starts the browser and blocks until the user quits.
func Run(searcher Searcher, options *Options) error {
	bubble := newBubble(searcher, options)

	switch {
	case options.Featured:
		bubble.showResults("Featured", searcher.Featured())
	case options.Query != "":
		bubble.inputC.SetValue(options.Query)
		bubble.search()
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
