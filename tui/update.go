package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/deepc-skill/deepc/history"
	"github.com/deepc-skill/deepc/log"
	"github.com/deepc-skill/deepc/open"
)

func (b *statefulBubble) Init() tea.Cmd {
	return nil
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case searchState:
		return b.updateSearch(msg)
	case resultsState:
		return b.updateList(msg, &b.resultsC)
	case playlistState:
		return b.updateList(msg, &b.playlistC)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.confirm):
			if b.inputC.Value() != "" {
				b.search()
			}
			return b, nil
		case key.Matches(msg, b.keymap.acceptSuggestion):
			if s, ok := b.suggestion.Get(); ok {
				b.inputC.SetValue(s)
				b.inputC.CursorEnd()
			}
			return b, nil
		case key.Matches(msg, b.keymap.toggleCategory):
			b.toggleCategory()
			return b, nil
		case key.Matches(msg, b.keymap.back):
			if !b.previousState() {
				return b, tea.Quit
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateList(msg tea.Msg, l *list.Model) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && l.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, b.keymap.watch):
			item, ok := l.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}
			if item.internal.IsPlaylist() {
				b.showPlaylist(item.internal)
				return b, nil
			}
			if err := open.Watch(item.internal, b.options.Browser); err != nil {
				b.raiseError(err)
				return b, nil
			}
			if err := history.Save(item.internal); err != nil {
				log.Warn(err)
			}
			return b, l.NewStatusMessage("Opened " + open.WatchURL(item.internal))
		case key.Matches(msg, b.keymap.back) && l.FilterState() == list.Unfiltered:
			if !b.previousState() {
				return b, tea.Quit
			}
			return b, nil
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.back):
			if !b.previousState() {
				return b, tea.Quit
			}
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}
	return b, nil
}
