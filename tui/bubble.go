package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/deepc-skill/deepc/icon"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/log"
	"github.com/deepc-skill/deepc/media"
	"github.com/deepc-skill/deepc/query"
	"github.com/deepc-skill/deepc/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	state         state
	statesHistory []state

	keymap *statefulKeymap

	inputC    textinput.Model
	resultsC  list.Model
	playlistC list.Model
	helpC     help.Model

	searcher   Searcher
	category   media.Category
	suggestion mo.Option[string]
	notice     string
	lastError  error

	width, height int

	options *Options
}

func newBubble(searcher Searcher, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()

	b := &statefulBubble{
		keymap:   keymap,
		searcher: searcher,
		category: lo.Ternary(options.Category == 0, media.Primary, options.Category),
		options:  options,
		helpC:    help.New(),
	}

	b.inputC = textinput.New()
	b.inputC.Placeholder = "play Homecoming Massacre"
	b.inputC.Prompt = icon.Get(icon.Search) + " "
	b.inputC.CharLimit = 120
	b.inputC.Focus()

	b.resultsC = newList(keymap)
	b.playlistC = newList(keymap)

	b.setState(searchState)
	return b
}

func newList(keymap *statefulKeymap) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowStatusBar(true)
	l.AdditionalShortHelpKeys = keymap.listKeys
	l.AdditionalFullHelpKeys = keymap.listKeys
	return l
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}
	if b.state != errorState {
		b.statesHistory = append(b.statesHistory, b.state)
	}
	b.setState(s)
}

// previousState returns false when there is nowhere to go back to.
func (b *statefulBubble) previousState() bool {
	if len(b.statesHistory) == 0 {
		return false
	}
	last := len(b.statesHistory) - 1
	b.setState(b.statesHistory[last])
	b.statesHistory = b.statesHistory[:last]
	return true
}

func (b *statefulBubble) raiseError(err error) {
	log.Error(err)
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) resize(width, height int) {
	b.width, b.height = width, height
	b.resultsC.SetSize(width-2, height-2)
	b.playlistC.SetSize(width-2, height-2)
	b.helpC.Width = width
}

func (b *statefulBubble) toggleCategory() {
	b.category = lo.Ternary(b.category == media.Documentary, media.Movie, media.Documentary)
}

// search runs the typed phrase. Empty answers stay on the prompt with a
// suggestion from the query history.
func (b *statefulBubble) search() {
	phrase := b.inputC.Value()
	results := b.searcher.Search(phrase, b.category)

	if len(results) == 0 {
		b.suggestion = query.Suggest(phrase)
		b.notice = fmt.Sprintf("No results for %q", phrase)
		return
	}

	b.notice = ""
	b.suggestion = mo.None[string]()
	if viper.GetBool(key.SearchRememberQueries) {
		if err := query.Remember(phrase, 1); err != nil {
			log.Warn(err)
		}
	}

	b.showResults(fmt.Sprintf("%s for %q", util.Quantify(len(results), "result", "results"), phrase), results)
}

func (b *statefulBubble) showResults(title string, results []*media.Result) {
	b.resultsC.Title = title
	b.resultsC.ResetFilter()
	b.resultsC.ResetSelected()
	b.resultsC.SetItems(toItems(results))
	b.newState(resultsState)
}

func (b *statefulBubble) showPlaylist(p *media.Result) {
	b.playlistC.Title = p.Title
	b.playlistC.ResetFilter()
	b.playlistC.ResetSelected()
	b.playlistC.SetItems(toItems(p.Playlist))
	b.newState(playlistState)
}
