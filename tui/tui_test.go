package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/media"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeSearcher struct {
	results  []*media.Result
	category media.Category
}

func (f *fakeSearcher) Search(phrase string, category media.Category) []*media.Result {
	f.category = category
	if phrase == "nothing" {
		return nil
	}
	return f.results
}

func (f *fakeSearcher) Featured() []*media.Result {
	return f.results
}

func TestBubble(t *testing.T) {
	Convey("Given a browser over one movie and a playlist", t, func() {
		movie := &media.Result{Title: "Homecoming Massacre", URI: "youtube//u1", MediaType: media.Movie, MatchConfidence: 75}
		playlist := &media.Result{Title: "DeepCDigital (Movie Playlist)", MediaType: media.Movie, Playlist: []*media.Result{movie}}
		searcher := &fakeSearcher{results: []*media.Result{movie, playlist}}

		b := newBubble(searcher, &Options{})
		b.resize(80, 24)

		Convey("It starts on the search prompt", func() {
			So(b.state, ShouldEqual, searchState)
			So(b.category, ShouldEqual, media.Movie)
		})

		Convey("ctrl+t switches to documentaries", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
			b.inputC.SetValue("play something")
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(searcher.category, ShouldEqual, media.Documentary)
		})

		Convey("A search without results stays on the prompt", func() {
			b.inputC.SetValue("nothing")
			b.search()
			So(b.state, ShouldEqual, searchState)
			So(b.notice, ShouldContainSubstring, "nothing")
		})

		Convey("A search with results lists them", func() {
			b.inputC.SetValue("play Homecoming Massacre")
			b.search()
			So(b.state, ShouldEqual, resultsState)
			So(len(b.resultsC.Items()), ShouldEqual, 2)

			Convey("Entering the playlist shows its entries", func() {
				b.resultsC.Select(1)
				b.Update(tea.KeyMsg{Type: tea.KeyEnter})
				So(b.state, ShouldEqual, playlistState)
				So(len(b.playlistC.Items()), ShouldEqual, 1)

				Convey("And esc goes back to the results", func() {
					b.Update(tea.KeyMsg{Type: tea.KeyEsc})
					So(b.state, ShouldEqual, resultsState)
				})
			})
		})

		Convey("Errors are shown until dismissed", func() {
			b.Update(errFake)
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "boom")

			b.Update(tea.KeyMsg{Type: tea.KeyEsc})
			So(b.state, ShouldEqual, searchState)
		})
	})
}

type fakeError string

func (e fakeError) Error() string { return string(e) }

var errFake error = fakeError("boom")

func TestListItem(t *testing.T) {
	Convey("List items describe their result", t, func() {
		doc := &listItem{internal: &media.Result{Title: "Is Genesis History?", MediaType: media.Documentary, Author: "Deep C Digital", MatchConfidence: 50}}
		So(doc.FilterValue(), ShouldEqual, "Is Genesis History?")
		So(doc.Title(), ShouldContainSubstring, "Is Genesis History?")
		So(doc.Description(), ShouldContainSubstring, "documentary")
		So(doc.Description(), ShouldContainSubstring, "Deep C Digital")

		pl := &listItem{internal: &media.Result{Title: "P", Playlist: []*media.Result{{}, {}}}}
		So(pl.Description(), ShouldContainSubstring, "2 entries")
	})
}
