package vocab

import (
	"testing"

	"github.com/deepc-skill/deepc/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFold(t *testing.T) {
	Convey("Fold", t, func() {
		Convey("Lowercases and collapses punctuation", func() {
			So(Fold("  Is Genesis History? (2017) "), ShouldEqual, "is genesis history 2017")
		})

		Convey("Strips accents", func() {
			So(Fold("Pokémon: Le Film"), ShouldEqual, "pokemon le film")
		})

		Convey("Folds to nothing when there is nothing to match", func() {
			So(Fold("¿?.!"), ShouldEqual, "")
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given a registry with movie and documentary phrases", t, func() {
		r := NewRegistry()
		r.Register(media.Movie, "movie_name", []string{"Homecoming Massacre", "Homecoming", "Foo: Bar Baz", "Foo", "Bar Baz"})
		r.Register(media.Documentary, "documentary_name", []string{"Is Genesis History"})
		r.Register(media.Movie, "movie_streaming_provider", []string{"Deep C Digital", "DeepCDigital"})

		Convey("The longest phrase of a group wins", func() {
			m := r.Match("play Homecoming Massacre")
			So(m, ShouldResemble, map[string]string{"movie_name": "Homecoming Massacre"})
		})

		Convey("Matching ignores case and punctuation", func() {
			m := r.Match("PLAY is genesis history?")
			So(m, ShouldResemble, map[string]string{"documentary_name": "Is Genesis History"})
		})

		Convey("Phrases only match on word boundaries", func() {
			So(r.Match("play foobar"), ShouldBeEmpty)
		})

		Convey("Several groups can match one utterance", func() {
			m := r.Match("play bar baz on deep c digital")
			So(m["movie_name"], ShouldEqual, "Bar Baz")
			So(m["movie_streaming_provider"], ShouldEqual, "Deep C Digital")
			So(len(m), ShouldEqual, 2)
		})

		Convey("An empty utterance matches nothing", func() {
			So(r.Match("   "), ShouldBeEmpty)
		})

		Convey("Registering again replaces the group", func() {
			r.Register(media.Movie, "movie_name", []string{"Other"})
			So(r.Match("play Homecoming Massacre"), ShouldBeEmpty)
			So(r.Phrases(media.Movie, "movie_name"), ShouldResemble, []string{"Other"})
		})

		Convey("Empty and duplicate phrases are dropped", func() {
			r.Register(media.Movie, "movie_name", []string{"", "?!", "Foo", "foo"})
			So(r.Phrases(media.Movie, "movie_name"), ShouldResemble, []string{"Foo"})
		})

		Convey("Groups are listed per category", func() {
			So(r.Groups(media.Movie), ShouldResemble, []string{"movie_name", "movie_streaming_provider"})
			So(r.Groups(media.Documentary), ShouldResemble, []string{"documentary_name"})
		})
	})
}
