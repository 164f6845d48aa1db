package history

import (
	"testing"

	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/media"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a movie result", t, func() {
		So(Clear(), ShouldBeNil)

		movie := &media.Result{
			Title:     "Homecoming Massacre | Full Horror Movie",
			URI:       "youtube//https://youtube.com/watch?v=mwOx2kgG26c",
			MediaType: media.Movie,
		}

		Convey("It is not watched yet", func() {
			So(Has(movie), ShouldBeFalse)
		})

		Convey("When saving it twice", func() {
			So(Save(movie), ShouldBeNil)
			So(Save(movie), ShouldBeNil)

			Convey("Then it is remembered once with a count", func() {
				watched, err := Get()
				So(err, ShouldBeNil)
				So(watched, ShouldHaveLength, 1)
				So(watched[0].URL, ShouldEqual, "https://youtube.com/watch?v=mwOx2kgG26c")
				So(watched[0].Times, ShouldEqual, 2)
				So(watched[0].Category, ShouldEqual, "movie")
				So(Has(movie), ShouldBeTrue)
			})

			Convey("And removing it forgets it", func() {
				So(Remove("https://youtube.com/watch?v=mwOx2kgG26c"), ShouldBeNil)
				So(Has(movie), ShouldBeFalse)
			})
		})

		Convey("Playlists are never recorded", func() {
			So(Save(&media.Result{Title: "DeepCDigital (Movie Playlist)", Playlist: []*media.Result{}}), ShouldBeNil)
			watched, err := Get()
			So(err, ShouldBeNil)
			So(watched, ShouldBeEmpty)
		})
	})
}
