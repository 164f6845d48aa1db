package media

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseCategory(t *testing.T) {
	Convey("ParseCategory", t, func() {
		Convey("Accepts names in any case", func() {
			c, err := ParseCategory(" Documentary ")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, Documentary)

			c, err = ParseCategory("MOVIE")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, Movie)
		})

		Convey("Accepts the numeric platform value", func() {
			c, err := ParseCategory("15")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, Documentary)
		})

		Convey("Rejects anything else", func() {
			_, err := ParseCategory("podcast")
			So(errors.Is(err, ErrUnknownCategory), ShouldBeTrue)

			_, err = ParseCategory("3")
			So(errors.Is(err, ErrUnknownCategory), ShouldBeTrue)
		})
	})
}

func TestCategoryString(t *testing.T) {
	Convey("Category names", t, func() {
		So(Movie.String(), ShouldEqual, "movie")
		So(Documentary.String(), ShouldEqual, "documentary")
		So(Category(3).String(), ShouldEqual, "category(3)")
		So(Video.String(), ShouldEqual, "video")
	})
}

func TestResultJSON(t *testing.T) {
	Convey("Given a search result", t, func() {
		r := &Result{
			Title:           "Homecoming Massacre",
			MatchConfidence: 75,
			MediaType:       Movie,
			URI:             "youtube//u1",
			Playback:        Video,
		}

		Convey("It serializes with the playback layer field names", func() {
			var out map[string]any
			So(json.Unmarshal(must(json.Marshal(r)), &out), ShouldBeNil)
			So(out["match_confidence"], ShouldEqual, float64(75))
			So(out["media_type"], ShouldEqual, float64(10))
			So(out["playback"], ShouldEqual, float64(1))
			So(out, ShouldNotContainKey, "playlist")
		})

		Convey("It is not a playlist", func() {
			So(r.IsPlaylist(), ShouldBeFalse)
		})

		Convey("An empty playlist envelope is still a playlist", func() {
			r.Playlist = []*Result{}
			So(r.IsPlaylist(), ShouldBeTrue)
		})
	})
}

func must(b []byte, err error) []byte {
	if err != nil {
		panic(err)
	}
	return b
}
