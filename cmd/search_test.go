package cmd

import (
	"bytes"
	"testing"

	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/inline"
	"github.com/deepc-skill/deepc/media"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type staticSearcher []*media.Result

func (s staticSearcher) Search(string, media.Category) []*media.Result {
	return s
}

var answer = staticSearcher{
	{Title: "Homecoming Massacre", MediaType: media.Movie, MatchConfidence: 75, URI: "youtube//https://youtube.com/watch?v=1"},
}

func TestSearchTo(t *testing.T) {
	Convey("Given an output file", t, func() {
		path := "/search-test/results.txt"
		options := &inline.Options{Query: "play homecoming massacre", Category: media.Movie}

		results, err := searchTo(answer, options, path)
		So(err, ShouldBeNil)
		So(results, ShouldHaveLength, 1)

		Convey("The answer is written to the file", func() {
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "75\tmovie\tHomecoming Massacre\thttps://youtube.com/watch?v=1\n")
		})

		Convey("The file is closed on return", func() {
			_, err := options.Out.Write([]byte("late"))
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Without an output file the answer goes to the writer", t, func() {
		var buf bytes.Buffer
		options := &inline.Options{Out: &buf, Json: true}

		_, err := searchTo(answer, options, "")
		So(err, ShouldBeNil)
		So(options.Out, ShouldPointTo, &buf)
		So(buf.String(), ShouldContainSubstring, `"title": "Homecoming Massacre"`)
	})
}
