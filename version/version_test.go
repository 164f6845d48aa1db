package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deepc-skill/deepc/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		So(compare(t, "1.2.3", "1.2.3"), ShouldEqual, 0)
		So(compare(t, "v1.3.0", "1.2.9"), ShouldEqual, 1)
		So(compare(t, "0.1.0", "0.10.0"), ShouldEqual, -1)

		_, err := Compare("latest", "0.1.0")
		So(err, ShouldNotBeNil)
	})
}

func compare(t *testing.T, a, b string) int {
	t.Helper()
	n, err := Compare(a, b)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			_, _ = w.Write([]byte(`{"tag_name": "v0.2.0"}`))
		}))
		defer srv.Close()

		old := releasesURL
		releasesURL = srv.URL
		defer func() { releasesURL = old }()

		_ = cacher().Set("")

		Convey("Latest strips the tag prefix and caches the answer", func() {
			v, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.2.0")

			v, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.2.0")
			So(calls, ShouldEqual, 1)
		})
	})
}
