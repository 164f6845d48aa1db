package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/media"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

var mirrorSeq atomic.Int64

func tempMirror() string {
	return filepath.Join("/catalog-test", fmt.Sprintf("%d.json", mirrorSeq.Add(1)))
}

func doc(records ...*media.Record) *Document {
	d := NewDocument()
	for _, r := range records {
		d.Set(r.URL, r)
	}
	return d
}

func urls(records []*media.Record) []string {
	return lo.Map(records, func(r *media.Record, _ int) string { return r.URL })
}

func TestStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		path := tempMirror()
		s := NewStore(path)

		Convey("Loading without a mirror gives an empty catalog", func() {
			So(s.Load(), ShouldBeNil)
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("Merge appends new keys in document order", func() {
			added, err := s.Merge(doc(
				&media.Record{URL: "a", Title: "A"},
				&media.Record{URL: "b", Title: "B"},
			))
			So(err, ShouldBeNil)
			So(added, ShouldEqual, 2)
			So(urls(s.Records()), ShouldResemble, []string{"a", "b"})

			Convey("And overwrites existing keys in place", func() {
				added, err := s.Merge(doc(
					&media.Record{URL: "c", Title: "C"},
					&media.Record{URL: "a", Title: "A2"},
				))
				So(err, ShouldBeNil)
				So(added, ShouldEqual, 1)
				So(urls(s.Records()), ShouldResemble, []string{"a", "b", "c"})
				So(s.Records()[0].Title, ShouldEqual, "A2")
			})

			Convey("Merging the same document twice changes nothing", func() {
				before := s.Records()
				added, err := s.Merge(doc(
					&media.Record{URL: "a", Title: "A"},
					&media.Record{URL: "b", Title: "B"},
				))
				So(err, ShouldBeNil)
				So(added, ShouldEqual, 0)
				So(s.Records(), ShouldResemble, before)
			})

			Convey("Merging an empty document keeps every record", func() {
				_, err := s.Merge(NewDocument())
				So(err, ShouldBeNil)
				So(s.Len(), ShouldEqual, 2)
			})

			Convey("A fresh store reads the mirror back in the same order", func() {
				other := NewStore(path)
				So(other.Load(), ShouldBeNil)
				So(urls(other.Records()), ShouldResemble, []string{"a", "b"})
				So(other.Records()[1].Title, ShouldEqual, "B")
			})
		})

		Convey("Records without a url take the document key", func() {
			d := NewDocument()
			d.Set("https://youtube.com/watch?v=x", &media.Record{Title: "X"})
			d.Set("nil", nil)
			_, err := s.Merge(d)
			So(err, ShouldBeNil)
			So(urls(s.Records()), ShouldResemble, []string{"https://youtube.com/watch?v=x"})
		})

		Convey("Records returns a snapshot", func() {
			_, _ = s.Merge(doc(&media.Record{URL: "a"}))
			snapshot := s.Records()
			_, _ = s.Merge(doc(&media.Record{URL: "b"}))
			So(len(snapshot), ShouldEqual, 1)
		})
	})

	Convey("Given a corrupt mirror", t, func() {
		path := tempMirror()
		So(afero.WriteFile(filesystem.API(), path, []byte("{not json"), 0644), ShouldBeNil)

		s := NewStore(path)

		Convey("Load starts empty", func() {
			_ = s.Load()
			So(s.Len(), ShouldEqual, 0)
		})
	})
}

func TestFetch(t *testing.T) {
	viper.Set(key.CatalogTimeout, 5*time.Second)

	Convey("Given a catalog server", t, func() {
		var status atomic.Int32
		status.Store(http.StatusOK)
		body := `{
			"https://youtube.com/watch?v=2": {"url": "https://youtube.com/watch?v=2", "title": "Second", "author": "Deep C", "thumbnail": "t2"},
			"https://youtube.com/watch?v=1": {"title": "First"}
		}`

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := int(status.Load())
			w.WriteHeader(code)
			if code == http.StatusOK {
				_, _ = w.Write([]byte(body))
			}
		}))
		defer srv.Close()

		Convey("Fetch keeps document order", func() {
			d, err := Fetch(context.Background(), srv.URL)
			So(err, ShouldBeNil)
			So(d.Len(), ShouldEqual, 2)
			So(d.Oldest().Key, ShouldEqual, "https://youtube.com/watch?v=2")
			So(d.Oldest().Value.Author, ShouldEqual, "Deep C")
		})

		Convey("A non-2xx answer is an error", func() {
			status.Store(http.StatusServiceUnavailable)
			_, err := Fetch(context.Background(), srv.URL)
			So(errors.Is(err, ErrBadStatus), ShouldBeTrue)
		})

		Convey("A malformed body is an error", func() {
			body = `["not", "an", "object"]`
			_, err := Fetch(context.Background(), srv.URL)
			So(err, ShouldNotBeNil)
		})

		Convey("Refresh merges into the store", func() {
			s := NewStore(tempMirror())
			added, err := s.Refresh(context.Background(), srv.URL)
			So(err, ShouldBeNil)
			So(added, ShouldEqual, 2)
			So(s.Records()[1].URL, ShouldEqual, "https://youtube.com/watch?v=1")

			Convey("And a failed refresh leaves it untouched", func() {
				status.Store(http.StatusInternalServerError)
				_, err := s.Refresh(context.Background(), srv.URL)
				So(err, ShouldNotBeNil)
				So(s.Len(), ShouldEqual, 2)
			})
		})
	})
}

func TestRefresher(t *testing.T) {
	Convey("Next stays inside the window", t, func() {
		r := NewRefresher(time.Hour, 24*time.Hour, nil)
		for i := 0; i < 1000; i++ {
			d := r.Next()
			So(d, ShouldBeGreaterThanOrEqualTo, time.Hour)
			So(d, ShouldBeLessThan, 24*time.Hour)
		}

		r.Int64N = func(n int64) int64 { return n - 1 }
		So(r.Next(), ShouldEqual, 24*time.Hour-1)
		r.Int64N = func(int64) int64 { return 0 }
		So(r.Next(), ShouldEqual, time.Hour)
	})

	Convey("Given a fast refresher whose runs fail", t, func() {
		var runs atomic.Int32
		r := NewRefresher(time.Millisecond, 2*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return errors.New("offline")
		})

		r.Start(context.Background())
		So(r.Running(), ShouldBeTrue)

		deadline := time.Now().Add(5 * time.Second)
		for runs.Load() < 3 && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}

		Convey("It keeps re-arming", func() {
			So(runs.Load(), ShouldBeGreaterThanOrEqualTo, 3)
		})

		r.Stop()

		Convey("Stop halts further runs", func() {
			So(r.Running(), ShouldBeFalse)
			n := runs.Load()
			time.Sleep(20 * time.Millisecond)
			So(runs.Load(), ShouldEqual, n)
		})
	})

	Convey("A zero window falls back to the default bounds", t, func() {
		r := NewRefresher(0, 0, nil)
		for i := 0; i < 1000; i++ {
			d := r.Next()
			So(d, ShouldBeGreaterThanOrEqualTo, constant.RefreshMinDelay)
			So(d, ShouldBeLessThan, constant.RefreshMaxDelay)
		}
	})

	Convey("An inverted window never returns less than the minimum", t, func() {
		r := NewRefresher(2*time.Hour, time.Hour, nil)
		r.Int64N = func(n int64) int64 { return n - 1 }
		So(r.Next(), ShouldEqual, 2*time.Hour)
		r.Int64N = func(int64) int64 { return 0 }
		So(r.Next(), ShouldEqual, 2*time.Hour)
	})

	Convey("Stop on a stopped refresher is harmless", t, func() {
		r := NewRefresher(time.Hour, 2*time.Hour, func(context.Context) error { return nil })
		r.Stop()
		So(r.Running(), ShouldBeFalse)
	})
}
