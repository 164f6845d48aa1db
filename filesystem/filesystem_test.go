package filesystem

import (
	"os"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given an in-memory backend with an existing document", t, func() {
		SetMemMapFs()
		lo.Must0(API().WriteFile("/doc.json", []byte(`{"old":true}`), 0644))

		Convey("A truncating write is invisible until closed", func() {
			f, err := GacheFs{}.OpenFile("/doc.json", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
			So(err, ShouldBeNil)

			_, err = f.Write([]byte(`{"new":true}`))
			So(err, ShouldBeNil)
			So(string(lo.Must(API().ReadFile("/doc.json"))), ShouldEqual, `{"old":true}`)

			So(f.Close(), ShouldBeNil)
			So(string(lo.Must(API().ReadFile("/doc.json"))), ShouldEqual, `{"new":true}`)
			So(lo.Must(API().Exists("/doc.json.tmp")), ShouldBeFalse)
		})

		Convey("A dropped write leaves the previous document intact", func() {
			f, err := GacheFs{}.OpenFile("/doc.json", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
			So(err, ShouldBeNil)
			_, _ = f.Write([]byte(`{"partial"`))

			So(string(lo.Must(API().ReadFile("/doc.json"))), ShouldEqual, `{"old":true}`)
		})

		Convey("Reads pass straight through", func() {
			f, err := GacheFs{}.OpenFile("/doc.json", os.O_RDONLY, 0)
			So(err, ShouldBeNil)
			_, isAtomic := f.(*AtomicFile)
			So(isAtomic, ShouldBeFalse)
			So(f.Close(), ShouldBeNil)
		})
	})
}
