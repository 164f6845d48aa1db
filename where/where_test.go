package where

import (
	"path/filepath"
	"testing"

	"github.com/deepc-skill/deepc/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Catalog() lives in the cache directory", func() {
			So(filepath.Dir(Catalog()), ShouldEqual, Cache())
			So(filepath.Base(Catalog()), ShouldEqual, "catalog.json")
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/deepc")
			So(Config(), ShouldEqual, "/custom/deepc")
			So(lo.Must(filesystem.API().IsDir("/custom/deepc")), ShouldBeTrue)
		})
	})
}
