package log

import (
	"bytes"
	"testing"

	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/key"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestLog(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Emissions are discarded", func() {
			So(func() { Info("nothing"); Errorf("nothing %d", 1) }, ShouldNotPanic)
		})
	})

	Convey("Given an explicit output", t, func() {
		var buf bytes.Buffer
		SetOutput(&buf, logrus.DebugLevel)

		Convey("Structured fields are written", func() {
			WithFields(Fields{"entries": 3}).Info("catalog merged")
			So(buf.String(), ShouldContainSubstring, "catalog merged")
			So(buf.String(), ShouldContainSubstring, "entries=3")
		})

		Convey("Leveled helpers are written", func() {
			Warnf("refresh failed: %s", "boom")
			So(buf.String(), ShouldContainSubstring, "refresh failed: boom")
		})
	})

	Convey("Given logging is enabled through configuration", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "not-a-level")
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup opens the daily file and falls back to info", func() {
			So(Setup(), ShouldBeNil)
			So(logger.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})
}
