package network

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deepc-skill/deepc/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	Convey("Given the fingerprint setting", t, func() {
		Convey("When disabled the shared client is used", func() {
			viper.Set(key.NetworkTLSFingerprint, false)
			So(Default(), ShouldEqual, Client)
		})

		Convey("When enabled the fingerprint client is used", func() {
			viper.Set(key.NetworkTLSFingerprint, true)
			So(Default(), ShouldEqual, FingerprintClient)
			viper.Set(key.NetworkTLSFingerprint, false)
		})
	})
}

func TestFingerprintTransportPlainHTTP(t *testing.T) {
	Convey("Given a plain http server", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))
		defer srv.Close()

		Convey("The fingerprint client passes the request through", func() {
			resp, err := FingerprintClient.Get(srv.URL)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			So(string(body), ShouldEqual, "ok")
		})
	})
}
