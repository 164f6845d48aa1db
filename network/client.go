// Package network provides the HTTP clients used to download the remote catalog.
package network

import (
	"net/http"
	"time"

	"github.com/deepc-skill/deepc/key"
	"github.com/spf13/viper"
)

// Client is the shared HTTP client used when no TLS fingerprint is requested.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// Default returns the client selected by configuration.
func Default() *http.Client {
	if viper.GetBool(key.NetworkTLSFingerprint) {
		return FingerprintClient
	}
	return Client
}
