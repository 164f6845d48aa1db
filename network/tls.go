package network

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// FingerprintClient negotiates TLS with a Chrome ClientHello. It tries HTTP/2
// first and falls back to HTTP/1.1 when the server does not speak h2.
var FingerprintClient = &http.Client{
	Timeout:   time.Minute,
	Transport: &fingerprintTransport{},
}

type fingerprintTransport struct {
	h2Once sync.Once
	h2     *http2.Transport
	h1Once sync.Once
	h1     *http.Transport
}

func (t *fingerprintTransport) h2Transport() *http2.Transport {
	t.h2Once.Do(func() {
		t.h2 = &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr, nil)
			},
		}
	})
	return t.h2
}

func (t *fingerprintTransport) h1Transport() *http.Transport {
	t.h1Once.Do(func() {
		t.h1 = &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialTLS(ctx, network, addr, []string{"http/1.1"})
			},
			ResponseHeaderTimeout: dialTimeout,
		}
	})
	return t.h1
}

// RoundTrip implements http.RoundTripper. Plain http requests bypass the fingerprint.
func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return Client.Transport.RoundTrip(req)
	}

	resp, err := t.h2Transport().RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	// Only requests without a body can be replayed safely.
	if req.Body != nil && req.Body != http.NoBody {
		return nil, err
	}

	resp, h1Err := t.h1Transport().RoundTrip(req)
	if h1Err != nil {
		return nil, errors.Join(fmt.Errorf("h2: %w", err), fmt.Errorf("h1: %w", h1Err))
	}
	return resp, nil
}

func dialTLS(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
