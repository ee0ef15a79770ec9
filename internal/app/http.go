package app

import (
	"net"
	"net/http"
	"time"
)

// newHTTPClient returns the shared client for both tiers. Per-request limits
// come from the tier timeouts, so the client-wide Timeout is only a backstop.
func newHTTPClient(backstop time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if backstop <= 0 {
		backstop = 30 * time.Second
	}
	return &http.Client{
		Transport: transport,
		Timeout:   backstop,
	}
}
