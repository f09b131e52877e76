package net

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"
)

// shared client (keep-alive, TLS session reuse).
var client = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        16,
		MaxIdleConnsPerHost: 8,
		DisableCompression:  false,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
	},
}

// NewGET builds a corpus-fetch request bound to ctx.
func NewGET(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "application/json, text/plain")
	return req, nil
}

// Do forwards to the shared *http.Client.
func Do(req *http.Request) (*http.Response, error) { return client.Do(req) }

const ua = "fuzzydist/1.0 (+https://github.com/Alfex4936/fuzzydist)"
