// Package netcheck holds the network diagnostics offered next to the tunnel controls.
package netcheck

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/txthinking/socks5"

	"warp-manager/internal/debuglog"
)

// TraceResult is the subset of the Cloudflare trace response the UI shows.
type TraceResult struct {
	IP       string
	Colo     string
	Location string
	// Warp is "on", "plus" or "off".
	Warp string
}

// WarpActive reports whether the trace saw the request arrive through WARP.
func (r TraceResult) WarpActive() bool {
	return r.Warp == "on" || r.Warp == "plus"
}

// ParseTrace parses the key=value lines of a cdn-cgi/trace response.
func ParseTrace(r io.Reader) (TraceResult, error) {
	var res TraceResult
	scanner := bufio.NewScanner(r)
	seen := 0
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		seen++
		switch key {
		case "ip":
			res.IP = value
		case "colo":
			res.Colo = value
		case "loc":
			res.Location = value
		case "warp":
			res.Warp = value
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("failed to read trace: %w", err)
	}
	if seen == 0 {
		return res, fmt.Errorf("trace response has no key=value lines")
	}
	if res.Warp == "" {
		res.Warp = "off"
	}
	return res, nil
}

// TraceClient fetches the Cloudflare trace, directly or through a SOCKS5 proxy.
type TraceClient struct {
	URL     string
	Timeout time.Duration
	// ProxyAddr routes the request through WARP's proxy-mode listener when set.
	ProxyAddr string
}

// Trace fetches and parses the trace endpoint.
func (tc TraceClient) Trace(ctx context.Context) (TraceResult, error) {
	client, err := tc.httpClient()
	if err != nil {
		return TraceResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.URL, nil)
	if err != nil {
		return TraceResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "warp-manager/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return TraceResult{}, fmt.Errorf("trace request failed: %w", err)
	}
	defer debuglog.RunAndLog("Trace: close response body", resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return TraceResult{}, fmt.Errorf("trace request failed: HTTP %d", resp.StatusCode)
	}
	return ParseTrace(io.LimitReader(resp.Body, 64*1024))
}

func (tc TraceClient) httpClient() (*http.Client, error) {
	timeout := tc.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: timeout,
		DisableKeepAlives:   true,
	}

	if tc.ProxyAddr != "" {
		secs := int(timeout / time.Second)
		if secs < 1 {
			secs = 1
		}
		proxy, err := socks5.NewClient(tc.ProxyAddr, "", "", secs, secs)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 client for %s: %w", tc.ProxyAddr, err)
		}
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			return proxy.Dial(network, addr)
		}
	}

	return &http.Client{Timeout: timeout, Transport: transport}, nil
}
