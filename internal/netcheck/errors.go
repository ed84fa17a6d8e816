package netcheck

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// IsNetworkError reports whether err came from the network rather than from a response.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// ErrorMessage returns a short user-facing description of a network failure.
func ErrorMessage(err error) string {
	if err == nil {
		return "Unknown network error"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Sprintf("DNS error: cannot resolve hostname (%s)", dnsErr.Name)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return "Network error: cannot connect to server"
	}

	// context.DeadlineExceeded is itself a net.Error, so check it first.
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timeout: operation took too long"
	}
	if errors.Is(err, context.Canceled) {
		return "Request canceled"
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "Network timeout: connection timed out"
	}

	return err.Error()
}
