package netcheck

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/pion/stun"
)

// ExternalIP performs a STUN binding request and returns the mapped address.
func ExternalIP(ctx context.Context, serverAddr string, timeout time.Duration) (string, error) {
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "udp", serverAddr)
	if err != nil {
		return "", fmt.Errorf("failed to dial STUN server: %w", err)
	}
	defer conn.Close()

	c, err := stun.NewClient(conn)
	if err != nil {
		return "", fmt.Errorf("failed to create STUN client: %w", err)
	}
	// Close releases the client's read loop goroutine.
	defer c.Close()

	message := stun.MustBuild(stun.TransactionID, stun.BindingRequest)

	type result struct {
		ip  string
		err error
	}
	done := make(chan result, 1)

	go func() {
		var xorAddr stun.XORMappedAddress
		var eventErr error
		err := c.Do(message, func(res stun.Event) {
			if res.Error != nil {
				eventErr = res.Error
				return
			}
			eventErr = xorAddr.GetFrom(res.Message)
		})
		if err == nil {
			err = eventErr
		}
		if err != nil {
			done <- result{err: err}
			return
		}
		done <- result{ip: xorAddr.IP.String()}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("STUN request failed: %w", r.err)
		}
		return r.ip, nil
	case <-time.After(timeout):
		return "", fmt.Errorf("STUN request timed out")
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
