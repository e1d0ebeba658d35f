// Package transport delivers encoded scene commands to a meshcat server.
//
// Two transports exist: a ZMQ REQ socket for the meshcat-server bridge
// (tcp:// endpoints) and a WebSocket connection straight to a viewer
// (ws:// and wss:// endpoints). Both guarantee in-order delivery of
// commands sent through a single connection.
package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
)

// ErrClosed is returned by Send after the connection has been closed.
var ErrClosed = errors.New("transport: connection closed")

// Transport is a one-way, ordered command channel to the server.
// Implementations are safe for concurrent use.
type Transport interface {
	// Send delivers one command frame set: its kind tag, scene path, and
	// msgpack payload.
	Send(ctx context.Context, kind, path string, payload []byte) error
	Close() error
}

// Dial connects to endpoint, picking the transport from the URL scheme.
func Dial(ctx context.Context, endpoint string, logger *slog.Logger) (Transport, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	switch u.Scheme {
	case "tcp", "ipc", "inproc":
		return DialZMQ(ctx, endpoint, logger)
	case "ws", "wss":
		return DialWebSocket(ctx, endpoint, logger)
	default:
		return nil, fmt.Errorf("unsupported endpoint scheme %q (want tcp, ipc, ws, or wss)", u.Scheme)
	}
}
