package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/go-zeromq/zmq4"
)

// ZMQ talks to meshcat-server over a REQ socket. Each command is a
// multipart message [kind, path, payload]; the server acknowledges every
// command with a reply frame, which also serializes the stream.
type ZMQ struct {
	sock   zmq4.Socket
	logger *slog.Logger

	mu     sync.Mutex // serializes round trips
	closed atomic.Bool
}

// DialZMQ connects a REQ socket to a meshcat-server endpoint such as
// tcp://127.0.0.1:6000.
func DialZMQ(ctx context.Context, endpoint string, logger *slog.Logger) (*ZMQ, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// The socket outlives the dial context; its lifetime ends with Close.
	sock := zmq4.NewReq(context.Background())
	if err := sock.Dial(endpoint); err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	logger.Debug("connected to meshcat server", "endpoint", endpoint)
	return &ZMQ{sock: sock, logger: logger}, nil
}

// Send delivers one command and waits for the server's acknowledgment.
// zmq4's Recv does not honor contexts, so an expired context closes the
// connection to unblock the read; a REQ socket with an abandoned request
// cannot be reused anyway. Further Sends then return ErrClosed.
func (z *ZMQ) Send(ctx context.Context, kind, path string, payload []byte) error {
	z.mu.Lock()
	defer z.mu.Unlock()
	if z.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := zmq4.NewMsgFrom([]byte(kind), []byte(path), payload)
	done := make(chan error, 1)
	go func() { done <- z.roundTrip(msg, kind, path) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		z.closed.Store(true)
		z.sock.Close()
		return ctx.Err()
	}
}

func (z *ZMQ) roundTrip(msg zmq4.Msg, kind, path string) error {
	if err := z.sock.Send(msg); err != nil {
		if z.closed.Load() {
			return ErrClosed
		}
		return fmt.Errorf("send %s %s: %w", kind, path, err)
	}
	reply, err := z.sock.Recv()
	if err != nil {
		if z.closed.Load() {
			return ErrClosed
		}
		return fmt.Errorf("recv reply for %s %s: %w", kind, path, err)
	}
	if len(reply.Frames) > 0 {
		z.logger.Debug("server reply", "kind", kind, "path", path, "reply", string(reply.Frames[0]))
	}
	return nil
}

// Close shuts the socket down, interrupting any in-flight round trip.
// Further Sends return ErrClosed.
func (z *ZMQ) Close() error {
	if z.closed.Swap(true) {
		return nil
	}
	return z.sock.Close()
}
