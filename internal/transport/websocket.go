package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket talks directly to a viewer's websocket endpoint. Commands go
// out as single binary msgpack messages; writes are serialized by a mutex
// so command order matches call order. The viewer never requests data back,
// so the read loop only drains control frames and watches for closure.
type WebSocket struct {
	conn   *websocket.Conn
	logger *slog.Logger

	writeMu sync.Mutex

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// DialWebSocket connects to a viewer endpoint such as ws://127.0.0.1:7000.
func DialWebSocket(ctx context.Context, endpoint string, logger *slog.Logger) (*WebSocket, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial %s: %w", endpoint, err)
	}
	logger.Debug("connected to viewer", "endpoint", endpoint)

	ws := &WebSocket{
		conn:   conn,
		logger: logger,
		done:   make(chan struct{}),
	}
	go ws.readLoop()
	return ws, nil
}

func (w *WebSocket) readLoop() {
	for {
		if _, _, err := w.conn.ReadMessage(); err != nil {
			w.logger.Debug("viewer connection closed", "err", err)
			w.closeOnce.Do(func() {
				w.closeErr = w.conn.Close()
				close(w.done)
			})
			return
		}
	}
}

// Send writes one command payload as a binary message. The kind and path are
// already part of the payload; the viewer routes on those fields itself.
func (w *WebSocket) Send(ctx context.Context, kind, path string, payload []byte) error {
	select {
	case <-w.done:
		return ErrClosed
	default:
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	deadline := time.Time{}
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := w.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if err := w.conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
		return fmt.Errorf("send %s %s: %w", kind, path, err)
	}
	return nil
}

// Close sends a close frame and tears the connection down. Further Sends
// return ErrClosed.
func (w *WebSocket) Close() error {
	w.closeOnce.Do(func() {
		w.writeMu.Lock()
		deadline := time.Now().Add(time.Second)
		_ = w.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		w.writeMu.Unlock()
		w.closeErr = w.conn.Close()
		close(w.done)
	})
	return w.closeErr
}
