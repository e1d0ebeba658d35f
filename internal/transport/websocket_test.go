package transport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// viewerStub upgrades incoming connections and forwards every binary
// message to the received channel.
func viewerStub(t *testing.T, received chan<- []byte) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if msgType == websocket.BinaryMessage {
				received <- data
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWebSocketSendOrder(t *testing.T) {
	received := make(chan []byte, 8)
	srv := viewerStub(t, received)
	defer srv.Close()

	ws, err := DialWebSocket(context.Background(), wsURL(srv), discardLogger())
	if err != nil {
		t.Fatalf("DialWebSocket: %v", err)
	}
	defer ws.Close()

	payloads := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	for _, p := range payloads {
		if err := ws.Send(context.Background(), "set_object", "/x", p); err != nil {
			t.Fatalf("Send: %v", err)
		}
	}

	for i, want := range payloads {
		select {
		case got := <-received:
			if string(got) != string(want) {
				t.Errorf("message %d = %q, want %q", i, got, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for message %d", i)
		}
	}
}

func TestWebSocketSendAfterClose(t *testing.T) {
	received := make(chan []byte, 1)
	srv := viewerStub(t, received)
	defer srv.Close()

	ws, err := DialWebSocket(context.Background(), wsURL(srv), discardLogger())
	if err != nil {
		t.Fatalf("DialWebSocket: %v", err)
	}
	if err := ws.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := ws.Send(context.Background(), "delete", "/x", []byte("payload")); !errors.Is(err, ErrClosed) {
		t.Errorf("Send after Close = %v, want ErrClosed", err)
	}
}

func TestWebSocketCloseIdempotent(t *testing.T) {
	received := make(chan []byte, 1)
	srv := viewerStub(t, received)
	defer srv.Close()

	ws, err := DialWebSocket(context.Background(), wsURL(srv), discardLogger())
	if err != nil {
		t.Fatalf("DialWebSocket: %v", err)
	}
	if err := ws.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := ws.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestWebSocketSendCanceledContext(t *testing.T) {
	received := make(chan []byte, 1)
	srv := viewerStub(t, received)
	defer srv.Close()

	ws, err := DialWebSocket(context.Background(), wsURL(srv), discardLogger())
	if err != nil {
		t.Fatalf("DialWebSocket: %v", err)
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := ws.Send(ctx, "set_object", "/x", []byte("p")); !errors.Is(err, context.Canceled) {
		t.Errorf("Send with canceled ctx = %v, want context.Canceled", err)
	}
}

func TestDialRejectsUnknownScheme(t *testing.T) {
	if _, err := Dial(context.Background(), "ftp://127.0.0.1:21", discardLogger()); err == nil {
		t.Error("expected error for unsupported scheme")
	}
}

func TestDialWebSocketByScheme(t *testing.T) {
	received := make(chan []byte, 1)
	srv := viewerStub(t, received)
	defer srv.Close()

	tr, err := Dial(context.Background(), wsURL(srv), discardLogger())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer tr.Close()

	if _, ok := tr.(*WebSocket); !ok {
		t.Errorf("Dial returned %T, want *WebSocket", tr)
	}
}
