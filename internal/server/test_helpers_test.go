package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// testLogger creates a logger that discards output for tests
func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func startTestServer(t *testing.T, opts ...Option) (*Server, *httptest.Server) {
	t.Helper()
	srv := NewServer(testLogger(), opts...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
		ts.Close()
	})
	return srv, ts
}

func dialTestServer(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func sendEvaluate(t *testing.T, conn *websocket.Conn, requestID, cards string) {
	t.Helper()
	msg, err := NewMessage(MessageTypeEvaluate, requestID, EvaluateData{Cards: cards})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(msg))
}

func readMessage(t *testing.T, conn *websocket.Conn) *Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return &msg
}

func decodeData[T any](t *testing.T, msg *Message) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(msg.Data, &v))
	return v
}
