package server

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/lox/pokerrank/internal/connid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocketEvaluate(t *testing.T) {
	t.Parallel()
	_, ts := startTestServer(t)
	conn := dialTestServer(t, ts)

	sendEvaluate(t, conn, "req-1", "Kd 5s Jc Ah Qc")
	msg := readMessage(t, conn)

	assert.Equal(t, MessageTypeResult, msg.Type)
	assert.Equal(t, "req-1", msg.RequestID)

	result := decodeData[ResultData](t, msg)
	assert.Equal(t, 6190, result.Rank)
	assert.Equal(t, "High Card", result.Category)
	assert.Equal(t, []string{"Kd", "5s", "Jc", "Ah", "Qc"}, result.Cards)
}

func TestWebSocketPipelinedRequests(t *testing.T) {
	t.Parallel()
	_, ts := startTestServer(t)
	conn := dialTestServer(t, ts)

	hands := map[string]int{
		"a": 1,    // AsKsQsJsTs
		"b": 1609, // 5c4d3h2sAc
		"c": 3326, // AA KQJ
	}
	sendEvaluate(t, conn, "a", "AsKsQsJsTs")
	sendEvaluate(t, conn, "b", "5c4d3h2sAc")
	sendEvaluate(t, conn, "c", "AcAdKhQsJc")

	for range hands {
		msg := readMessage(t, conn)
		require.Equal(t, MessageTypeResult, msg.Type)
		want, ok := hands[msg.RequestID]
		require.True(t, ok, "unexpected request id %q", msg.RequestID)
		assert.Equal(t, want, decodeData[ResultData](t, msg).Rank)
	}
}

func TestWebSocketErrors(t *testing.T) {
	t.Parallel()
	_, ts := startTestServer(t)
	conn := dialTestServer(t, ts)

	tests := []struct {
		name  string
		send  func(t *testing.T)
		reqID string
		code  string
	}{
		{
			name:  "duplicate card",
			send:  func(t *testing.T) { sendEvaluate(t, conn, "dup", "AsAsQsJsTs") },
			reqID: "dup",
			code:  CodeDuplicateCard,
		},
		{
			name:  "wrong size",
			send:  func(t *testing.T) { sendEvaluate(t, conn, "short", "AsKs") },
			reqID: "short",
			code:  CodeWrongHandSize,
		},
		{
			name:  "invalid card",
			send:  func(t *testing.T) { sendEvaluate(t, conn, "bad", "AsKsQsJsTz") },
			reqID: "bad",
			code:  CodeInvalidCard,
		},
		{
			name: "unknown type",
			send: func(t *testing.T) {
				require.NoError(t, conn.WriteJSON(map[string]any{"type": "shuffle", "requestId": "x"}))
			},
			reqID: "x",
			code:  CodeUnknownMessageType,
		},
		{
			name: "bad data",
			send: func(t *testing.T) {
				require.NoError(t, conn.WriteJSON(map[string]any{"type": "evaluate", "requestId": "y", "data": 42}))
			},
			reqID: "y",
			code:  CodeInvalidMessage,
		},
		{
			name: "not json",
			send: func(t *testing.T) {
				require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello")))
			},
			code: CodeInvalidMessage,
		},
	}

	// Subtests share one connection, so they run in order.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.send(t)
			msg := readMessage(t, conn)
			require.Equal(t, MessageTypeError, msg.Type)
			assert.Equal(t, tt.reqID, msg.RequestID)

			data := decodeData[ErrorData](t, msg)
			assert.Equal(t, tt.code, data.Code)
			assert.NotEmpty(t, data.Message)
		})
	}
}

func TestWebSocketConnectionTracking(t *testing.T) {
	t.Parallel()
	srv, ts := startTestServer(t)

	conn := dialTestServer(t, ts)
	require.Eventually(t, func() bool { return srv.ConnectionCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	require.Eventually(t, func() bool { return srv.ConnectionCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWebSocketConnectionIDs(t *testing.T) {
	t.Parallel()
	srv, ts := startTestServer(t, WithIDGenerator(connid.NewGenerator(nil)))

	dialTestServer(t, ts)
	dialTestServer(t, ts)
	require.Eventually(t, func() bool { return srv.ConnectionCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	srv.mu.RLock()
	defer srv.mu.RUnlock()
	seen := make(map[string]bool)
	for c := range srv.connections {
		require.NoError(t, connid.Validate(c.ID()))
		assert.False(t, seen[c.ID()])
		seen[c.ID()] = true
	}
}

func TestIdleTimeout(t *testing.T) {
	t.Parallel()
	mClock := quartz.NewMock(t)
	srv, ts := startTestServer(t, WithClock(mClock), WithIdleTimeout(time.Minute))
	conn := dialTestServer(t, ts)

	// A round trip guarantees the idle timer has been armed.
	sendEvaluate(t, conn, "1", "AsKsQsJsTs")
	readMessage(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	mClock.Advance(time.Minute).MustWait(ctx)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	require.Eventually(t, func() bool { return srv.ConnectionCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestIdleTimeoutResetByActivity(t *testing.T) {
	t.Parallel()
	mClock := quartz.NewMock(t)
	_, ts := startTestServer(t, WithClock(mClock), WithIdleTimeout(time.Minute))
	conn := dialTestServer(t, ts)

	sendEvaluate(t, conn, "1", "AsKsQsJsTs")
	readMessage(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	mClock.Advance(59 * time.Second).MustWait(ctx)

	// Activity restarts the countdown from the current mock time.
	sendEvaluate(t, conn, "2", "AsKsQsJsTs")
	assert.Equal(t, "2", readMessage(t, conn).RequestID)

	mClock.Advance(30 * time.Second).MustWait(ctx)
	sendEvaluate(t, conn, "3", "AsKsQsJsTs")
	assert.Equal(t, "3", readMessage(t, conn).RequestID)

	mClock.Advance(time.Minute).MustWait(ctx)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestShutdownClosesConnections(t *testing.T) {
	t.Parallel()
	srv, ts := startTestServer(t)
	conn := dialTestServer(t, ts)
	require.Eventually(t, func() bool { return srv.ConnectionCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestSendMessageAfterClose(t *testing.T) {
	t.Parallel()
	srv, ts := startTestServer(t)
	dialTestServer(t, ts)
	require.Eventually(t, func() bool { return srv.ConnectionCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	srv.mu.RLock()
	var conn *Connection
	for c := range srv.connections {
		conn = c
	}
	srv.mu.RUnlock()

	msg, err := NewMessage(MessageTypeResult, "late", ResultData{Rank: 1})
	require.NoError(t, err)

	require.NoError(t, conn.Close())
	<-conn.Done()

	err = conn.SendMessage(msg)
	assert.ErrorIs(t, err, ErrConnectionClosed)

	// Closing twice is harmless and replies to a closed peer are dropped.
	assert.NoError(t, conn.Close())
	conn.sendError("late", CodeInvalidMessage, "too late")
}
