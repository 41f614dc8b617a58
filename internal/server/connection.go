package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	sendBufferSize = 64
)

// ErrConnectionClosed is returned by SendMessage once the connection has
// been closed or its send buffer has overflowed.
var ErrConnectionClosed = websocket.ErrCloseSent

// Connection is one WebSocket client.
type Connection struct {
	id          string
	conn        *websocket.Conn
	send        chan *Message
	logger      *log.Logger
	clock       quartz.Clock
	idleTimeout time.Duration
	ctx         context.Context
	cancel      context.CancelFunc
	closeOnce   sync.Once

	mu        sync.Mutex
	idleTimer *quartz.Timer
}

// NewConnection wraps an upgraded socket.
func NewConnection(id string, conn *websocket.Conn, logger *log.Logger, clock quartz.Clock, idleTimeout time.Duration) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		id:          id,
		conn:        conn,
		send:        make(chan *Message, sendBufferSize),
		logger:      logger.WithPrefix(id),
		clock:       clock,
		idleTimeout: idleTimeout,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// ID returns the connection id.
func (c *Connection) ID() string {
	return c.id
}

// Done is closed once the connection has been closed.
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Start arms the idle timer and begins handling the connection
func (c *Connection) Start() {
	c.touch()
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()

		c.mu.Lock()
		if c.idleTimer != nil {
			c.idleTimer.Stop()
		}
		c.mu.Unlock()

		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// touch restarts the idle countdown.
func (c *Connection) touch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx.Err() != nil {
		return
	}
	if c.idleTimer != nil {
		c.idleTimer.Stop()
	}
	c.idleTimer = c.clock.AfterFunc(c.idleTimeout, c.expire)
}

func (c *Connection) expire() {
	c.logger.Info("Closing idle connection", "timeout", c.idleTimeout)
	_ = c.Close()
}

// SendMessage queues a message for the write pump
func (c *Connection) SendMessage(msg *Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			// The idle timer closed the channel between the check and the send.
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
			err = ErrConnectionClosed
		}
	}()

	select {
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
	}

	select {
	case c.send <- msg:
		return nil
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && c.ctx.Err() == nil {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}

		c.touch()
		c.handlePayload(payload)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Connection) handlePayload(payload []byte) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		c.sendError("", CodeInvalidMessage, "Failed to parse message")
		return
	}
	c.handleMessage(&msg)
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug("Received message", "type", msg.Type, "requestId", msg.RequestID)

	switch msg.Type {
	case MessageTypeEvaluate:
		var data EvaluateData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, CodeInvalidMessage, "Failed to parse evaluate data")
			return
		}
		c.handleEvaluate(msg.RequestID, data)

	default:
		c.sendError(msg.RequestID, CodeUnknownMessageType, "Unknown message type: "+msg.Type.String())
	}
}

func (c *Connection) handleEvaluate(requestID string, data EvaluateData) {
	result, err := evaluate(data)
	if err != nil {
		c.logger.Debug("Rejected hand", "cards", data.Cards, "error", err)
		c.sendError(requestID, errorCode(err), err.Error())
		return
	}

	response, err := NewMessage(MessageTypeResult, requestID, result)
	if err != nil {
		c.logger.Error("Failed to create result message", "error", err)
		return
	}
	if err := c.SendMessage(response); err != nil {
		c.logger.Debug("Dropped result", "requestId", requestID, "error", err)
	}
}

// sendError sends an error message to the client
func (c *Connection) sendError(requestID, code, message string) {
	errorMsg, err := NewMessage(MessageTypeError, requestID, ErrorData{
		Code:    code,
		Message: message,
	})
	if err != nil {
		c.logger.Error("Failed to create error message", "error", err)
		return
	}

	if err := c.SendMessage(errorMsg); err != nil {
		c.logger.Debug("Dropped error reply", "requestId", requestID, "code", code, "error", err)
	}
}
