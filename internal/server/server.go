// Package server exposes the hand evaluator over HTTP and WebSocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/lox/pokerrank/internal/config"
	"github.com/lox/pokerrank/internal/connid"
)

// Server is the evaluation service.
type Server struct {
	upgrader    websocket.Upgrader
	logger      *log.Logger
	clock       quartz.Clock
	idleTimeout time.Duration
	ids         *connid.Generator

	mu          sync.RWMutex
	connections map[*Connection]struct{}
	httpServer  *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces the clock driving idle timeouts.
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

// WithIdleTimeout closes connections that send nothing for d.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Server) { s.idleTimeout = d }
}

// WithIDGenerator replaces the connection id generator.
func WithIDGenerator(g *connid.Generator) Option {
	return func(s *Server) { s.ids = g }
}

// NewServer creates a server with a real clock and the default idle timeout.
func NewServer(logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger.WithPrefix("server"),
		clock:       quartz.NewReal(),
		idleTimeout: config.DefaultIdleTimeout,
		ids:         connid.NewGenerator(nil),
		connections: make(map[*Connection]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routes served by Start.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/evaluate", s.handleEvaluate)
	return mux
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("Starting evaluation server", "addr", addr, "idleTimeout", s.idleTimeout)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and closes every open connection.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	conns := make([]*Connection, 0, len(s.connections))
	for conn := range s.connections {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// ConnectionCount returns the number of open WebSocket connections.
func (s *Server) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

func (s *Server) register(conn *Connection) {
	s.mu.Lock()
	s.connections[conn] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "id", conn.ID(), "total", total)
}

func (s *Server) unregister(conn *Connection) {
	s.mu.Lock()
	delete(s.connections, conn)
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client disconnected", "id", conn.ID(), "total", total)
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id, err := s.ids.New()
	if err != nil {
		s.logger.Error("Failed to generate connection id", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	conn := NewConnection(id, ws, s.logger, s.clock, s.idleTimeout)
	s.register(conn)
	conn.Start()

	go func() {
		<-conn.Done()
		s.unregister(conn)
	}()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleEvaluate ranks the hand in a JSON request body.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, CodeInvalidMessage, "use POST")
		return
	}

	var req EvaluateData
	body := http.MaxBytesReader(w, r.Body, maxMessageSize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidMessage, "Failed to parse request body")
		return
	}

	result, err := evaluate(req)
	if err != nil {
		s.logger.Debug("Rejected hand", "cards", req.Cards, "error", err)
		writeError(w, http.StatusBadRequest, errorCode(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: ErrorData{Code: code, Message: message}})
}
