// Package socket manages the realtime connection to the Phoenixx server.
// A Session is explicitly owned by whoever opens it and lives for one
// logged-in user: switching accounts means closing the session and opening
// a new one, so a connection can never stay bound to a stale user.
package socket

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/json-iterator/go"

	"github.com/gorilla/websocket"
	"github.com/sparktechagency/phoenixx-cli/pkg/config"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
)

// Frame is the wire envelope for server events. Data stays raw so each
// handler can decode and validate its own payload shape.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Config holds realtime connection configuration
type Config struct {
	Host                 string
	Port                 int
	Path                 string
	UseTLS               bool
	ConnectTimeoutMs     int
	HeartbeatIntervalMs  int
	ReconnectBaseDelayMs int
	ReconnectMaxDelayMs  int
	MaxReconnectAttempts int
}

// DefaultConfig returns a development configuration
func DefaultConfig() Config {
	return Config{
		Host:                 "localhost",
		Port:                 5000,
		Path:                 "/",
		UseTLS:               false,
		ConnectTimeoutMs:     15000,
		HeartbeatIntervalMs:  30000,
		ReconnectBaseDelayMs: 2000,
		ReconnectMaxDelayMs:  30000,
		MaxReconnectAttempts: -1, // unlimited
	}
}

// ConfigFromSettings builds a connection config from the loaded app config
func ConfigFromSettings() Config {
	cfg := DefaultConfig()
	if host := config.GetString("ws.host"); host != "" {
		cfg.Host = host
	}
	if port := config.GetInt("ws.port"); port != 0 {
		cfg.Port = port
	}
	if path := config.GetString("ws.path"); path != "" {
		cfg.Path = path
	}
	cfg.UseTLS = config.GetBool("ws.tls")
	if cfg.UseTLS {
		cfg.ReconnectMaxDelayMs = 60000
	}
	return cfg
}

// ConnectionState represents the state of the realtime connection
type ConnectionState int

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
	StateReconnecting
	StateError
)

// ConnectionStats holds connection statistics
type ConnectionStats struct {
	EventsReceived int64
	EventsSent     int64
	EventsDropped  int64
	ReconnectCount int
	LastError      string
	ConnectedAt    time.Time
	DisconnectedAt time.Time
}

type handler struct {
	id int
	fn func(json.RawMessage)
}

// Session is one user's realtime connection
type Session struct {
	config Config
	userID string

	mu                sync.RWMutex
	conn              *websocket.Conn
	state             atomic.Value // ConnectionState
	reconnectAttempts int
	reconnectDelay    int

	listenersMu sync.RWMutex
	listeners   map[string][]handler
	nextID      int

	hbStop chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	statsMu sync.RWMutex
	stats   ConnectionStats
}

// NewSession creates a realtime session for the given user. The session
// does not dial until Connect is called.
func NewSession(userID string, cfg Config) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		config:         cfg,
		userID:         userID,
		listeners:      make(map[string][]handler),
		ctx:            ctx,
		cancel:         cancel,
		reconnectDelay: cfg.ReconnectBaseDelayMs,
	}
	s.state.Store(StateDisconnected)
	return s
}

// UserID returns the user this session is bound to
func (s *Session) UserID() string {
	return s.userID
}

// Connect establishes the realtime connection
func (s *Session) Connect() error {
	s.setState(StateConnecting)

	conn, err := s.dial()
	if err != nil {
		s.setState(StateError)
		s.recordError(err.Error())
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	s.setState(StateConnected)
	s.reconnectAttempts = 0
	s.reconnectDelay = s.config.ReconnectBaseDelayMs
	s.recordConnected()

	s.startLoops()

	logger.Debug("Socket connected", "host", s.config.Host, "port", s.config.Port, "user_id", s.userID)
	return nil
}

// Close tears the session down. A closed session cannot be reused.
func (s *Session) Close() error {
	s.cancel()

	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	s.mu.Unlock()

	s.setState(StateDisconnected)
	s.recordDisconnected()

	logger.Debug("Socket disconnected", "user_id", s.userID)
	return nil
}

// IsConnected returns true if the connection is established
func (s *Session) IsConnected() bool {
	return s.getState() == StateConnected
}

// State returns the current connection state
func (s *Session) State() ConnectionState {
	return s.getState()
}

// On subscribes to a named event. The returned function removes exactly
// this subscription.
func (s *Session) On(event string, fn func(json.RawMessage)) func() {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[event] = append(s.listeners[event], handler{id: id, fn: fn})
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		hs := s.listeners[event]
		for i, h := range hs {
			if h.id == id {
				s.listeners[event] = append(hs[:i], hs[i+1:]...)
				return
			}
		}
	}
}

// Emit sends an event to the server
func (s *Session) Emit(event string, payload interface{}) error {
	s.mu.RLock()
	conn := s.conn
	s.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	frame := Frame{Event: event, Data: data}
	out, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
		return err
	}

	s.recordEventSent()
	return nil
}

// Stats returns connection statistics
func (s *Session) Stats() ConnectionStats {
	s.statsMu.RLock()
	defer s.statsMu.RUnlock()
	return s.stats
}

// Private methods

// startLoops retires the previous heartbeat loop, if any, before
// spawning fresh read and heartbeat loops for the current connection.
func (s *Session) startLoops() {
	s.mu.Lock()
	if s.hbStop != nil {
		close(s.hbStop)
	}
	stop := make(chan struct{})
	s.hbStop = stop
	s.mu.Unlock()

	go s.readLoop()
	go s.heartbeatLoop(stop)
}

func (s *Session) dial() (*websocket.Conn, error) {
	scheme := "ws"
	if s.config.UseTLS {
		scheme = "wss"
	}

	u := url.URL{
		Scheme: scheme,
		Host:   fmt.Sprintf("%s:%d", s.config.Host, s.config.Port),
		Path:   s.config.Path,
	}

	// The handshake carries the user id; event names on this connection
	// are scoped to it.
	q := u.Query()
	q.Set("userId", s.userID)
	u.RawQuery = q.Encode()

	timeout := time.Duration(s.config.ConnectTimeoutMs) * time.Millisecond
	dialCtx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, u.String(), nil)
	return conn, err
}

func (s *Session) readLoop() {
	defer s.handleDisconnect()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		s.mu.RLock()
		conn := s.conn
		s.mu.RUnlock()

		if conn == nil {
			return
		}

		// Decode frames with the same codec the rest of the client
		// uses. A frame that does not decode is dropped rather than
		// allowed to kill the connection.
		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-s.ctx.Done():
			default:
				s.recordError(err.Error())
				logger.Error("Socket read error", "error", err)
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			s.recordEventDropped()
			logger.Warn("Dropping undecodable frame", "error", err)
			continue
		}

		if frame.Event == "" {
			s.recordEventDropped()
			logger.Warn("Dropping frame without event name")
			continue
		}

		s.recordEventReceived()

		s.listenersMu.RLock()
		hs := append([]handler(nil), s.listeners[frame.Event]...)
		s.listenersMu.RUnlock()

		for _, h := range hs {
			h.fn(frame.Data)
		}
	}
}

func (s *Session) heartbeatLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Duration(s.config.HeartbeatIntervalMs) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			if s.IsConnected() {
				if err := s.Emit("heartbeat", nil); err != nil {
					logger.Debug("Failed to send heartbeat", "error", err)
				}
			}
		}
	}
}

func (s *Session) handleDisconnect() {
	select {
	case <-s.ctx.Done():
		return
	default:
	}

	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	s.mu.Unlock()

	s.setState(StateReconnecting)
	s.recordDisconnected()

	// Attempt reconnection with exponential backoff
	for {
		if s.config.MaxReconnectAttempts >= 0 && s.reconnectAttempts >= s.config.MaxReconnectAttempts {
			s.setState(StateError)
			logger.Error("Max reconnection attempts reached")
			return
		}

		backoff := time.Duration(s.reconnectDelay) * time.Millisecond
		jitter := time.Duration(rand.Intn(1000)) * time.Millisecond
		waitTime := backoff + jitter

		logger.Debug("Reconnecting socket", "attempt", s.reconnectAttempts+1, "wait_ms", waitTime.Milliseconds())

		select {
		case <-s.ctx.Done():
			return
		case <-time.After(waitTime):
		}

		conn, err := s.dial()
		if err != nil {
			s.reconnectAttempts++
			// Exponential backoff: 2x each time, capped at max
			s.reconnectDelay = int(math.Min(
				float64(s.reconnectDelay*2),
				float64(s.config.ReconnectMaxDelayMs),
			))
			continue
		}

		s.mu.Lock()
		s.conn = conn
		s.mu.Unlock()

		s.setState(StateConnected)
		s.reconnectAttempts = 0
		s.reconnectDelay = s.config.ReconnectBaseDelayMs
		s.recordReconnected()

		logger.Debug("Socket reconnected", "user_id", s.userID)

		s.startLoops()
		return
	}
}

func (s *Session) setState(state ConnectionState) {
	s.state.Store(state)
}

func (s *Session) getState() ConnectionState {
	return s.state.Load().(ConnectionState)
}

func (s *Session) recordEventReceived() {
	s.statsMu.Lock()
	s.stats.EventsReceived++
	s.statsMu.Unlock()
}

func (s *Session) recordEventSent() {
	s.statsMu.Lock()
	s.stats.EventsSent++
	s.statsMu.Unlock()
}

func (s *Session) recordEventDropped() {
	s.statsMu.Lock()
	s.stats.EventsDropped++
	s.statsMu.Unlock()
}

func (s *Session) recordError(errMsg string) {
	s.statsMu.Lock()
	s.stats.LastError = errMsg
	s.statsMu.Unlock()
}

func (s *Session) recordConnected() {
	s.statsMu.Lock()
	s.stats.ConnectedAt = time.Now()
	s.statsMu.Unlock()
}

func (s *Session) recordReconnected() {
	s.statsMu.Lock()
	s.stats.ConnectedAt = time.Now()
	s.stats.ReconnectCount++
	s.statsMu.Unlock()
}

func (s *Session) recordDisconnected() {
	s.statsMu.Lock()
	s.stats.DisconnectedAt = time.Now()
	s.statsMu.Unlock()
}
