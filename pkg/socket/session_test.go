package socket

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	json "github.com/json-iterator/go"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{}

// testServer upgrades one websocket connection and hands it to fn
func testServer(t *testing.T, fn func(conn *websocket.Conn, userID string)) Config {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("userId")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		fn(conn, userID)
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("bad test server URL: %v", err)
	}
	port, _ := strconv.Atoi(u.Port())

	cfg := DefaultConfig()
	cfg.Host = u.Hostname()
	cfg.Port = port
	cfg.Path = "/"
	cfg.MaxReconnectAttempts = 0
	return cfg
}

// TestDefaultConfig validates development defaults
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Host != "localhost" || cfg.Port != 5000 {
		t.Errorf("unexpected default endpoint %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.HeartbeatIntervalMs != 30000 {
		t.Errorf("HeartbeatIntervalMs = %d, want 30000", cfg.HeartbeatIntervalMs)
	}
	if cfg.ReconnectBaseDelayMs != 2000 || cfg.ReconnectMaxDelayMs != 30000 {
		t.Error("unexpected reconnect delays")
	}
	if cfg.MaxReconnectAttempts != -1 {
		t.Errorf("MaxReconnectAttempts = %d, want -1 (unlimited)", cfg.MaxReconnectAttempts)
	}
}

// TestNewSessionInitialState starts disconnected and bound to the user
func TestNewSessionInitialState(t *testing.T) {
	s := NewSession("u1", DefaultConfig())

	if s.State() != StateDisconnected {
		t.Errorf("State = %v, want StateDisconnected", s.State())
	}
	if s.IsConnected() {
		t.Error("new session should not report connected")
	}
	if s.UserID() != "u1" {
		t.Errorf("UserID = %q, want u1", s.UserID())
	}
}

// TestConnectFailure reports an error and moves to StateError
func TestConnectFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 1 // nothing listens here
	cfg.ConnectTimeoutMs = 500
	s := NewSession("u1", cfg)
	defer s.Close()

	if err := s.Connect(); err == nil {
		t.Fatal("expected connect error")
	}
	if s.State() != StateError {
		t.Errorf("State = %v, want StateError", s.State())
	}
	if s.Stats().LastError == "" {
		t.Error("expected LastError recorded")
	}
}

// TestConnectHandshakeCarriesUserID passes the user id as a query param
func TestConnectHandshakeCarriesUserID(t *testing.T) {
	gotUser := make(chan string, 1)
	cfg := testServer(t, func(conn *websocket.Conn, userID string) {
		gotUser <- userID
		conn.Close()
	})

	s := NewSession("user-42", cfg)
	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer s.Close()

	select {
	case userID := <-gotUser:
		if userID != "user-42" {
			t.Errorf("handshake userId = %q, want user-42", userID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never saw the handshake")
	}
}

// TestEventDispatch delivers a server frame to the subscribed handler
func TestEventDispatch(t *testing.T) {
	cfg := testServer(t, func(conn *websocket.Conn, _ string) {
		// Written as literal bytes so the test pins the wire shape the
		// server actually sends, object payload included.
		conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"newMessage::u1","data":{"id":"m1"}}`))
		// Keep the connection open until the test finishes
		conn.ReadMessage()
	})

	s := NewSession("u1", cfg)

	received := make(chan json.RawMessage, 1)
	s.On("newMessage::u1", func(data json.RawMessage) {
		received <- data
	})

	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer s.Close()

	select {
	case data := <-received:
		var payload map[string]string
		if err := json.Unmarshal(data, &payload); err != nil {
			t.Fatalf("payload did not decode: %v", err)
		}
		if payload["id"] != "m1" {
			t.Errorf("payload id = %q, want m1", payload["id"])
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never fired")
	}

	if s.Stats().EventsReceived != 1 {
		t.Errorf("EventsReceived = %d, want 1", s.Stats().EventsReceived)
	}
}

// TestUnsubscribeRemovesHandler verifies the returned function removes
// exactly that subscription
func TestUnsubscribeRemovesHandler(t *testing.T) {
	cfg := testServer(t, func(conn *websocket.Conn, _ string) {
		payload, _ := json.Marshal(map[string]string{})
		frame, _ := json.Marshal(Frame{Event: "ping::u1", Data: payload})
		conn.WriteMessage(websocket.TextMessage, frame)
		conn.ReadMessage()
	})

	s := NewSession("u1", cfg)

	first := make(chan struct{}, 4)
	second := make(chan struct{}, 4)
	unsubFirst := s.On("ping::u1", func(json.RawMessage) { first <- struct{}{} })
	s.On("ping::u1", func(json.RawMessage) { second <- struct{}{} })

	unsubFirst()

	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer s.Close()

	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("surviving handler never fired")
	}

	select {
	case <-first:
		t.Error("unsubscribed handler fired")
	default:
	}
}

// TestFramesWithoutEventAreDropped counts malformed frames as dropped
func TestFramesWithoutEventAreDropped(t *testing.T) {
	cfg := testServer(t, func(conn *websocket.Conn, _ string) {
		conn.WriteMessage(websocket.TextMessage, []byte(`{"data":{"id":"m1"}}`))
		frame, _ := json.Marshal(Frame{Event: "ok::u1", Data: json.RawMessage(`{}`)})
		conn.WriteMessage(websocket.TextMessage, frame)
		conn.ReadMessage()
	})

	s := NewSession("u1", cfg)

	received := make(chan struct{}, 1)
	s.On("ok::u1", func(json.RawMessage) { received <- struct{}{} })

	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer s.Close()

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("valid frame never arrived")
	}

	stats := s.Stats()
	if stats.EventsDropped != 1 {
		t.Errorf("EventsDropped = %d, want 1", stats.EventsDropped)
	}
	if stats.EventsReceived != 1 {
		t.Errorf("EventsReceived = %d, want 1", stats.EventsReceived)
	}
}

// TestEmitSendsFrame round-trips an emitted event through the server
func TestEmitSendsFrame(t *testing.T) {
	got := make(chan Frame, 1)
	cfg := testServer(t, func(conn *websocket.Conn, _ string) {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var frame Frame
		if err := json.Unmarshal(raw, &frame); err == nil {
			got <- frame
		}
	})

	s := NewSession("u1", cfg)
	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer s.Close()

	if err := s.Emit("typing", map[string]string{"chatId": "c1"}); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	select {
	case frame := <-got:
		if frame.Event != "typing" {
			t.Errorf("Event = %q, want typing", frame.Event)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the frame")
	}

	if s.Stats().EventsSent != 1 {
		t.Errorf("EventsSent = %d, want 1", s.Stats().EventsSent)
	}
}

// TestUndecodableFramesAreDropped keeps the read loop alive when a
// frame is not valid JSON
func TestUndecodableFramesAreDropped(t *testing.T) {
	cfg := testServer(t, func(conn *websocket.Conn, _ string) {
		conn.WriteMessage(websocket.TextMessage, []byte(`not json at all`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"ok::u1","data":{}}`))
		conn.ReadMessage()
	})

	s := NewSession("u1", cfg)

	received := make(chan struct{}, 1)
	s.On("ok::u1", func(json.RawMessage) { received <- struct{}{} })

	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer s.Close()

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("valid frame never arrived after the bad one")
	}

	if dropped := s.Stats().EventsDropped; dropped != 1 {
		t.Errorf("EventsDropped = %d, want 1", dropped)
	}
}

// TestStartLoopsRetiresPreviousHeartbeat closes the old heartbeat stop
// channel before a new loop starts
func TestStartLoopsRetiresPreviousHeartbeat(t *testing.T) {
	s := NewSession("u1", DefaultConfig())
	// A cancelled context makes the spawned loops exit immediately.
	s.cancel()

	s.startLoops()
	s.mu.Lock()
	prev := s.hbStop
	s.mu.Unlock()

	s.startLoops()

	select {
	case <-prev:
	default:
		t.Error("previous heartbeat stop channel was not closed")
	}
}

// TestEmitWhenDisconnected errors instead of panicking
func TestEmitWhenDisconnected(t *testing.T) {
	s := NewSession("u1", DefaultConfig())
	if err := s.Emit("typing", nil); err == nil {
		t.Error("expected error emitting on a disconnected session")
	}
}

// TestCloseIsTerminal leaves the session disconnected
func TestCloseIsTerminal(t *testing.T) {
	cfg := testServer(t, func(conn *websocket.Conn, _ string) {
		conn.ReadMessage()
	})

	s := NewSession("u1", cfg)
	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if s.State() != StateDisconnected {
		t.Errorf("State = %v, want StateDisconnected", s.State())
	}
	if s.Stats().DisconnectedAt.IsZero() {
		t.Error("expected DisconnectedAt recorded")
	}
}
