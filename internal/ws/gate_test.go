package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/auth"
)

func newGateServer(t *testing.T, secret string, hub *Hub) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.GET("/ws/orders", NewGate(secret, hub).Serve)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

func TestGate_AnonymousClientIsAdmitted(t *testing.T) {
	hub := NewHub("orders")
	srv := newGateServer(t, "secret", hub)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/orders"), nil)
	if err != nil {
		t.Fatalf("dial without token failed: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return hub.Count() == 1 })
}

func TestGate_ExpiredTokenIsClosedWith4401(t *testing.T) {
	hub := NewHub("orders")
	srv := newGateServer(t, "secret", hub)

	tok, err := auth.NewAccessToken("secret", auth.SigningMethod("HS256"), 9, auth.RoleClient, -1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/orders")+"?token="+tok.Token, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, CloseUnauthorized) {
		t.Fatalf("expected close code %d, got %v", CloseUnauthorized, err)
	}
	if hub.Count() != 0 {
		t.Fatalf("rejected client must never be admitted")
	}
}

func TestGate_ValidTokenIsAdmittedAndRebroadcast(t *testing.T) {
	hub := NewHub("orders")
	srv := newGateServer(t, "secret", hub)

	tok, err := auth.NewAccessToken("secret", auth.SigningMethod("HS256"), 9, auth.RoleWaiter, 60)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	sender, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/orders")+"?token="+tok.Token, nil)
	if err != nil {
		t.Fatalf("dial sender: %v", err)
	}
	defer sender.Close()

	receiver, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/orders"), nil)
	if err != nil {
		t.Fatalf("dial receiver: %v", err)
	}
	defer receiver.Close()

	waitFor(t, func() bool { return hub.Count() == 2 })

	payload := `{"order_id":1,"status":"preparing"}`
	if err := sender.WriteMessage(websocket.TextMessage, []byte(payload)); err != nil {
		t.Fatalf("write: %v", err)
	}

	_ = receiver.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := receiver.ReadMessage()
	if err != nil {
		t.Fatalf("receiver read: %v", err)
	}
	if string(data) != payload {
		t.Fatalf("expected %q, got %q", payload, data)
	}
}

// waitFor polls until cond holds or the deadline passes; admission happens
// in the server goroutine after the handshake, so tests must not assert on
// Count immediately.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}
