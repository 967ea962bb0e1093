package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/auth"
)

// CloseUnauthorized is the non-standard close code sent when a connection
// presents a token that fails verification. It mirrors HTTP 401 in the
// 4xxx application range so clients can tell auth failures from normal
// closure.
const CloseUnauthorized = 4401

// Gate authenticates inbound socket upgrades for one hub. A token is
// optional: anonymous clients are admitted, but a client that does present
// a token must present a valid one or the connection is closed with
// CloseUnauthorized before it ever joins the hub.
type Gate struct {
	secret   string
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewGate builds a gate that admits connections into hub, verifying
// optional tokens against secret.
func NewGate(secret string, hub *Hub) *Gate {
	return &Gate{
		secret: secret,
		hub:    hub,
		upgrader: websocket.Upgrader{
			// Browser clients connect from arbitrary origins (kitchen
			// displays, waiter tablets); same-origin enforcement is not
			// part of this design.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve is the Echo handler for the channel's /ws endpoint. Admission runs
// in three steps: optional token extraction from the ?token= query
// parameter, verification, then upgrade and hub admission. After admission
// every inbound message is treated as an opaque payload and rebroadcast to
// the other members; real validation only happens on the HTTP mutation
// path, which synthesizes its own broadcasts.
func (g *Gate) Serve(c echo.Context) error {
	token := c.QueryParam("token")
	authorized := true
	if token != "" {
		if _, err := auth.ParseAccessToken(g.secret, token); err != nil {
			authorized = false
		}
	}

	conn, err := g.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote an HTTP error response.
		return nil
	}

	if !authorized {
		// The close code is the only payload an unauthenticated client
		// gets; it never reaches the hub.
		msg := websocket.FormatCloseMessage(CloseUnauthorized, "invalid token")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		_ = conn.Close()
		return nil
	}

	g.hub.Admit(conn)
	defer func() {
		g.hub.Evict(conn)
		_ = conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return nil
		}
		g.hub.Broadcast(data, conn)
	}
}
