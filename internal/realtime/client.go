package realtime

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"meme-market/utils"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser clients are served from arbitrary origins during
	// development, matching the permissive CORS policy of the HTTP API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one websocket subscriber. Reads and writes run in their own
// goroutines; the hub never touches the connection directly.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Event
}

// clientCommand is the message a client sends to manage its topic set
type clientCommand struct {
	Action string `json:"action"`
	MemeID string `json:"meme_id,omitempty"`
}

// ServeWS upgrades an HTTP request to a websocket connection and
// registers the client with the hub. The client starts with no topics
// and must join explicitly.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		utils.Warn("realtime: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	client := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan Event, sendBufferSize),
	}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump consumes topic join/leave commands until the connection dies.
// Disconnection unregisters the client; events still queued for it are
// lost, there is no replay.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd clientCommand
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.Debug("realtime: websocket read error", map[string]any{"error": err.Error()})
			}
			return
		}

		switch cmd.Action {
		case "join_meme_room":
			if cmd.MemeID != "" {
				c.hub.subscribe <- subscription{client: c, topic: MemeTopic(cmd.MemeID), join: true}
			}
		case "leave_meme_room":
			if cmd.MemeID != "" {
				c.hub.subscribe <- subscription{client: c, topic: MemeTopic(cmd.MemeID), join: false}
			}
		case "join_leaderboard":
			c.hub.subscribe <- subscription{client: c, topic: LeaderboardTopic, join: true}
		case "leave_leaderboard":
			c.hub.subscribe <- subscription{client: c, topic: LeaderboardTopic, join: false}
		default:
			// unknown actions are ignored
		}
	}
}

// writePump drains the send channel onto the connection and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// hub dropped this client
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
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
