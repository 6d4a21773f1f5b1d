package ws

import (
	"encoding/json"
	"log"
	nethttp "net/http"
	"time"

	"github.com/gorilla/websocket"

	"purrhaven/internal/app/session"
	"purrhaven/internal/domain/geom"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
	sendBuffer = 64
)

type clientMessage struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Action string  `json:"action"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Handler upgrades websocket connections and routes client input into
// the player's live session.
type Handler struct {
	hub      *Hub
	manager  *session.Manager
	logger   *log.Logger
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, manager *session.Manager, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		hub:     hub,
		manager: manager,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *nethttp.Request) bool {
				return true
			},
		},
	}
}

func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	playerID := r.URL.Query().Get("player")
	if playerID == "" {
		nethttp.Error(w, "missing player", nethttp.StatusBadRequest)
		return
	}

	sess, err := h.manager.GetOrCreate(r.Context(), playerID)
	if err != nil {
		h.logger.Printf("session for %s: %v", playerID, err)
		nethttp.Error(w, "session unavailable", nethttp.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed for %s: %v", playerID, err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.hub.add(playerID, c)

	go h.writePump(playerID, c)
	h.readPump(playerID, c, sess)
}

func (h *Handler) readPump(playerID string, c *client, sess *session.Session) {
	defer func() {
		h.hub.remove(playerID, c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Printf("discarding malformed message from %s: %v", playerID, err)
			continue
		}

		switch msg.Type {
		case "pointer":
			sess.HandlePointer(geom.Vec2{X: msg.X, Y: msg.Y})
		case "axis":
			sess.HandleAxis(msg.X, msg.Y)
		case "hud":
			sess.HandleHUD(msg.Action)
		default:
			h.logger.Printf("unknown message type %q from %s", msg.Type, playerID)
		}
	}
}

func (h *Handler) writePump(playerID string, c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
