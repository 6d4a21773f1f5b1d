package ws

import (
	"encoding/json"
	"log"
	"sync"

	"purrhaven/internal/app/ports"
)

// Hub fans session events out to the websocket clients subscribed to
// each player. Slow clients get dropped rather than back-pressuring
// the simulation tick.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*client]struct{}
	logger  *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		logger:  logger,
	}
}

// PublisherFor returns a Notifier that tags every event with the
// player's subscription scope.
func (h *Hub) PublisherFor(playerID string) ports.Notifier {
	return scopedPublisher{hub: h, playerID: playerID}
}

type scopedPublisher struct {
	hub      *Hub
	playerID string
}

func (p scopedPublisher) Publish(event ports.Event) {
	p.hub.publish(p.playerID, event)
}

func (h *Hub) publish(playerID string, event ports.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Printf("marshal event %s: %v", event.Type, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[playerID] {
		select {
		case c.send <- data:
		default:
			h.logger.Printf("dropping slow client for %s", playerID)
			h.removeLocked(playerID, c)
		}
	}
}

func (h *Hub) add(playerID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[playerID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[playerID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) remove(playerID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(playerID, c)
}

func (h *Hub) removeLocked(playerID string, c *client) {
	set, ok := h.clients[playerID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, playerID)
	}
}
