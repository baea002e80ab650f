package live

import (
	"context"
	"log"
	"sync"
	"time"
)

// Event is the envelope pushed to every connected viewer. Event names are
// the ones browsers subscribe to: scoreUpdated, activityAdded,
// activityUpdated.
type Event struct {
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	EventScoreUpdated    = "scoreUpdated"
	EventActivityAdded   = "activityAdded"
	EventActivityUpdated = "activityUpdated"
)

// Hub maintains the set of connected viewers and fans events out to them.
// Delivery is best-effort: no queueing beyond the channel buffers, no
// replay for viewers that connect later.
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	// Inbound events from controllers
	broadcast chan Event

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop. It returns when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Publish enqueues an event for fan-out. It is fire-and-forget: it never
// blocks the caller and delivery to any particular viewer is not
// guaranteed. A full buffer drops the event.
func (h *Hub) Publish(event string, payload interface{}) {
	select {
	case h.broadcast <- Event{Event: event, Payload: payload, Timestamp: time.Now()}:
	default:
		log.Printf("live: broadcast buffer full, dropping %s event", event)
	}
}

// ClientCount returns the number of connected viewers.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.clients[c] = true
	log.Printf("live: client %s connected (total: %d)", c.ID, len(h.clients))
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
		log.Printf("live: client %s disconnected (total: %d)", c.ID, len(h.clients))
	}
}

func (h *Hub) broadcastEvent(event Event) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if !c.TrySend(event) {
			// Client buffer full - they're too slow, disconnect them
			log.Printf("live: client %s buffer full, disconnecting", c.ID)
			go h.Unregister(c)
		}
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	log.Printf("live: shutting down hub (%d active clients)", len(h.clients))
	for c := range h.clients {
		close(c.Send)
		delete(h.clients, c)
	}
}
