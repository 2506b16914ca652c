package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/qasyoun/qasyounextra/internal/app/models"
)

// Event types pushed to connected clients
const (
	EventMessageReceived = "message.received"
	EventMessageRead     = "message.read"
)

// Event is the JSON frame written to a client
type Event struct {
	Type    string          `json:"type"`
	Message *models.Message `json:"message"`
}

type delivery struct {
	userID int64
	event  Event
}

// Hub tracks the live connections of each user and delivers message events
// to them. Run owns the client set; other goroutines talk to it over channels.
type Hub struct {
	clients map[int64]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	deliveries chan delivery
	done       chan struct{}

	// guards counts, read by ClientCount
	mu     sync.RWMutex
	counts map[int64]int

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliveries: make(chan delivery, 256),
		done:       make(chan struct{}),
		counts:     make(map[int64]int),
		logger:     logger,
	}
}

// Run handles registrations and deliveries until ctx is done, then closes
// every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case d := <-h.deliveries:
			h.deliver(d)

		case <-ctx.Done():
			for _, set := range h.clients {
				for client := range set {
					h.unregisterClient(client)
				}
			}
			return
		}
	}
}

// join hands client to Run; it reports false once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) registerClient(client *Client) {
	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true
	h.setCount(client.userID, len(h.clients[client.userID]))

	h.logger.Info().
		Int64("userID", client.userID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	set, ok := h.clients[client.userID]
	if !ok || !set[client] {
		return
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
	h.setCount(client.userID, len(set))

	h.logger.Info().
		Int64("userID", client.userID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Client unregistered")
}

func (h *Hub) deliver(d delivery) {
	set, ok := h.clients[d.userID]
	if !ok {
		return
	}

	data, err := json.Marshal(d.event)
	if err != nil {
		h.logger.Error().Err(err).Int64("userID", d.userID).Msg("Failed to marshal event")
		return
	}

	for client := range set {
		select {
		case client.send <- data:
		default:
			// slow client
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) setCount(userID int64, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n == 0 {
		delete(h.counts, userID)
		return
	}
	h.counts[userID] = n
}

// ClientCount returns the number of live connections of a user
func (h *Hub) ClientCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.counts[userID]
}

func (h *Hub) enqueue(userID int64, event Event) {
	select {
	case h.deliveries <- delivery{userID: userID, event: event}:
	default:
		h.logger.Warn().Int64("userID", userID).Str("type", event.Type).Msg("Delivery queue full, dropping event")
	}
}

// NotifyMessage pushes a newly sent message to its receiver. It never blocks.
func (h *Hub) NotifyMessage(msg *models.Message) {
	h.enqueue(msg.ReceiverID, Event{Type: EventMessageReceived, Message: msg})
}

// NotifyRead tells the sender that the receiver read their message.
func (h *Hub) NotifyRead(msg *models.Message) {
	h.enqueue(msg.SenderID, Event{Type: EventMessageRead, Message: msg})
}
