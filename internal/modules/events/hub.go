package events

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"hotelreservation/internal/domain"
)

const writeWait = 10 * time.Second

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(messageType, data)
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// Hub fans booking events out to connected websocket clients. It satisfies
// booking.NotificationSender.
type Hub struct {
	connections map[int64]*client
	nextID      int64
	mutex       sync.RWMutex
	log         *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		connections: make(map[int64]*client),
		log:         log,
	}
}

func (h *Hub) register(conn *websocket.Conn) (int64, *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	c := &client{conn: conn}
	h.connections[h.nextID] = c
	return h.nextID, c
}

func (h *Hub) unregister(id int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, exists := h.connections[id]; exists {
		_ = c.conn.Close()
		delete(h.connections, id)
	}
}

// Broadcast sends ev to every subscriber and returns how many received it.
// Subscribers whose write fails are dropped.
func (h *Hub) Broadcast(ev Event) int {
	h.mutex.RLock()
	targets := make(map[int64]*client, len(h.connections))
	for id, c := range h.connections {
		targets[id] = c
	}
	h.mutex.RUnlock()

	delivered := 0
	for id, c := range targets {
		if err := c.writeJSON(ev); err != nil {
			h.log.Debug("dropping event subscriber", zap.Int64("subscriber", id), zap.Error(err))
			h.unregister(id)
			continue
		}
		delivered++
	}
	return delivered
}

func (h *Hub) Count() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	h.Broadcast(newEvent(TypeBookingCreated, b.ID, b))
	return nil
}

func (h *Hub) NotifyBookingModified(ctx context.Context, b *domain.Booking) error {
	h.Broadcast(newEvent(TypeBookingModified, b.ID, b))
	return nil
}

func (h *Hub) NotifyBookingCancelled(ctx context.Context, bookingID int64) error {
	h.Broadcast(newEvent(TypeBookingCancelled, bookingID, nil))
	return nil
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, c := range h.connections {
		_ = c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"))
		_ = c.conn.Close()
		delete(h.connections, id)
	}
}
