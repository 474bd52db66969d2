// Package notifier implements the change-notification hub: a registry of
// currently connected live-update subscribers and a best-effort broadcast of
// (event, payload) to all of them whenever catalog, order or settings state
// changes. Delivery is fire-and-forget and at-most-once: no queue, no retry,
// no acknowledgment. A subscriber whose connection fails mid-broadcast is
// simply dropped.
package notifier

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shaesansv/pet-new/internal/logger"
	"github.com/shaesansv/pet-new/internal/registry"
)

// Conn is the minimal surface the hub needs from an established live-update
// connection. The websocket handler hands the hub an already-upgraded
// connection; the hub never manages handshakes.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Subscriber is one connected live-update client.
type Subscriber struct {
	ID   string
	conn Conn
	mu   sync.Mutex // serializes writes; websocket connections allow one writer at a time
}

// send writes one message to the subscriber's connection.
func (s *Subscriber) send(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(msg)
}

// Hub maintains the set of currently connected subscribers.
// Construct one per process and inject it into the services that broadcast.
type Hub struct {
	subscribers *registry.Registry[*Subscriber]
	log         *logrus.Logger
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: registry.NewRegistry[*Subscriber](),
		log:         logger.GetAppLogger(),
	}
}

// Subscribe adds an established connection to the hub and returns its
// subscriber handle. Called by the realtime endpoint on connect.
func (h *Hub) Subscribe(conn Conn) *Subscriber {
	sub := &Subscriber{
		ID:   uuid.NewString(),
		conn: conn,
	}
	_, _ = h.subscribers.Register(sub.ID, sub)

	h.log.WithFields(logrus.Fields{
		"subscriber_id": sub.ID,
		"subscribers":   h.subscribers.Len(),
	}).Debug("live-update subscriber connected")
	return sub
}

// Unsubscribe removes a subscriber from the hub. Called by the realtime
// endpoint on close or transport error; safe to call twice.
func (h *Hub) Unsubscribe(id string) {
	if removed := h.subscribers.Unregister(id); removed {
		h.log.WithFields(logrus.Fields{
			"subscriber_id": id,
			"subscribers":   h.subscribers.Len(),
		}).Debug("live-update subscriber disconnected")
	}
}

// Broadcast delivers (event, payload) to every subscriber whose connection
// is open at send time. Broadcasts go out in the order the triggering
// mutations complete. A failed send drops that subscriber and closes its
// connection; the broadcast itself never fails.
func (h *Hub) Broadcast(event string, payload interface{}) {
	msg := Message{Event: event, Payload: payload}

	for _, sub := range h.subscribers.Items() {
		if err := sub.send(msg); err != nil {
			h.log.WithFields(logrus.Fields{
				"subscriber_id": sub.ID,
				"event":         event,
			}).WithError(err).Debug("dropping live-update subscriber after failed send")
			h.subscribers.Unregister(sub.ID)
			_ = sub.conn.Close()
		}
	}
}

// Count returns the number of currently connected subscribers.
func (h *Hub) Count() int {
	return h.subscribers.Len()
}
