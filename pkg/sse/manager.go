package sse

import (
	"io"
	"log"

	"github.com/gin-gonic/gin"
)

// Event is one server-sent message addressed to a single visitor.
type Event struct {
	VisitorID string
	Name      string
	Payload   interface{}
}

type client struct {
	visitorID string
	send      chan Event
}

// Manager fans events out to the open views of each visitor. Delivery is
// fire-and-forget: a visitor with no connected view misses the event and no
// replay is kept.
type Manager struct {
	register   chan *client
	unregister chan *client
	broadcast  chan Event
	clients    map[*client]struct{}
}

func NewManager() *Manager {
	return &Manager{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan Event, 16),
		clients:    make(map[*client]struct{}),
	}
}

// Run owns the client set; call it once on its own goroutine.
func (m *Manager) Run() {
	for {
		select {
		case c := <-m.register:
			m.clients[c] = struct{}{}
		case c := <-m.unregister:
			if _, ok := m.clients[c]; ok {
				delete(m.clients, c)
				close(c.send)
			}
		case ev := <-m.broadcast:
			for c := range m.clients {
				if c.visitorID != ev.VisitorID {
					continue
				}
				select {
				case c.send <- ev:
				default:
					// Slow consumer, drop rather than block the loop.
					log.Printf("[WARN] SSE client for visitor %s is lagging, dropping event %s", ev.VisitorID, ev.Name)
				}
			}
		}
	}
}

// Publish queues an event for every connected view of the visitor.
func (m *Manager) Publish(visitorID, name string, payload interface{}) {
	m.broadcast <- Event{VisitorID: visitorID, Name: name, Payload: payload}
}

// ServeHTTP streams events for one visitor until the connection closes.
func (m *Manager) ServeHTTP(c *gin.Context, visitorID string) {
	cl := &client{
		visitorID: visitorID,
		send:      make(chan Event, 8),
	}
	m.register <- cl
	defer func() { m.unregister <- cl }()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-cl.send:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, ev.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
