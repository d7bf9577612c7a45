package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/gin-gonic/gin"

	"dayscount-backend/pkg/logger"
)

// Event is a named payload pushed to a connected client. The payload is
// always a full snapshot of the changed document, never a diff.
type Event struct {
	Name string
	Data interface{}
}

type client struct {
	userID string
	send   chan Event
}

// Manager fans events out to per-user SSE connections.
type Manager struct {
	mu         sync.RWMutex
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	events     chan userEvent
}

type userEvent struct {
	userID string
	event  Event
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		events:     make(chan userEvent, 64),
	}
}

// Run processes register/unregister/event traffic. Start it in its own
// goroutine before serving connections.
func (m *Manager) Run() {
	for {
		select {
		case c := <-m.register:
			m.mu.Lock()
			m.clients[c] = struct{}{}
			m.mu.Unlock()
		case c := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[c]; ok {
				delete(m.clients, c)
				close(c.send)
			}
			m.mu.Unlock()
		case ue := <-m.events:
			m.mu.RLock()
			for c := range m.clients {
				if c.userID != ue.userID {
					continue
				}
				select {
				case c.send <- ue.event:
				default:
					// Slow consumer, drop the event. The next snapshot
					// carries full state anyway.
				}
			}
			m.mu.RUnlock()
		}
	}
}

// SendToUser pushes an event to every open connection of a user.
func (m *Manager) SendToUser(userID, name string, data interface{}) {
	m.events <- userEvent{userID: userID, event: Event{Name: name, Data: data}}
}

// ServeHTTP streams events to the client until it disconnects.
func (m *Manager) ServeHTTP(c *gin.Context, userID string) {
	cl := &client{userID: userID, send: make(chan Event, 16)}
	m.register <- cl
	defer func() { m.unregister <- cl }()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	logger.Log.Debugf("SSE client connected for user %s", userID)

	c.Stream(func(w io.Writer) bool {
		ev, ok := <-cl.send
		if !ok {
			return false
		}
		payload, err := json.Marshal(ev.Data)
		if err != nil {
			logger.Log.Warnf("SSE marshal failed: %v", err)
			return true
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, payload)
		return true
	})
}
