package handlers

import (
	"errors"
	"io"
	"sync"

	"educator-site/internal/event"
	"educator-site/internal/models"
	"educator-site/internal/utils"
)

var log = event.Log

const defaultSendBuffer = 32

var errClientBacklogged = errors.New("client send queue full")

// client owns one connection. Only its writer goroutine writes to conn.
type client struct {
	conn    utils.JSONWriter
	send    chan interface{}
	done    chan struct{}
	// stopped is closed once the writer goroutine has exited.
	stopped chan struct{}
	once    sync.Once
}

func (cl *client) close() {
	cl.once.Do(func() {
		close(cl.done)
		if c, ok := cl.conn.(io.Closer); ok {
			_ = c.Close()
		}
	})
}

// Hub tracks live gallery subscribers and fans out gallery events to them.
// Each client has a bounded queue; a client that falls behind is dropped so
// publishers never wait on a slow socket.
type Hub struct {
	// connID -> client
	clients map[string]*client
	buffer  int
	mu      sync.Mutex
}

func NewHub() *Hub {
	return newHub(defaultSendBuffer)
}

func newHub(buffer int) *Hub {
	return &Hub{clients: make(map[string]*client), buffer: buffer}
}

func (h *Hub) Register(connID string, c utils.JSONWriter) {
	cl := &client{
		conn:    c,
		send:    make(chan interface{}, h.buffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	h.mu.Lock()
	old := h.clients[connID]
	h.clients[connID] = cl
	h.mu.Unlock()

	if old != nil {
		old.close()
	}
	go h.writePump(connID, cl)
}

// Unregister drops the client and waits for its writer to stop, so the
// connection is no longer used once Unregister returns.
func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	cl, ok := h.clients[connID]
	delete(h.clients, connID)
	h.mu.Unlock()

	if ok {
		cl.close()
		<-cl.stopped
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Send queues a message for a single client.
func (h *Hub) Send(connID string, message interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cl, ok := h.clients[connID]
	if !ok {
		return nil
	}
	if !h.enqueue(connID, cl, message) {
		return errClientBacklogged
	}
	return nil
}

// Publish queues a gallery event for every client without blocking.
func (h *Hub) Publish(evt models.GalleryEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, cl := range h.clients {
		h.enqueue(id, cl, evt)
	}
}

// enqueue must be called with h.mu held.
func (h *Hub) enqueue(id string, cl *client, message interface{}) bool {
	select {
	case cl.send <- message:
		return true
	default:
		log.Warnf("hub: dropping slow client %s", id)
		delete(h.clients, id)
		go cl.close()
		return false
	}
}

func (h *Hub) writePump(id string, cl *client) {
	defer close(cl.stopped)
	for {
		select {
		case <-cl.done:
			return
		case msg := <-cl.send:
			if err := utils.SendJSON(cl.conn, msg); err != nil {
				utils.LogError(err, "hub: write")
				h.remove(id, cl)
				return
			}
		}
	}
}

func (h *Hub) remove(id string, cl *client) {
	h.mu.Lock()
	if h.clients[id] == cl {
		delete(h.clients, id)
	}
	h.mu.Unlock()
	cl.close()
}
