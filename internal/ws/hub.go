package ws

import (
	"encoding/json"
	"log"
	"sync"

	"netplas-inventory/internal/events"

	"github.com/gofiber/contrib/websocket"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type Hub struct {
	Clients    map[Conn]bool
	Register   chan Conn
	Unregister chan Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[Conn]bool),
		Register:   make(chan Conn),
		Unregister: make(chan Conn),
		Broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()

		case <-h.done:
			h.mutex.Lock()
			for conn := range h.Clients {
				conn.Close()
				delete(h.Clients, conn)
			}
			h.mutex.Unlock()
			return
		}
	}
}

// Stop ends Run and closes every connected client.
func (h *Hub) Stop() {
	close(h.done)
}

// Publish queues the event for every connected client; a full queue drops it.
func (h *Hub) Publish(e events.Event) {
	msg, err := json.Marshal(e)
	if err != nil {
		log.Printf("Failed to encode ws event: %v", err)
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		log.Printf("WS broadcast queue full, dropping %s", e.RoutingKey())
	}
}

// reader is a Conn the hub also reads from to notice disconnects.
type reader interface {
	Conn
	ReadMessage() (messageType int, p []byte, err error)
}

// Handle serves one websocket client until it disconnects.
func (h *Hub) Handle(c *websocket.Conn) {
	h.serve(c)
}

func (h *Hub) serve(c reader) {
	if !h.register(c) {
		return
	}
	defer h.unregister(c)

	for {
		// Keep alive loop
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

// register hands c to Run, reporting false once the hub has stopped.
func (h *Hub) register(c Conn) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unregister(c Conn) {
	select {
	case h.Unregister <- c:
	case <-h.done:
	}
}
