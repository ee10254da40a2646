package chat

import "log"

// Hub fans every incoming message out to all connected clients. No
// persistence, no ordering guarantee, no delivery guarantee; a slow
// client is dropped rather than allowed to stall the broadcast.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	clients    map[*client]bool
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[*client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					log.Println("chat: dropping slow client")
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}
