package live

import (
	"encoding/json"
	"log"
)

// Event is the payload pushed to every subscriber of a topic when a matching
// record changes.
type Event struct {
	Collection string `json:"collection"`
	Action     string `json:"action"` // created, updated
	Data       any    `json:"data"`
}

type broadcastMsg struct {
	Topic string
	Data  []byte
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	topics     map[string]map[*Client]bool
	quit       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg, 64),
		topics:     make(map[string]map[*Client]bool),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			if h.topics[c.Topic] == nil {
				h.topics[c.Topic] = make(map[*Client]bool)
			}
			h.topics[c.Topic][c] = true

		case c := <-h.unregister:
			if subs, ok := h.topics[c.Topic]; ok {
				if subs[c] {
					delete(subs, c)
					close(c.Send)
				}
				if len(subs) == 0 {
					delete(h.topics, c.Topic)
				}
			}

		case msg := <-h.broadcast:
			for c := range h.topics[msg.Topic] {
				select {
				case c.Send <- msg.Data:
				default:
					// slow consumer, drop it
					delete(h.topics[msg.Topic], c)
					close(c.Send)
				}
			}

		case <-h.quit:
			for topic, subs := range h.topics {
				for c := range subs {
					close(c.Send)
				}
				delete(h.topics, topic)
			}
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.quit)
}

// Broadcast pushes a change event to every subscriber of topic.
func (h *Hub) Broadcast(topic string, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Println("Failed to marshal live event:", err)
		return
	}
	// Drop events once the hub is stopped; nobody is draining the channel.
	select {
	case h.broadcast <- broadcastMsg{Topic: topic, Data: data}:
	case <-h.quit:
	}
}

var DefaultHub = NewHub()

// Broadcast publishes on the process-wide hub.
func Broadcast(topic string, ev Event) {
	DefaultHub.Broadcast(topic, ev)
}
