// Package live pushes leaderboard updates to websocket subscribers. There is
// a single broadcast group: every connected client watches the same
// tournament standings.
package live

import (
	"encoding/json"
	"log/slog"
	"time"
)

const MessageLeaderboardUpdated = "LEADERBOARD_UPDATED"

// Message is the envelope sent to clients.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run owns the client set; registration, removal and fan-out all go through
// this loop so no other goroutine touches the map.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("websocket client registered", slog.Int("clients", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("websocket client unregistered", slog.Int("clients", len(h.clients)))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; drop it rather than block the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Broadcast marshals the message and fans it out to every connected client.
func (h *Hub) Broadcast(msg Message) {
	raw, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal websocket message", slog.Any("error", err))
		return
	}
	h.broadcast <- raw
}
