package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"
)

// Event names delivered over the WebSocket channel.
const (
	EventSaleCompleted  = "sale_completed"
	EventSaleVoided     = "sale_voided"
	EventProductUpdated = "product_updated"
	EventProductDeleted = "product_deleted"
)

// broadcastQueueSize bounds the hand-off between publishers and the fan-out
// loop. A full queue drops the event rather than blocking the publisher.
const broadcastQueueSize = 256

// Hub fans events out to currently connected subscribers. Delivery is
// best-effort, at-most-once: no queuing beyond the bounded channel, no
// persistence, no replay. The committed store stays the sole source of
// truth.
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, broadcastQueueSize),
	}
}

// Publish hands an event off to the fan-out loop. It never blocks and never
// returns an error: a marshal failure or a full queue is logged and dropped,
// so a slow subscriber can never fail or stall the owning transaction.
func (h *Hub) Publish(event string, payload interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  payload,
	})
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to marshal event")
		return
	}

	select {
	case h.Broadcast <- msg:
	default:
		log.Warn().Str("event", event).Msg("broadcast queue full, event dropped")
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Info().Msg("ws client connected")

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
					// Failed delivery evicts that subscriber only.
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
