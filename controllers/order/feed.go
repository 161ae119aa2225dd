package ordercontroller

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/skyyuga/tyremart-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Feed pushes order events to connected admin dashboards.
type Feed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewFeed() *Feed {
	return &Feed{clients: make(map[*websocket.Conn]bool)}
}

type orderEvent struct {
	Type  string       `json:"type"` // "order.created" or "order.status"
	Order models.Order `json:"order"`
}

// Handler upgrades the connection and keeps it registered until the
// client goes away. Incoming messages are ignored; the feed is
// broadcast-only.
func (f *Feed) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		f.mu.Lock()
		f.clients[conn] = true
		f.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				f.mu.Lock()
				delete(f.clients, conn)
				f.mu.Unlock()
				break
			}
		}
	}
}

func (f *Feed) BroadcastNewOrder(order models.Order) {
	f.broadcast(orderEvent{Type: "order.created", Order: order})
}

func (f *Feed) BroadcastStatusChange(order models.Order) {
	f.broadcast(orderEvent{Type: "order.status", Order: order})
}

func (f *Feed) broadcast(ev orderEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(f.clients, client)
		}
	}
}
