package kds

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/bellavista/ordering/models"
	"github.com/bellavista/ordering/utils"
)

// EventKitchenOrders is the single message type the kitchen channel carries:
// a full snapshot of the kitchen order list.
const EventKitchenOrders = "kitchen:orders"

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub is the connection registry for kitchen displays. Every order mutation
// triggers a re-query of the full kitchen list and a push to all connected
// clients; each connect gets the current snapshot immediately. Delivery is
// best-effort: a failed write evicts that connection and broadcasting moves
// on to the rest.
type Hub struct {
	db      *gorm.DB
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub(db *gorm.DB) *Hub {
	return &Hub{
		db:      db,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Register adds a connection and pushes the current order list to it alone.
func (h *Hub) Register(conn *websocket.Conn) {
	payload, err := h.snapshot()
	if err != nil {
		utils.ErrorLogger.Printf("kds: snapshot on connect failed: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		delete(h.clients, conn)
		conn.Close()
	}
}

// Unregister drops a connection and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// ClientCount reports how many displays are connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastKitchenOrders re-queries the full kitchen order list and pushes it
// to every connected display. Each broadcast is a full snapshot, so whichever
// broadcast lands last is authoritative; no ordering guarantee is needed
// beyond per-connection write order.
func (h *Hub) BroadcastKitchenOrders() {
	payload, err := h.snapshot()
	if err != nil {
		utils.ErrorLogger.Printf("kds: broadcast query failed: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// KitchenOrders is the query backing both the broadcast and the HTTP kitchen
// list: all orders with nested items, oldest first for FIFO handling.
func KitchenOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("OrderItems").
		Preload("OrderItems.MenuItem").
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

func (h *Hub) snapshot() ([]byte, error) {
	orders, err := KitchenOrders(h.db)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{
		Type: EventKitchenOrders,
		Data: orders,
	})
}
