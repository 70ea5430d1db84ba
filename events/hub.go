// Package events broadcasts order, table and payment lifecycle events to
// connected staff terminals over websockets.
package events

import (
	"sync"

	"github.com/gorilla/websocket"

	"restaurant-ops/models"
	"restaurant-ops/utils"
)

const (
	EventOrderCreated    = "order_created"
	EventOrderUpdated    = "order_updated"
	EventOrderDeleted    = "order_deleted"
	EventTableUpdated    = "table_updated"
	EventPaymentRecorded = "payment_recorded"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks every connected staff terminal and its role.
type Hub struct {
	clients map[*websocket.Conn]string
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection to the broadcast set.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

func BroadcastOrderCreated(order models.Order) {
	broadcast(Message{Event: EventOrderCreated, Data: order})
}

func BroadcastOrderUpdated(order models.Order) {
	broadcast(Message{Event: EventOrderUpdated, Data: order})
}

func BroadcastOrderDeleted(orderID string) {
	broadcast(Message{Event: EventOrderDeleted, Data: map[string]string{"order_id": orderID}})
}

func BroadcastTableUpdated(table models.Table) {
	broadcast(Message{Event: EventTableUpdated, Data: table})
}

func BroadcastPaymentRecorded(payment models.Payment) {
	broadcast(Message{Event: EventPaymentRecorded, Data: payment})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for conn := range hub.clients {
		if err := conn.WriteJSON(msg); err != nil {
			utils.ErrorLogger.Printf("websocket write failed, dropping client: %v", err)
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
