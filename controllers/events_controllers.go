package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"restaurant-ops/events"
	"restaurant-ops/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type EventsController struct{}

func NewEventsController() *EventsController {
	return &EventsController{}
}

// Stream upgrades the connection and keeps it registered with the hub until
// the client drops.
func (ec *EventsController) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	role := c.GetString("role")
	events.RegisterClient(conn, role)
	utils.InfoLogger.Printf("Event stream client connected (role=%s)", role)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			events.UnregisterClient(conn)
			return
		}
	}
}
