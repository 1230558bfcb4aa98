package api

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin policy is enforced by the CORS middleware.
		return true
	},
}

// handleWebSocket handles GET /api/v1/ws/inventory. Subscribers receive an
// InventoryEvent for every change made through the API.
func (s *Server) handleWebSocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return err
	}

	client := &Client{
		hub:  s.wsHub,
		conn: conn,
		send: make(chan []byte, 256),
	}
	s.wsHub.register <- client

	go client.writePump()
	go client.readPump()

	return nil
}

// broadcast pushes an inventory change to all WebSocket subscribers.
func (s *Server) broadcast(eventType InventoryEventType, data interface{}) {
	s.debugLog("broadcasting %s to %d clients", eventType, s.wsHub.ClientCount())
	if err := s.wsHub.BroadcastEvent(InventoryEvent{Type: eventType, Data: data}); err != nil {
		log.Printf("ERROR: failed to broadcast %s event: %v", eventType, err)
	}
}
