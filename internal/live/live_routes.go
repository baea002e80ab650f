package live

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers connect from the rendered pages; CORS policy is handled at
	// the router level.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RegisterLiveRoutes exposes the WebSocket upgrade endpoint viewers use to
// receive scoreUpdated/activityAdded/activityUpdated events.
func RegisterLiveRoutes(router *gin.Engine, hub *Hub) {
	router.GET("/live", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("live: upgrade failed: %v", err)
			return
		}

		client := NewClient(uuid.New().String(), conn, hub)
		hub.Register(client)

		go client.WritePump()
		go client.ReadPump()
	})
}
