package live

import (
	"net/http"

	"eventease/middleware"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

type Client struct {
	conn  *websocket.Conn
	Send  chan []byte
	Topic string
}

func (c *Client) writePump() {
	for msg := range c.Send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
	c.conn.Close()
}

// HandleWS subscribes the caller to a topic such as "bookings:<clientId>",
// "tasks:<vendorId>", "notifications:<userId>" or "admin:bookings". The token
// comes via query parameter since browsers cannot set headers on websockets.
func HandleWS(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token := r.URL.Query().Get("token")
		if _, err := middleware.ValidateJWT("Bearer " + token); err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		topic := ps.ByName("topic")
		if topic == "" {
			http.Error(w, "missing topic", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		client := &Client{conn: conn, Send: make(chan []byte, 16), Topic: topic}
		hub.register <- client
		go client.writePump()

		for {
			// Keeps the connection alive until the client disconnects
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		hub.unregister <- client
	}
}
