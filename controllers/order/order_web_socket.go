package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mayarj/Ecommerceclientappdesign/controllers/views"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /user/orders/ws
//
// Streams every order the session places from now on as a JSON message.
func OrderWebSocketHandler(c *gin.Context) {
	s, locale, ok := currentSession(c)
	if !ok {
		return
	}

	// subscribed before the handshake completes, so no order slips through
	placed, cancel := s.Subscribe()
	defer cancel()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// the client only ever closes; reading notices that
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case order, ok := <-placed:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(views.NewOrder(order, locale)); err != nil {
				return
			}
		}
	}
}
