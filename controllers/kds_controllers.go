package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/bellavista/ordering/kds"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Kitchen displays run on the local network; the channel carries no
		// credentials, so any origin may connect.
		return true
	},
}

type KDSController struct {
	Hub *kds.Hub
}

func NewKDSController(hub *kds.Hub) *KDSController {
	return &KDSController{Hub: hub}
}

// KitchenSocket -> WebSocket endpoint for kitchen displays. On connect the
// hub pushes the current order list; afterwards the connection only receives
// broadcasts until it drops.
func (kc *KDSController) KitchenSocket(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	kc.Hub.Register(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kc.Hub.Unregister(ws)
}
