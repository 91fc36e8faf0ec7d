package routes

import (
	"github.com/gin-gonic/gin"

	"fuelogistics/internal/controllers"
)

func WebSocketRoutes(r *gin.Engine, wc *controllers.WebSocketController) {
	// Token auth happens inside the handler (query parameter), since the
	// browser WebSocket API cannot set headers on the upgrade request.
	r.GET("/ws", wc.HandleConnection)
}
