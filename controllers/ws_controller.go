package controllers

import (
	"github.com/gin-gonic/gin"

	"chat-server/services"
)

// WSController upgrades socket connections onto the hub.
func WSController(hub *services.Hub) gin.HandlerFunc {
	return services.HandleWebSocket(hub)
}
