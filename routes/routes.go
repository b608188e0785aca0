package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"chat-server/config"
	"chat-server/controllers"
	"chat-server/middlewares"
	"chat-server/services"
)

// RegisterRoutes builds the gin engine with all routes wired to the hub and
// chat service.
func RegisterRoutes(hub *services.Hub, chat *services.ChatService) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     []string{config.CORSOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	r.Use(cors.New(corsConfig))

	r.GET("/ws", controllers.WSController(hub))

	messageController := controllers.NewMessageController(chat)

	user := r.Group("/api/v1/user")
	user.POST("/register", controllers.Register)
	user.POST("/login", controllers.Login)
	user.GET("/verify", controllers.VerifyEmail)
	user.POST("/refresh", controllers.RefreshToken)

	{
		user.Use(middlewares.TokenAuthMiddleware())
		user.POST("/logout", controllers.Logout)
		user.POST("/getAllUserData", controllers.GetAllUsers)
		user.POST("/sendMessage/:id", messageController.SendMessage)
		user.POST("/getMessage/:friendId", messageController.GetMessages)
	}

	return r
}
