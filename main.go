package main

import (
	"log"

	"chat-server/config"
	"chat-server/models"
	"chat-server/routes"
	"chat-server/services"
)

func main() {
	config.Load()
	config.InitDB()
	models.Migrate()

	hub := services.NewHub()
	chat := services.NewChatService(config.DB, hub.Presence(), hub)

	r := routes.RegisterRoutes(hub, chat)

	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
