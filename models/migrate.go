package models

import (
	"log"

	"chat-server/config"
)

// Migrate runs the schema migrations for all models.
func Migrate() {
	err := config.DB.AutoMigrate(&User{}, &Message{}, &Conversation{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}
