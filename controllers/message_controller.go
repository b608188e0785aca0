package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-server/services"
	"chat-server/utils"
)

// MessageController serves message send and history requests through the chat
// service.
type MessageController struct {
	chat *services.ChatService
}

func NewMessageController(chat *services.ChatService) *MessageController {
	return &MessageController{chat: chat}
}

// SendMessage stores a message for the receiver in the path and pushes it to
// them if they are online.
func (mc *MessageController) SendMessage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	receiverID := c.Param("id")

	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := mc.chat.RecordMessage(c.Request.Context(), user.ID, receiverID, input.Message)
	if err != nil {
		if errors.Is(err, services.ErrInvalidParticipants) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sender or receiver id provided"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message"})
		return
	}

	text := "Message created successfully"
	utils.RespondSuccess(c, message, &text)
}

// GetMessages returns the caller's chat history with the friend in the path,
// oldest first.
func (mc *MessageController) GetMessages(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	friendID := c.Param("friendId")

	messages, err := mc.chat.GetHistory(c.Request.Context(), user.ID, friendID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	text := "Chat history fetched successfully"
	utils.RespondSuccess(c, messages, &text)
}
