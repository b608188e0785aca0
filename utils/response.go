package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Success bool        `json:"success"`
}

// RespondSuccess writes the standard success envelope. A nil message defaults
// to "Success".
func RespondSuccess(c *gin.Context, data interface{}, message *string) {
	text := "Success"
	if message != nil {
		text = *message
	}
	c.JSON(http.StatusOK, Response{
		Status:  http.StatusOK,
		Data:    data,
		Message: text,
		Success: true,
	})
}

// RespondError writes the standard error envelope with the given status code.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Status:  status,
		Message: message,
		Success: false,
	})
}
