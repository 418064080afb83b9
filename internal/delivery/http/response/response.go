package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageBody is the success body for quote submissions.
type MessageBody struct {
	Message string `json:"message"`
}

// ChatBody is the success body for the chat relay.
type ChatBody struct {
	Response string `json:"response"`
}

// ErrorBody is the failure body for every endpoint. Details is only set when
// a handler deliberately exposes the cause (chat) or in development mode.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Message sends a 200 confirmation
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Chat sends a 200 generated answer
func Chat(c *gin.Context, text string) {
	c.JSON(http.StatusOK, ChatBody{Response: text})
}

// Error sends a failure response
func Error(c *gin.Context, code int, message, details string) {
	c.JSON(code, ErrorBody{Error: message, Details: details})
}
