package v1

import (
	"github.com/gin-gonic/gin"

	"go-sparkshield-backend/internal/delivery/http/response"
	"go-sparkshield-backend/internal/domain"
	"go-sparkshield-backend/pkg/apperror"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

// NewChatHandler registers the chat relay route (public, no auth)
func NewChatHandler(r gin.IRoutes, chatUC domain.ChatUsecase) {
	handler := &ChatHandler{
		chatUC: chatUC,
	}

	r.POST("/chat", handler.Chat)
}

// Chat godoc
// @Summary      Chat Relay
// @Description  Forward a question to the fire-safety assistant and return the generated answer. Stateless; no conversation memory.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        chat  body      domain.ChatRequest  true  "Chat Message"
// @Success      200   {object}  response.ChatBody
// @Failure      500   {object}  response.ErrorBody
// @Router       /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Upstream("Failed to get response from AI", err))
		return
	}

	answer, err := h.chatUC.Relay(c.Request.Context(), req.Message)
	if err != nil {
		c.Error(apperror.Upstream("Failed to get response from AI", err))
		return
	}

	response.Chat(c, answer)
}
