package handler

import (
	"net/http"

	"github.com/flowbit/analytics-api/internal/application/service"
	"github.com/flowbit/analytics-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ChatHandler proxies chat prompts to the NL-to-SQL service
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatRequest struct {
	Prompt  string `json:"prompt" binding:"required"`
	MaxRows int    `json:"max_rows"`
}

// Ask handles POST /chat-with-data
func (h *ChatHandler) Ask(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "prompt is required")
		return
	}

	payload, err := h.chatService.Ask(c.Request.Context(), req.Prompt, req.MaxRows)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The upstream body is returned unmodified.
	c.Data(http.StatusOK, "application/json", payload)
}
