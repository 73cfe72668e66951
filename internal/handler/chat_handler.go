package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gaon-hs/gaon-portal-api/internal/dto"
	appErrors "github.com/gaon-hs/gaon-portal-api/pkg/errors"
)

type chatService interface {
	Reply(ctx context.Context, message string) string
}

// ChatHandler forwards free-text questions to the conversational backend.
type ChatHandler struct {
	service chatService
}

func NewChatHandler(service chatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Post godoc
// @Summary Ask the portal assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body dto.ChatRequest true "User message"
// @Success 200 {object} dto.ChatResponse
// @Router /api/chat [post]
func (h *ChatHandler) Post(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, appErrors.Clone(appErrors.ErrValidation, "message is required"))
		return
	}

	reply := h.service.Reply(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}
