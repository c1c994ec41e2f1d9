package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opennotes/backend/internal/app/models/dto"
	"github.com/opennotes/backend/internal/app/services"
	"github.com/opennotes/backend/internal/middleware"
)

// ChatController handles question answering over stored notes
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// Chat godoc
// @Summary Ask a question about stored notes
// @Description Answer a natural-language question strictly from the note text of a topic
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question and topic"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format")))
		return
	}

	answer, err := c.chatService.Answer(ctx.Request.Context(), req.Question, req.TopicID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Answer: answer})
}
