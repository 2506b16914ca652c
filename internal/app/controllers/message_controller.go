package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qasyoun/qasyounextra/internal/app/models/dto"
	"github.com/qasyoun/qasyounextra/internal/app/services"
	"github.com/qasyoun/qasyounextra/internal/middleware"
)

// MessageController handles direct messages
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// GetMessages lists messages the caller sent or received
// @Summary List own messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Message} "Messages"
// @Router /messages [get]
func (c *MessageController) GetMessages(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	messages, err := c.messageService.GetMessages(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}

// SendMessage sends a message from the caller
// @Summary Send message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=models.Message} "Message sent"
// @Failure 404 {object} dto.ErrorResponse "Receiver not found"
// @Router /messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	senderID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, "Invalid message request", err)
		return
	}

	message, err := c.messageService.Send(ctx.Request.Context(), senderID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// MarkAsRead marks a received message as read
// @Summary Mark message as read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Marked"
// @Failure 403 {object} dto.ErrorResponse "Not the receiver"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /messages/{id}/read [patch]
func (c *MessageController) MarkAsRead(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	messageID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.messageService.MarkAsRead(ctx.Request.Context(), userID, messageID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Message marked as read"}))
}
