package handlers

import (
	"net/http"

	"messenger_backend/internal/services"
	"messenger_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	{
		messages.POST("", h.Send)
		messages.POST("/forward", h.Forward)
		messages.GET("/:id", h.GetInfo)
		messages.PUT("/:id", h.Edit)
		messages.DELETE("/:id", h.Delete)
	}
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	messageID, err := h.messageService.Send(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     messageID,
		"status": "success",
	})
}

func (h *MessageHandler) Edit(c *gin.Context) {
	messageID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.EditMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.messageService.Edit(messageID, req.UserID, req.Message); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *MessageHandler) Delete(c *gin.Context) {
	messageID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.DeleteMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.messageService.Delete(messageID, req.UserID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *MessageHandler) Forward(c *gin.Context) {
	var req dto.ForwardMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	messageID, err := h.messageService.Forward(req.OriginalMessageID, req.TargetChatID, req.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     messageID,
		"status": "success",
	})
}

func (h *MessageHandler) GetInfo(c *gin.Context) {
	messageID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	info, err := h.messageService.GetInfo(messageID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":  info.UserID,
		"message": info.Message,
		"status":  "success",
	})
}
