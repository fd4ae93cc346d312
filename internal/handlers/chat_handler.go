package handlers

import (
	"net/http"

	"messenger_backend/internal/services"
	"messenger_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	*BaseHandler
	chatService    services.ChatService
	messageService services.MessageService
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService, messageService services.MessageService) *ChatHandler {
	return &ChatHandler{
		BaseHandler:    base,
		chatService:    chatService,
		messageService: messageService,
	}
}

func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	chats := rg.Group("/chats")
	{
		chats.POST("", h.CreateChat)
		// :id is the USER id here: the chat list of that user.
		chats.GET("/:id", h.ListChats)
		chats.GET("/:id/messages", h.ListMessages)
		chats.POST("/:id/members", h.AddMember)
	}
}

func (h *ChatHandler) CreateChat(c *gin.Context) {
	var req dto.CreateChatRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	chatID, err := h.chatService.CreateChat(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     chatID,
		"status": "success",
	})
}

func (h *ChatHandler) ListChats(c *gin.Context) {
	userID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	chats, err := h.chatService.ListChats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chats":  chats,
		"status": "success",
	})
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	chatID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	messages, err := h.messageService.ListForChat(chatID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"status":   "success",
	})
}

func (h *ChatHandler) AddMember(c *gin.Context) {
	chatID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.chatService.AddMember(req.UserID, chatID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
