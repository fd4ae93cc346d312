package handlers

import (
	"net/http"

	"messenger_backend/internal/services"
	"messenger_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.AddContact)
		contacts.GET("/:id", h.ListContacts)
	}
}

func (h *ContactHandler) AddContact(c *gin.Context) {
	var req dto.AddContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contactID, err := h.contactService.AddContact(req.UserID1, req.UserID2)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     contactID,
		"status": "success",
	})
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	userID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	contacts, err := h.contactService.ListContacts(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": contacts,
		"status":   "success",
	})
}
