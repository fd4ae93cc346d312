package handlers

import (
	"net/http"

	"messenger_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/search/:query", h.Search)
		users.GET("/:id", h.GetByID)
	}
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     user.ID,
		"name":   user.Name,
		"login":  user.Login,
		"status": "success",
	})
}

func (h *UserHandler) Search(c *gin.Context) {
	query := c.Param("query")

	users, err := h.userService.Search(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":  users,
		"status": "success",
	})
}
