package routes

import (
	"net/http"

	"messenger_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the HTTP API.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	// Liveness probe
	ginRouter.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Chat Messenger Server is running!")
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ChatHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
		appHandlers.MessageHandler.RegisterRoutes(api)
	}
}
