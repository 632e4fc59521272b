package http

import (
	"github.com/gin-gonic/gin"

	"travel-backoffice/internal/middleware"
)

// RegisterRoutes maps assistant routes. All routes require an operator token
// and message submission is rate limited per operator.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/assistant/sessions", mw.Auth())
	{
		sessions.POST("", h.Start)
		sessions.GET("/:id", h.Session)
		sessions.POST("/:id/messages", mw.RateLimit(), h.Submit)
		sessions.POST("/:id/refresh", h.Refresh)
		sessions.DELETE("/:id/stack", h.Clear)
		sessions.GET("/:id/ws", h.Stream)
	}
}
