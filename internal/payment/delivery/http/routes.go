package http

import (
	"github.com/gin-gonic/gin"

	"travel-backoffice/internal/middleware"
)

// RegisterRoutes maps payment routes. All routes require an operator token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	payments := rg.Group("/payments", mw.Auth())
	{
		payments.GET("", h.List)
		payments.GET("/:id", h.Detail)
	}
}
