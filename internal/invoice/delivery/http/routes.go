package http

import (
	"github.com/gin-gonic/gin"

	"travel-backoffice/internal/middleware"
)

// RegisterRoutes maps invoice routes. All routes require an operator token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	invoices := rg.Group("/invoices", mw.Auth())
	{
		invoices.GET("", h.List)
		invoices.GET("/:id", h.Detail)
	}
}
