package http

import (
	"github.com/gin-gonic/gin"

	"travel-backoffice/internal/middleware"
)

// RegisterRoutes maps booking routes. All routes require an operator token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	bookings := rg.Group("/bookings", mw.Auth())
	{
		bookings.GET("", h.List)
		bookings.POST("", h.Create)
		bookings.GET("/:id", h.Detail)
	}
}
