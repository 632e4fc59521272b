package http

import (
	"github.com/gin-gonic/gin"

	"travel-backoffice/internal/middleware"
)

// RegisterRoutes maps dashboard routes. All routes require an operator token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	dash := rg.Group("/dashboard", mw.Auth())
	{
		dash.GET("/summary", h.Summary)
		dash.GET("/revenue", h.Revenue)
	}
}
