package http

import (
	"github.com/gin-gonic/gin"

	"travel-backoffice/internal/middleware"
)

// RegisterRoutes maps authentication routes. Only /me requires a token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", mw.Auth(), h.Me)
	}
}
