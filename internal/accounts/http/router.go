package http

import (
	"github.com/gin-gonic/gin"

	"github.com/StyleMate-25-26J/stylemate-backend/internal/session"
)

// Register mounts the auth routes on the given group. Signup and login are
// public; logout and profile require an attached session.
func Register(g *gin.RouterGroup, h *Handler) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)

	g.POST("/logout", session.RequireUser(), h.Logout)
	g.GET("/profile", session.RequireUser(), h.Profile)
}
