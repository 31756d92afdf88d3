package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StyleMate-25-26J/stylemate-backend/internal/gallery"
)

type GalleryHandler struct{}

func NewGalleryHandler() *GalleryHandler {
	return &GalleryHandler{}
}

// List returns the fixed 8-outfit gallery in ID order.
func (h *GalleryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "outfits": gallery.All()})
}

func (h *GalleryHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/gallery", h.List)
}
