package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/StyleMate-25-26J/stylemate-backend/internal/gallery"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/preference"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/suggestion"
)

// formKeys are the raw fields the collector understands, including the
// accepted aliases for colorPreference.
var formKeys = []string{"style", "occasion", "colorPreference", "color_preference", "color", "wardrobe", "use_ai"}

type SuggestHandler struct {
	engine *suggestion.Engine
}

func NewSuggestHandler(engine *suggestion.Engine) *SuggestHandler {
	return &SuggestHandler{engine: engine}
}

// Suggest normalizes the submitted preferences and returns a suggestion
// plus the referenced gallery outfit. Accepts JSON and form bodies.
func (h *SuggestHandler) Suggest(c *gin.Context) {
	raw, err := readRawForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	req, err := preference.Normalize(raw)
	if err != nil {
		var ve *preference.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": ve.Error(), "field": ve.Field})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	s := h.engine.Suggest(c.Request.Context(), req)

	outfit, err := gallery.ByRef(s.ImageRef)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to resolve outfit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "suggestion": s, "outfit": outfit})
}

func (h *SuggestHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/suggest", h.Suggest)
}

func readRawForm(c *gin.Context) (map[string]string, error) {
	raw := map[string]string{}

	if strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	for _, k := range formKeys {
		if v, ok := c.GetPostForm(k); ok {
			raw[k] = v
		}
	}
	return raw, nil
}
