// internal/api/content_handler.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admissions-backend/internal/service"
)

// ContentHandler serves the read-only marketing content.
type ContentHandler struct {
	content *service.ContentService
}

func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) SiteSettings(c *gin.Context) {
	settings, err := h.content.SiteSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *ContentHandler) Programs(c *gin.Context) {
	programs, err := h.content.Programs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, programs)
}

func (h *ContentHandler) Stats(c *gin.Context) {
	stats, err := h.content.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ContentHandler) Events(c *gin.Context) {
	events, err := h.content.Events(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *ContentHandler) Testimonials(c *gin.Context) {
	testimonials, err := h.content.Testimonials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}
