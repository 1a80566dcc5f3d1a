// internal/api/lead_handler.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admissions-backend/internal/models"
	"admissions-backend/internal/service"
)

type LeadHandler struct {
	leads *service.LeadService
}

func NewLeadHandler(leads *service.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

func (h *LeadHandler) Create(c *gin.Context) {
	var lead models.Lead
	if err := bindValidated(c, leadSchema, &lead); err != nil {
		respondError(c, err)
		return
	}

	created, err := h.leads.Create(c.Request.Context(), &lead)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Lead captured successfully",
		"lead":    created,
	})
}
