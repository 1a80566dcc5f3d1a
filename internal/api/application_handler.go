// internal/api/application_handler.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admissions-backend/internal/service"
)

type saveApplicationRequest struct {
	UserID string                 `json:"userId"`
	Data   map[string]interface{} `json:"data"`
	Status string                 `json:"status"`
}

// ApplicationHandler exposes the intake endpoints.
type ApplicationHandler struct {
	applications *service.ApplicationService
}

func NewApplicationHandler(applications *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// Get returns the user's application, or a JSON null when none exists.
// The frontend treats null as "no draft yet".
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.applications.Find(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Save upserts the application from a form step. Both partial draft
// saves and the final submit land here; the status field decides which.
func (h *ApplicationHandler) Save(c *gin.Context) {
	var req saveApplicationRequest
	if err := bindValidated(c, saveApplicationSchema, &req); err != nil {
		respondError(c, err)
		return
	}

	app, err := h.applications.Save(c.Request.Context(), req.UserID, req.Data, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Application saved successfully",
		"application": app,
	})
}

// Resume returns the sections the multi-step form repopulates from.
func (h *ApplicationHandler) Resume(c *gin.Context) {
	sections, err := h.applications.Resume(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sections})
}
