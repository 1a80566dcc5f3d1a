// internal/api/router.go

// Package api wires the REST surface: routing, middleware, request
// validation and the HTTP-facing handlers.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/service"
	"admissions-backend/internal/store"
)

// Dependencies carries everything the router needs. All services are
// required; CORSOrigins defaults to allow-all when empty.
type Dependencies struct {
	Logger       logger.Logger
	CORSOrigins  []string
	Store        store.Store
	Applications *service.ApplicationService
	Auth         *service.AuthService
	Content      *service.ContentService
	Leads        *service.LeadService
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(deps Dependencies) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(deps.Logger))
	router.Use(requestMetrics())

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(corsMiddleware(origins))

	applications := NewApplicationHandler(deps.Applications)
	auth := NewAuthHandler(deps.Auth)
	content := NewContentHandler(deps.Content)
	leads := NewLeadHandler(deps.Leads)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/application/:userId", applications.Get)
		apiGroup.GET("/application/:userId/resume", applications.Resume)
		apiGroup.POST("/application", applications.Save)

		apiGroup.POST("/register", auth.Register)
		apiGroup.POST("/login", auth.Login)

		apiGroup.GET("/site-settings", content.SiteSettings)
		apiGroup.GET("/programs", content.Programs)
		apiGroup.GET("/stats", content.Stats)
		apiGroup.GET("/events", content.Events)
		apiGroup.GET("/testimonials", content.Testimonials)

		apiGroup.POST("/leads", leads.Create)
	}

	router.GET("/health", healthHandler(deps.Store))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// healthHandler reports liveness plus storage reachability. The service
// stays up on a degraded store because the failover substrate still
// serves traffic.
func healthHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		storage := "ok"
		if err := st.Ping(c.Request.Context()); err != nil {
			status = "degraded"
			storage = "unavailable"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"storage": storage,
		})
	}
}
