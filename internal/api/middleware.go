// internal/api/middleware.go
package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/common/metrics"
)

// requestLogger logs one line per request with method, route, status
// and latency.
func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		log.Info("http request", map[string]interface{}{
			"method":   c.Request.Method,
			"route":    route,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"clientIp": c.ClientIP(),
		})
	}
}

// requestMetrics records the prometheus counters and latency histogram.
// The route template (not the raw path) labels the series, keeping
// cardinality bounded.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := statusLabel(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// corsMiddleware allows the configured frontend origins. "*" opens the
// API up entirely, which is the development default.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// respondError writes the standardized error envelope with the HTTP
// status mapped from the error code.
func respondError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if stdErr, ok := err.(*errors.StandardError); ok {
		c.JSON(status, gin.H{"error": stdErr})
		return
	}
	c.JSON(status, gin.H{"error": gin.H{
		"code":    "INTERNAL_ERROR",
		"message": "internal error",
	}})
}
