package httpserver

import (
	"github.com/gin-gonic/gin"

	"book-agent/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Ask the books anything"
	HealthVersion = "1.0.0"
	ServiceName   = "book-agent"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"store":   srv.storeStatus(),
	})
}

// readyCheck reports readiness along with which conversation store actually
// serves traffic, so a degraded fallback is visible to operators.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
		"store":   srv.storeStatus(),
	})
}

// storeStatus exposes which conversation store actually serves traffic, so
// a degraded fallback is visible to operators.
func (srv *HTTPServer) storeStatus() gin.H {
	store := gin.H{
		"backend":  srv.availability.Backend,
		"degraded": srv.availability.Degraded,
	}
	if srv.availability.Degraded {
		store["reason"] = srv.availability.Reason
	}
	return store
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
