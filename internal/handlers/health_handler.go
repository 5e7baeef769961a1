package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmiclearn/learning-service/internal/services"
)

const serviceName = "learning-service"

type HealthHandler struct {
	BaseHandler
	serviceManager services.ServiceManager
}

func NewHealthHandler(serviceManager services.ServiceManager, base BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base, serviceManager: serviceManager}
}

// Health reports whether the store and cache answer.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		h.LogError(c, err, "Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": serviceName,
			"checks":  gin.H{"services": err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"checks":  gin.H{"services": "ok"},
	})
}
