package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Checker reports whether the identity validator is operational.
type Checker interface {
	Check() error
}

type HealthHandler struct {
	checker Checker
}

func NewHealthHandler(checker Checker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "inbank-backend",
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if h.checker == nil || h.checker.Check() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "not_ready",
			"validator": "error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"validator": "ok",
	})
}
