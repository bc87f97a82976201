package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves liveness endpoints.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the service is up
// @Tags home
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HomeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
