package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingFunc reports whether the store answers.
type PingFunc func(ctx context.Context) error

type HealthController struct {
	ping PingFunc
	now  func() time.Time
}

func NewHealthController(ping PingFunc) *HealthController {
	return &HealthController{ping: ping, now: time.Now}
}

// Health godoc
// @Summary Liveness and store status
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is running"
// @Router /health [get]
func (hc *HealthController) Health(c *gin.Context) {
	database := "up"
	if hc.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := hc.ping(ctx); err != nil {
			database = "down"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "HealthMate API is running",
		"timestamp": hc.now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}
