package server

import (
	"context"
	"net/http"
	"strconv"

	"frontdesk/internal/api"
	"frontdesk/internal/events"
	"frontdesk/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// ActivityFeed is the read side of the event publisher.
type ActivityFeed interface {
	Recent(ctx context.Context, n int64) ([]events.Event, error)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

// @Summary      Recent front desk activity
// @Description  Newest events first. Requires REDIS_ADDR to be configured.
// @Tags         admin
// @Produce      json
// @Param        limit query int false "Number of events, default 50, max 500"
// @Success      200 {array} events.Event
// @Failure      400 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /admin/activity [get]
func Activity(feed ActivityFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		if feed == nil {
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "activity feed is not configured"})
			return
		}

		limit := defaultActivityLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > maxActivityLimit {
				c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "limit must be between 1 and 500"})
				return
			}
			limit = n
		}

		recent, err := feed.Recent(c.Request.Context(), int64(limit))
		if err != nil {
			logger.WithError(err).Error("Failed to read activity feed")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read activity feed"})
			return
		}

		c.JSON(http.StatusOK, recent)
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
