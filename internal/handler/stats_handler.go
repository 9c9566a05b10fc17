package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/response"
	"github.com/stemsi/safetrain-backend/internal/service"
)

// StatsHandler serves dashboard statistics.
type StatsHandler struct {
	statsService *service.StatsService
	log          zerolog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *service.StatsService, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		log:          log.With().Str("component", "stats_handler").Logger(),
	}
}

// Summary godoc
// GET /api/v1/stats
func (h *StatsHandler) Summary(c *gin.Context) {
	stats, err := h.statsService.Summary(c.Request.Context())
	if err != nil {
		failInternal(c, h.log, err, "Load stats failed")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
