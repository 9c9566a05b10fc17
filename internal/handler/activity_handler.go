package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/response"
	"github.com/stemsi/safetrain-backend/internal/service"
	"github.com/stemsi/safetrain-backend/internal/validator"
)

// ActivityHandler serves the recent activity feed.
type ActivityHandler struct {
	activityService *service.ActivityService
	log             zerolog.Logger
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService *service.ActivityService, log zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		log:             log.With().Str("component", "activity_handler").Logger(),
	}
}

// List godoc
// GET /api/v1/activity?limit=
func (h *ActivityHandler) List(c *gin.Context) {
	var q model.ActivityQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	entries, err := h.activityService.ListRecent(c.Request.Context(), q.Limit)
	if err != nil {
		failInternal(c, h.log, err, "List activity failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"activities": entries})
}
