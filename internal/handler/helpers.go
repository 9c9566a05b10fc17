package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/response"
)

// parseID reads a positive integer path parameter, writing a 400 response
// when it is malformed.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// parseQueryID reads an optional positive integer query parameter.
// ok is false when the parameter is present but malformed; a 400 response
// has been written in that case.
func parseQueryID(c *gin.Context, name string) (id int64, present, ok bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{name: name + " must be a positive integer"})
		return 0, true, false
	}
	return id, true, true
}

// failInternal logs the cause and writes a generic 500.
func failInternal(c *gin.Context, log zerolog.Logger, err error, msg string) {
	log.Error().Err(err).
		Str("request_id", response.RequestID(c)).
		Str("path", c.FullPath()).
		Msg(msg)
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
