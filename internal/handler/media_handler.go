package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/response"
	"github.com/stemsi/safetrain-backend/internal/service"
	"github.com/stemsi/safetrain-backend/internal/validator"
)

// MediaHandler handles media upload endpoints.
type MediaHandler struct {
	mediaService *service.MediaService
	log          zerolog.Logger
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService *service.MediaService, log zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		log:          log.With().Str("component", "media_handler").Logger(),
	}
}

// UploadVideo godoc
// POST /api/v1/media/videos
// Accepts multipart "file" or JSON {videoData, filename}. The target program
// and module come from the X-Program-Id and X-Module-Id headers.
func (h *MediaHandler) UploadVideo(c *gin.Context) {
	programID := c.GetHeader("X-Program-Id")
	moduleID := c.GetHeader("X-Module-Id")

	var (
		result *model.VideoUploadResult
		err    error
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, header, ferr := c.Request.FormFile("file")
		if ferr != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
			return
		}
		defer file.Close()

		result, err = h.mediaService.SaveVideo(file, header.Filename, programID, moduleID)
	} else {
		var req model.VideoUploadRequest
		if fields := validator.Bind(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
			return
		}
		result, err = h.mediaService.SaveVideoBase64(req.VideoData, req.Filename, programID, moduleID)
	}

	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		case errors.Is(err, service.ErrInvalidVideoData):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		default:
			failInternal(c, h.log, err, "Video upload failed")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
