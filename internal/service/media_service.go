package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/config"
	"github.com/stemsi/safetrain-backend/internal/model"
)

// Sentinel errors for media uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrInvalidVideoData    = errors.New("invalid base64 video data")
)

// Allowed video extensions and the content type each is served with.
var allowedVideoTypes = map[string]string{
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"mov":  "video/quicktime",
}

const defaultVideoExt = "mp4"

var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// MediaService stores uploaded training videos on local disk.
type MediaService struct {
	uploadDir string
	maxBytes  int64
	log       zerolog.Logger
}

// NewMediaService creates a new MediaService.
func NewMediaService(cfg *config.Config, log zerolog.Logger) *MediaService {
	return &MediaService{
		uploadDir: cfg.UploadDir,
		maxBytes:  cfg.MaxUploadBytes,
		log:       log.With().Str("component", "media_service").Logger(),
	}
}

// SaveVideo writes r under videos/<program>/<module>/<uuid>.<ext>.
// Program and module ids that are empty or unsafe as path segments become
// "unknown". The extension is taken from filename and defaults to mp4.
func (s *MediaService) SaveVideo(r io.Reader, filename, programID, moduleID string) (*model.VideoUploadResult, error) {
	ext := videoExt(filename)
	contentType, ok := allowedVideoTypes[ext]
	if !ok {
		return nil, fmt.Errorf("%w: .%s (allowed: mp4, webm, mov)", ErrUnsupportedFileType, ext)
	}

	fileKey := path.Join("videos", pathSegment(programID), pathSegment(moduleID), uuid.New().String()+"."+ext)
	destPath := filepath.Join(s.uploadDir, filepath.FromSlash(fileKey))

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(r, s.maxBytes+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && written > s.maxBytes {
		err = fmt.Errorf("%w: max %d bytes", ErrFileTooLarge, s.maxBytes)
	}
	if err != nil {
		_ = os.Remove(destPath)
		if errors.Is(err, ErrFileTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("write file: %w", err)
	}

	s.log.Info().
		Str("file_key", fileKey).
		Int64("size", written).
		Msg("Video stored")

	return &model.VideoUploadResult{
		Success:     true,
		URL:         "/uploads/" + fileKey,
		FileKey:     fileKey,
		ContentType: contentType,
		Size:        written,
	}, nil
}

// SaveVideoBase64 decodes a base64 payload, optionally prefixed with a data
// URL header, and stores it like SaveVideo.
func (s *MediaService) SaveVideoBase64(data, filename, programID, moduleID string) (*model.VideoUploadResult, error) {
	if i := strings.Index(data, ","); i >= 0 && strings.HasPrefix(data, "data:") {
		data = data[i+1:]
	}
	if int64(base64.StdEncoding.DecodedLen(len(data))) > s.maxBytes+2 {
		return nil, fmt.Errorf("%w: max %d bytes", ErrFileTooLarge, s.maxBytes)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVideoData, err)
	}
	return s.SaveVideo(bytes.NewReader(raw), filename, programID, moduleID)
}

func videoExt(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return defaultVideoExt
	}
	return ext
}

func pathSegment(s string) string {
	if !segmentPattern.MatchString(s) {
		return "unknown"
	}
	return s
}
