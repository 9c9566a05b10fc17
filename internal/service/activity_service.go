package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/config"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/repository"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 100
)

// ActivityRecorder appends entries to the activity log.
type ActivityRecorder interface {
	Record(ctx context.Context, entry model.ActivityEntry)
}

// ActivityService queues activity entries for the persist worker and serves
// the recent feed.
type ActivityService struct {
	repo *repository.ActivityRepository
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewActivityService creates a new ActivityService.
func NewActivityService(repo *repository.ActivityRepository, rdb *redis.Client, log zerolog.Logger) *ActivityService {
	return &ActivityService{
		repo: repo,
		rdb:  rdb,
		log:  log.With().Str("component", "activity_service").Logger(),
	}
}

// Record pushes entry onto the persist queue. When Redis is unreachable the
// entry is written directly. Failures are only logged.
func (s *ActivityService) Record(ctx context.Context, entry model.ActivityEntry) {
	payload, err := json.Marshal(entry)
	if err == nil {
		err = s.rdb.RPush(ctx, config.WorkerKey.PersistActivityQueue, payload).Err()
		if err == nil {
			return
		}
	}

	s.log.Warn().Err(err).Str("action", entry.Action).Msg("Queue push failed, inserting activity directly")
	if err := s.repo.Insert(ctx, &entry); err != nil {
		s.log.Error().Err(err).
			Int64("user_id", entry.UserID).
			Str("action", entry.Action).
			Msg("Failed to record activity")
	}
}

// ListRecent returns the newest entries. limit is clamped to [1, 100] and
// defaults to 10.
func (s *ActivityService) ListRecent(ctx context.Context, limit int) ([]model.ActivityView, error) {
	entries, err := s.repo.ListRecent(ctx, normalizeActivityLimit(limit))
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.ActivityView{}
	}
	return entries, nil
}

func normalizeActivityLimit(limit int) int {
	if limit <= 0 {
		return defaultActivityLimit
	}
	return min(limit, maxActivityLimit)
}

func strPtr(s string) *string {
	return &s
}
