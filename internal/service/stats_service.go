package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/config"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/repository"
)

const statsCacheTTL = 30 * time.Second

// StatsService serves dashboard statistics with a short-lived Redis cache.
type StatsService struct {
	repo *repository.StatsRepository
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo *repository.StatsRepository, rdb *redis.Client, log zerolog.Logger) *StatsService {
	return &StatsService{
		repo: repo,
		rdb:  rdb,
		log:  log.With().Str("component", "stats_service").Logger(),
	}
}

// Summary returns the platform-wide metrics.
func (s *StatsService) Summary(ctx context.Context) (*model.Stats, error) {
	key := config.CacheKey.StatsKey()

	data, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var cached model.Stats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Stats cache read failed")
	}

	stats, err := s.repo.GetSummary(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, key, payload, statsCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Stats cache write failed")
		}
	}
	return stats, nil
}
