package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/config"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/repository"
)

const (
	ActivityBatchSize    = 50
	ActivityBatchTimeout = 2 * time.Second
	ActivityPollTimeout  = 1 * time.Second
)

// ActivityWorker drains the activity queue into PostgreSQL and publishes
// every persisted entry on the live feed channel.
type ActivityWorker struct {
	repo *repository.ActivityRepository
	rdb  *redis.Client
	log  zerolog.Logger
}

func NewActivityWorker(repo *repository.ActivityRepository, rdb *redis.Client, log zerolog.Logger) *ActivityWorker {
	return &ActivityWorker{
		repo: repo,
		rdb:  rdb,
		log:  log.With().Str("component", "activity_worker").Logger(),
	}
}

// ----------------------------------------------------------------
// Worker loop with batching
// ----------------------------------------------------------------

// Start blocks until ctx is done, then flushes what it holds.
func (w *ActivityWorker) Start(ctx context.Context) {
	w.log.Info().Msg("ActivityWorker started")

	batch := make([]*model.ActivityEntry, 0, ActivityBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= ActivityBatchSize || time.Since(lastFlush) >= ActivityBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Int("pending", len(batch)).Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, ActivityPollTimeout, config.WorkerKey.PersistActivityQueue).Result()
			if err != nil {
				if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
					time.Sleep(ActivityPollTimeout)
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			entry, err := parseEntry(item[1])
			if err != nil {
				w.log.Error().Err(err).Msg("Dropping invalid activity payload")
				continue
			}

			batch = append(batch, entry)
		}
	}
}

// parseEntry decodes a queued payload and checks the columns the log
// requires.
func parseEntry(raw string) (*model.ActivityEntry, error) {
	var e model.ActivityEntry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if e.UserID < 1 {
		return nil, errors.New("missing user_id")
	}
	if e.Action == "" {
		return nil, errors.New("missing action")
	}
	return &e, nil
}

// ----------------------------------------------------------------
// Batch insert with per-row fallback
// ----------------------------------------------------------------

func (w *ActivityWorker) flushSafe(ctx context.Context, batch []*model.ActivityEntry) {
	if len(batch) == 0 {
		return
	}

	err := w.repo.BulkInsert(ctx, batch)
	if err == nil {
		w.publish(ctx, batch)
		return
	}
	w.log.Warn().Err(err).Int("size", len(batch)).Msg("Bulk activity insert failed, using fallback")

	persisted := make([]*model.ActivityEntry, 0, len(batch))
	for _, e := range batch {
		err := w.repo.Insert(ctx, e)
		switch {
		case err == nil:
			persisted = append(persisted, e)
		case errors.Is(err, repository.ErrReferenceNotFound):
			// The user no longer exists; retrying cannot succeed.
			w.log.Warn().Int64("user_id", e.UserID).Str("action", e.Action).Msg("Dropping activity for unknown user")
		default:
			w.log.Error().Err(err).Msg("Activity insert failed, requeueing")
			_ = w.requeue(ctx, e)
		}
	}
	w.publish(ctx, persisted)
}

// requeue pushes e back onto the queue. A failed push loses the entry, so
// the entry itself goes to the log.
func (w *ActivityWorker) requeue(ctx context.Context, e *model.ActivityEntry) error {
	raw, err := json.Marshal(e)
	if err == nil {
		err = w.rdb.RPush(ctx, config.WorkerKey.PersistActivityQueue, raw).Err()
	}
	if err != nil {
		w.log.Error().Err(err).
			Int64("user_id", e.UserID).
			Str("action", e.Action).
			Str("subject", e.Subject).
			Msg("Activity requeue failed, entry dropped")
		return fmt.Errorf("requeue activity: %w", err)
	}
	return nil
}

// ----------------------------------------------------------------
// Live feed
// ----------------------------------------------------------------

func (w *ActivityWorker) publish(ctx context.Context, entries []*model.ActivityEntry) {
	if len(entries) == 0 {
		return
	}

	channel := config.CacheKey.ActivityFeedChannel()
	pipe := w.rdb.Pipeline()
	for _, e := range entries {
		raw, err := json.Marshal(e)
		if err != nil {
			continue
		}
		pipe.Publish(ctx, channel, raw)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		w.log.Warn().Err(err).Msg("Activity publish failed")
	}
}
