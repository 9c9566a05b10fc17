package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const (
	connectAttempts = 5
	connectBackoff  = time.Second
)

// retry calls fn until it succeeds, attempts are exhausted or ctx ends.
// The wait doubles after every failure.
func retry(ctx context.Context, log zerolog.Logger, what string, attempts int, backoff time.Duration, fn func(context.Context) error) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if i == attempts {
			break
		}

		log.Warn().Err(err).Int("attempt", i).Dur("retry_in", backoff).Msgf("%s not ready", what)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return err
}
