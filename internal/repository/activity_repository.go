package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/safetrain-backend/internal/model"
)

// ActivityRepository handles activity log data access.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Insert appends a single entry and fills its id and timestamp.
func (r *ActivityRepository) Insert(ctx context.Context, e *model.ActivityEntry) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO activity_log (user_id, action, subject, details)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		e.UserID, e.Action, e.Subject, e.Details,
	).Scan(&e.ID, &e.CreatedAt)
	return mapFKViolation(err)
}

// BulkInsert appends entries with a single UNNEST insert and fills their ids
// and timestamps in input order.
func (r *ActivityRepository) BulkInsert(ctx context.Context, entries []*model.ActivityEntry) error {
	if len(entries) == 0 {
		return nil
	}

	n := len(entries)
	userIDs := make([]int64, n)
	actions := make([]string, n)
	subjects := make([]string, n)
	details := make([]*string, n)
	ordinals := make([]int32, n)
	for i, e := range entries {
		userIDs[i] = e.UserID
		actions[i] = e.Action
		subjects[i] = e.Subject
		details[i] = e.Details
		ordinals[i] = int32(i)
	}

	rows, err := r.pool.Query(ctx,
		`WITH input AS (
			SELECT * FROM UNNEST($1::bigint[], $2::text[], $3::text[], $4::text[], $5::int[])
				AS u (user_id, action, subject, details, ord)
		), inserted AS (
			INSERT INTO activity_log (user_id, action, subject, details)
			SELECT user_id, action, subject, details FROM input ORDER BY ord
			RETURNING id, created_at
		)
		SELECT id, created_at FROM inserted ORDER BY id`,
		userIDs, actions, subjects, details, ordinals,
	)
	if err != nil {
		return mapFKViolation(err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() && i < n {
		var id int64
		var createdAt time.Time
		if err := rows.Scan(&id, &createdAt); err != nil {
			return err
		}
		entries[i].ID = id
		entries[i].CreatedAt = createdAt
		i++
	}
	return mapFKViolation(rows.Err())
}

// ListRecent retrieves the newest entries joined with the user's name.
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]model.ActivityView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT al.id, u.full_name, al.action, al.subject, al.created_at
		 FROM activity_log al
		 JOIN users u ON u.id = al.user_id
		 ORDER BY al.created_at DESC
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ActivityView
	for rows.Next() {
		var v model.ActivityView
		var createdAt time.Time
		if err := rows.Scan(&v.ID, &v.UserName, &v.Action, &v.Subject, &createdAt); err != nil {
			return nil, err
		}
		v.Time = createdAt.Format("2006-01-02 15:04")
		out = append(out, v)
	}
	return out, rows.Err()
}
