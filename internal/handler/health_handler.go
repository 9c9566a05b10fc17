package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stemsi/safetrain-backend/internal/config"
	"github.com/stemsi/safetrain-backend/internal/response"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports process and dependency health.
type HealthHandler struct {
	pool      *pgxpool.Pool
	rdb       *redis.Client
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{pool: pool, rdb: rdb, startTime: time.Now()}
}

type healthStatus struct {
	Status        string `json:"status"`
	Postgres      string `json:"postgres"`
	Redis         string `json:"redis"`
	ActivityQueue int64  `json:"activity_queue"`
	Goroutines    int    `json:"goroutines"`
	Uptime        string `json:"uptime"`
}

// Health godoc
// GET /health
// Returns 503 when PostgreSQL or Redis does not answer.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	st := healthStatus{
		Status:     "ok",
		Postgres:   "ok",
		Redis:      "ok",
		Goroutines: runtime.NumGoroutine(),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}

	if err := h.pool.Ping(ctx); err != nil {
		st.Status, st.Postgres = "degraded", err.Error()
	}
	if n, err := h.rdb.LLen(ctx, config.WorkerKey.PersistActivityQueue).Result(); err != nil {
		st.Status, st.Redis = "degraded", err.Error()
	} else {
		st.ActivityQueue = n
	}

	code := http.StatusOK
	if st.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	response.Success(c, code, st)
}
