package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/config"
	"github.com/stemsi/safetrain-backend/internal/service"
	ws "github.com/stemsi/safetrain-backend/internal/websocket"
)

const snapshotTimeout = 5 * time.Second

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams the live activity feed over WebSocket.
type WSHandler struct {
	rdb             *redis.Client
	activityService *service.ActivityService
	log             zerolog.Logger
	upgrader        websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, activityService *service.ActivityService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:             rdb,
		activityService: activityService,
		log:             log.With().Str("component", "ws_handler").Logger(),
		upgrader:        buildUpgrader(allowedOrigins),
	}
}

// ActivityStream godoc
// WS /ws/v1/activity/stream
// Sends a snapshot of recent entries, then every newly persisted entry.
func (h *WSHandler) ActivityStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Subscribe before the snapshot so no entry falls between the two.
	pubsub := h.rdb.Subscribe(ctx, config.CacheKey.ActivityFeedChannel())
	defer pubsub.Close()
	feed := pubsub.Channel()

	snapCtx, snapCancel := context.WithTimeout(ctx, snapshotTimeout)
	entries, err := h.activityService.ListRecent(snapCtx, 0)
	snapCancel()
	if err != nil {
		h.log.Warn().Err(err).Msg("Activity snapshot failed")
		ws.WriteError(conn, "activity snapshot unavailable")
	} else if err := ws.WriteTyped(conn, ws.SnapshotResponse{Event: ws.EventSnapshot, Entries: entries}); err != nil {
		return
	}

	h.log.Debug().Str("remote", c.ClientIP()).Msg("Activity stream attached")

	// The reader goroutine owns reads; all writes happen in the loop below.
	pongs := make(chan struct{}, 1)
	go h.readLoop(conn, cancel, pongs)

	ping := time.NewTicker(ws.PingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Debug().Str("remote", c.ClientIP()).Msg("Activity stream detached")
			return

		case msg, ok := <-feed:
			if !ok {
				return
			}
			err := ws.WriteTyped(conn, ws.ActivityResponse{
				Event: ws.EventActivity,
				Entry: []byte(msg.Payload),
			})
			if err != nil {
				return
			}

		case <-pongs:
			if err := ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong}); err != nil {
				return
			}

		case <-ping.C:
			if err := ws.WritePing(conn); err != nil {
				return
			}
		}
	}
}

// readLoop handles client pings and detects disconnects.
func (h *WSHandler) readLoop(conn *websocket.Conn, cancel context.CancelFunc, pongs chan<- struct{}) {
	defer cancel()
	ws.KeepAlive(conn)

	for {
		var msg ws.RequestEnvelope
		if err := ws.ReadJSON(conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Msg("Unexpected close")
			}
			return
		}

		if msg.Action == ws.ActionPing {
			select {
			case pongs <- struct{}{}:
			default:
			}
		}
	}
}
