package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/classpoint/classpoint-backend/internal/config"
	"github.com/classpoint/classpoint-backend/internal/middleware"
	"github.com/classpoint/classpoint-backend/internal/model"
	ws "github.com/classpoint/classpoint-backend/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

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

// FeedHandler streams live roll-call events to principals over WebSocket.
type FeedHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *FeedHandler {
	return &FeedHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "feed_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// AttendanceFeed godoc
// WS /ws/v1/attendance/feed?token=...
// Upgrades to WebSocket and relays the school's attendance feed channel.
// Every roll call recorded anywhere in the school appears here as it lands.
func (h *FeedHandler) AttendanceFeed(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	feedLog := h.log.With().Int("school_id", claims.SchoolID).Logger()
	feedLog.Info().Msg("Principal connected to attendance feed")

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	channel := config.CacheKey.AttendanceFeedChannel(claims.SchoolID)
	pubsub := h.rdb.Subscribe(ctx, channel)
	defer pubsub.Close()

	// Writes come from two goroutines (pongs and forwarded events); the
	// connection allows only one writer at a time.
	var writeMu sync.Mutex
	write := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return ws.WriteTyped(conn, v)
	}

	// Reader loop: the client only ever sends pings; anything else is an
	// error. Its exit (client gone) cancels the forwarding loop below.
	go func() {
		defer cancel()
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					feedLog.Warn().Err(err).Msg("Unexpected close")
				} else {
					feedLog.Debug().Msg("Connection closed")
				}
				return
			}

			switch msg.Action {
			case ws.ActionPing:
				if err := write(ws.PongResponse{Event: ws.EventPong}); err != nil {
					return
				}
			default:
				feedLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
				if err := write(ws.ErrorResponse{Event: ws.EventError, Error: "unknown action: " + string(msg.Action)}); err != nil {
					return
				}
			}
		}
	}()

	events := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-events:
			if !ok {
				return
			}

			var event model.FeedEvent
			if err := json.Unmarshal([]byte(raw.Payload), &event); err != nil {
				feedLog.Warn().Err(err).Msg("Malformed feed payload")
				continue
			}

			if err := write(ws.AttendanceEvent{
				Event:   ws.EventAttendance,
				Payload: event,
			}); err != nil {
				feedLog.Debug().Err(err).Msg("Feed write failed, closing")
				return
			}
		}
	}
}
