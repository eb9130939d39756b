package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/classpoint/classpoint-backend/internal/config"
	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Cached overviews expire after this many missed refresh cycles, so a dead
// worker cannot leave stale numbers on the dashboard forever.
const summaryTTLFactor = 3

// SummaryWorker periodically recomputes each school's attendance overview
// and caches it in Redis so dashboard reads never touch the heavy
// aggregation queries.
type SummaryWorker struct {
	attendanceRepo *repository.AttendanceRepository
	rdb            *redis.Client
	interval       time.Duration
	log            zerolog.Logger
}

// NewSummaryWorker creates a new SummaryWorker.
func NewSummaryWorker(attendanceRepo *repository.AttendanceRepository, rdb *redis.Client, interval time.Duration, log zerolog.Logger) *SummaryWorker {
	return &SummaryWorker{
		attendanceRepo: attendanceRepo,
		rdb:            rdb,
		interval:       interval,
		log:            log.With().Str("component", "summary_worker").Logger(),
	}
}

// Start begins the refresh loop. Call in a goroutine. One refresh runs
// immediately so a fresh deployment does not show an empty dashboard for a
// whole interval.
func (w *SummaryWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	w.refreshAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

// refreshAll recomputes the overview for every registered school. A failure
// for one school is logged and does not block the others.
func (w *SummaryWorker) refreshAll(ctx context.Context) {
	schoolIDs, err := w.attendanceRepo.ListSchoolIDs(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Error().Err(err).Msg("List schools failed")
		}
		return
	}

	for _, schoolID := range schoolIDs {
		if ctx.Err() != nil {
			return
		}
		if err := w.refreshSchool(ctx, schoolID); err != nil {
			w.log.Error().Err(err).Int("school_id", schoolID).Msg("Summary refresh failed")
		}
	}
}

func (w *SummaryWorker) refreshSchool(ctx context.Context, schoolID int) error {
	today := time.Now()

	sessionsToday, err := w.attendanceRepo.SessionsOn(ctx, schoolID, today)
	if err != nil {
		return err
	}

	presenceRate, err := w.attendanceRepo.SchoolPresenceRate(ctx, schoolID)
	if err != nil {
		return err
	}

	overview := model.AttendanceOverview{
		Date:          today.Format("2006-01-02"),
		SessionsToday: sessionsToday,
		PresenceRate:  presenceRate,
		UpdatedAt:     time.Now().UTC(),
	}

	raw, err := json.Marshal(overview)
	if err != nil {
		return err
	}

	key := config.CacheKey.SchoolSummaryKey(schoolID)
	return w.rdb.Set(ctx, key, raw, summaryTTLFactor*w.interval).Err()
}
