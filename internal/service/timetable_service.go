package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/classpoint/classpoint-backend/internal/config"
	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// timetableCacheTTL bounds staleness if an invalidation is ever missed.
const timetableCacheTTL = 12 * time.Hour

// ErrScheduleConflict is returned when two or more proposed periods overlap
// in time. The whole day is rejected; nothing is written.
type ErrScheduleConflict struct {
	Day model.Day
}

func (e *ErrScheduleConflict) Error() string {
	return fmt.Sprintf("schedule conflict on %s: periods overlap", e.Day)
}

// ErrInvalidPeriod is returned when a proposed period's boundaries are
// malformed (bad clock string, or start not before end).
var ErrInvalidPeriod = errors.New("period start time must be before end time")

// TimetableService handles weekly timetable reads and validated day writes.
type TimetableService struct {
	timetableRepo *repository.TimetableRepository
	rdb           *redis.Client
	log           zerolog.Logger
}

// NewTimetableService creates a new TimetableService.
func NewTimetableService(timetableRepo *repository.TimetableRepository, rdb *redis.Client, log zerolog.Logger) *TimetableService {
	return &TimetableService{
		timetableRepo: timetableRepo,
		rdb:           rdb,
		log:           log.With().Str("component", "timetable_service").Logger(),
	}
}

// HasConflict reports whether any two periods in the set overlap in time.
//
// The input order is irrelevant: the set is sorted by start time internally.
// Two periods sharing a start instant always conflict. A period ending
// exactly when the next one starts does not (back-to-back periods are
// legal), which is why the comparison below is strict.
func HasConflict(periods []model.Period) bool {
	if len(periods) < 2 {
		return false
	}

	sorted := make([]model.Period, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].End > sorted[i].Start {
			return true
		}
	}
	return false
}

// GetWeek retrieves a classroom's full weekly timetable grouped by day.
// Reads go through a Redis cache that day writes invalidate.
func (s *TimetableService) GetWeek(ctx context.Context, classroomID int) ([]model.DaySchedule, error) {
	cacheKey := config.CacheKey.TimetableKey(classroomID)

	if raw, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var week []model.DaySchedule
		if err := json.Unmarshal([]byte(raw), &week); err == nil {
			return week, nil
		}
		// Corrupt cache entry: fall through to the database.
		s.rdb.Del(ctx, cacheKey)
	}

	periods, err := s.timetableRepo.GetWeek(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	week := groupByDay(periods)

	if raw, err := json.Marshal(week); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, raw, timetableCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Int("classroom_id", classroomID).Msg("timetable cache write failed")
		}
	}

	return week, nil
}

// GetDay retrieves one day's schedule for a classroom.
func (s *TimetableService) GetDay(ctx context.Context, classroomID int, day model.Day) (*model.DaySchedule, error) {
	periods, err := s.timetableRepo.GetDay(ctx, classroomID, day)
	if err != nil {
		return nil, err
	}
	if periods == nil {
		periods = []model.Period{}
	}
	return &model.DaySchedule{Day: day, Periods: periods}, nil
}

// ListByTeacher retrieves a teacher's own periods grouped by day.
func (s *TimetableService) ListByTeacher(ctx context.Context, teacherID int) ([]model.DaySchedule, error) {
	periods, err := s.timetableRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	return groupByDay(periods), nil
}

// TeacherAssigned reports whether a teacher has any timetabled period for
// the classroom/subject pair.
func (s *TimetableService) TeacherAssigned(ctx context.Context, teacherID, classroomID, subjectID int) (bool, error) {
	return s.timetableRepo.TeacherAssigned(ctx, teacherID, classroomID, subjectID)
}

// GetPeriod retrieves a single period by ID.
func (s *TimetableService) GetPeriod(ctx context.Context, id int) (*model.Period, error) {
	return s.timetableRepo.GetPeriodByID(ctx, id)
}

// ReplaceDay validates and swaps a classroom's entire day wholesale. The
// proposed set is parsed into typed periods, checked for overlaps, and only
// then persisted atomically. On conflict nothing is written and the caller
// receives an *ErrScheduleConflict naming the day.
func (s *TimetableService) ReplaceDay(ctx context.Context, classroomID int, day model.Day, inputs []model.PeriodInput) ([]model.Period, error) {
	periods := make([]model.Period, 0, len(inputs))
	for _, in := range inputs {
		start, err := model.ParseTimeOfDay(in.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := model.ParseTimeOfDay(in.EndTime)
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, ErrInvalidPeriod
		}
		periods = append(periods, model.Period{
			ClassroomID: classroomID,
			Day:         day,
			SubjectID:   in.SubjectID,
			TeacherID:   in.TeacherID,
			Start:       start,
			End:         end,
		})
	}

	if HasConflict(periods) {
		return nil, &ErrScheduleConflict{Day: day}
	}

	inserted, err := s.timetableRepo.ReplaceDay(ctx, classroomID, day, periods)
	if err != nil {
		return nil, err
	}

	if err := s.rdb.Del(ctx, config.CacheKey.TimetableKey(classroomID)).Err(); err != nil {
		s.log.Warn().Err(err).Int("classroom_id", classroomID).Msg("timetable cache invalidation failed")
	}

	return inserted, nil
}

// groupByDay buckets an ordered period list into per-day schedules. Days
// without periods are omitted.
func groupByDay(periods []model.Period) []model.DaySchedule {
	week := make([]model.DaySchedule, 0, 7)
	for day := model.DayMonday; day <= model.DaySunday; day++ {
		var ps []model.Period
		for _, p := range periods {
			if p.Day == day {
				ps = append(ps, p)
			}
		}
		if len(ps) > 0 {
			week = append(week, model.DaySchedule{Day: day, Periods: ps})
		}
	}
	return week
}
