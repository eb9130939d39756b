package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/classpoint/classpoint-backend/internal/config"
	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DashboardData is the principal dashboard payload.
type DashboardData struct {
	TotalStudents   int                       `json:"total_students"`
	TotalTeachers   int                       `json:"total_teachers"`
	TotalClassrooms int                       `json:"total_classrooms"`
	TotalSubjects   int                       `json:"total_subjects"`
	Attendance      *model.AttendanceOverview `json:"attendance,omitempty"`
}

// DashboardService aggregates dashboard data for a school.
type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
	rdb           *redis.Client
	log           zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashboardRepo *repository.DashboardRepository, rdb *redis.Client, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		rdb:           rdb,
		log:           log.With().Str("component", "dashboard_service").Logger(),
	}
}

// GetDashboard retrieves entity counts plus the attendance overview that the
// summary worker maintains in Redis. A missing overview is not an error; the
// worker simply has not run yet.
func (s *DashboardService) GetDashboard(ctx context.Context, schoolID int) (*DashboardData, error) {
	students, teachers, classrooms, subjects, err := s.dashboardRepo.GetSummaryCounts(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	data := &DashboardData{
		TotalStudents:   students,
		TotalTeachers:   teachers,
		TotalClassrooms: classrooms,
		TotalSubjects:   subjects,
	}

	raw, err := s.rdb.Get(ctx, config.CacheKey.SchoolSummaryKey(schoolID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Int("school_id", schoolID).Msg("summary cache read failed")
		}
		return data, nil
	}

	var overview model.AttendanceOverview
	if err := json.Unmarshal([]byte(raw), &overview); err != nil {
		s.log.Warn().Err(err).Int("school_id", schoolID).Msg("corrupt summary cache entry")
		return data, nil
	}
	data.Attendance = &overview

	return data, nil
}
