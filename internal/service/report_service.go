package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Report sort fields.
const (
	SortByName       = "name"
	SortByRoll       = "roll"
	SortByPresent    = "present"
	SortByPercentage = "percentage"
)

// ReportQuery carries the caller's filtering, sorting and paging choices.
// Page is 1-indexed. All=true means an unbounded page ("all" sentinel).
type ReportQuery struct {
	Search    string
	SortField string
	SortOrder string
	Page      int
	PageSize  int
	All       bool
}

// Normalize clamps paging values and applies defaults. Name ascending is the
// default order.
func (q ReportQuery) Normalize() ReportQuery {
	switch q.SortField {
	case SortByName, SortByRoll, SortByPresent, SortByPercentage:
	default:
		q.SortField = SortByName
	}
	if q.SortOrder != "desc" {
		q.SortOrder = "asc"
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	return q
}

// ReportService computes per-student attendance summaries.
type ReportService struct {
	attendanceRepo *repository.AttendanceRepository
	studentRepo    *repository.StudentRepository
	log            zerolog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(attendanceRepo *repository.AttendanceRepository, studentRepo *repository.StudentRepository, log zerolog.Logger) *ReportService {
	return &ReportService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		log:            log.With().Str("component", "report_service").Logger(),
	}
}

// AttendanceReport assembles one page of the per-student attendance report
// for a subject within a classroom. The session count and the roster are
// independent lookups and are fetched concurrently.
func (s *ReportService) AttendanceReport(ctx context.Context, classroomID, subjectID int, q ReportQuery) (*model.AttendanceReport, error) {
	var (
		wg            sync.WaitGroup
		totalSessions int
		roster        []model.Student
		countErr      error
		rosterErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		totalSessions, countErr = s.attendanceRepo.CountSessions(ctx, classroomID, subjectID)
	}()
	go func() {
		defer wg.Done()
		roster, rosterErr = s.studentRepo.ListByClassroom(ctx, classroomID, "")
	}()
	wg.Wait()

	if countErr != nil {
		return nil, countErr
	}
	if rosterErr != nil {
		return nil, rosterErr
	}

	presentCounts, err := s.attendanceRepo.PresentCounts(ctx, classroomID, subjectID)
	if err != nil {
		return nil, err
	}

	report := BuildReport(roster, presentCounts, totalSessions, q)
	return &report, nil
}

// BuildReport turns a roster plus per-student present counts into a sorted,
// filtered, paginated report. Pure computation.
//
// The shared denominator totalSessions applies to every row; a zero
// denominator yields zero percentages rather than an error. String sorting
// is plain byte-wise comparison, deliberately independent of locale or
// database collation.
func BuildReport(roster []model.Student, presentCounts map[int]int, totalSessions int, q ReportQuery) model.AttendanceReport {
	q = q.Normalize()

	rows := make([]model.AttendanceReportRow, 0, len(roster))
	for _, student := range roster {
		if q.Search != "" && !strings.Contains(strings.ToLower(student.Name), strings.ToLower(q.Search)) {
			continue
		}
		present := presentCounts[student.ID]
		rows = append(rows, model.AttendanceReportRow{
			StudentID:    student.ID,
			Name:         student.Name,
			Roll:         student.Roll,
			PresentCount: present,
			Percentage:   percentage(present, totalSessions),
		})
	}

	sortRows(rows, q.SortField, q.SortOrder)

	totalItems := len(rows)
	if !q.All {
		skip := (q.Page - 1) * q.PageSize
		if skip >= len(rows) {
			rows = []model.AttendanceReportRow{}
		} else {
			end := skip + q.PageSize
			if end > len(rows) {
				end = len(rows)
			}
			rows = rows[skip:end]
		}
	}

	return model.AttendanceReport{
		Rows:         rows,
		TotalItems:   totalItems,
		TotalClasses: totalSessions,
	}
}

// percentage computes round(present/total*100, 2). A zero denominator means
// no sessions were held yet and yields 0, never NaN or Inf.
func percentage(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*10000) / 100
}

func sortRows(rows []model.AttendanceReportRow, field, order string) {
	asc := order != "desc"
	sort.SliceStable(rows, func(i, j int) bool {
		var less bool
		switch field {
		case SortByRoll:
			less = rows[i].Roll < rows[j].Roll
		case SortByPresent:
			less = rows[i].PresentCount < rows[j].PresentCount
		case SortByPercentage:
			less = rows[i].Percentage < rows[j].Percentage
		default:
			less = rows[i].Name < rows[j].Name
		}
		if asc {
			return less
		}
		return !less && !equalField(rows[i], rows[j], field)
	})
}

func equalField(a, b model.AttendanceReportRow, field string) bool {
	switch field {
	case SortByRoll:
		return a.Roll == b.Roll
	case SortByPresent:
		return a.PresentCount == b.PresentCount
	case SortByPercentage:
		return a.Percentage == b.Percentage
	default:
		return a.Name == b.Name
	}
}
