package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/classpoint/classpoint-backend/internal/config"
	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Roll-call validation errors.
var (
	ErrStudentNotInClassroom = errors.New("one or more marked students do not belong to the classroom")
	ErrDuplicateMark         = errors.New("the same student appears more than once in the roll call")
	ErrPeriodMismatch        = errors.New("the period does not match the classroom and subject of the roll call")
	ErrNotOwnPeriod          = errors.New("the period is assigned to a different teacher")
	ErrInvalidMarkStatus     = errors.New("mark status must be 0 (absent) or 1 (present)")
)

// AttendanceService handles roll-call recording.
type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
	studentRepo    *repository.StudentRepository
	timetableRepo  *repository.TimetableRepository
	classroomRepo  *repository.ClassroomRepository
	subjectRepo    *repository.SubjectRepository
	teacherRepo    *repository.TeacherRepository
	rdb            *redis.Client
	log            zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	studentRepo *repository.StudentRepository,
	timetableRepo *repository.TimetableRepository,
	classroomRepo *repository.ClassroomRepository,
	subjectRepo *repository.SubjectRepository,
	teacherRepo *repository.TeacherRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		timetableRepo:  timetableRepo,
		classroomRepo:  classroomRepo,
		subjectRepo:    subjectRepo,
		teacherRepo:    teacherRepo,
		rdb:            rdb,
		log:            log.With().Str("component", "attendance_service").Logger(),
	}
}

// Record validates and persists a full roll call as one unit. The session and
// all of its marks are written in a single transaction; if any mark is
// invalid nothing is persisted. On success an event is published on the
// school's live feed channel.
func (s *AttendanceService) Record(ctx context.Context, schoolID, teacherID int, req *model.RecordAttendanceRequest) (*model.AttendanceSession, error) {
	takenOn, err := time.Parse("2006-01-02", req.TakenOn)
	if err != nil {
		return nil, err
	}

	period, err := s.timetableRepo.GetPeriodByID(ctx, req.PeriodID)
	if err != nil {
		return nil, err
	}
	if period.ClassroomID != req.ClassroomID || period.SubjectID != req.SubjectID {
		return nil, ErrPeriodMismatch
	}
	if period.TeacherID != teacherID {
		return nil, ErrNotOwnPeriod
	}

	classroom, err := s.classroomRepo.GetByID(ctx, req.ClassroomID)
	if err != nil {
		return nil, err
	}
	if classroom.SchoolID != schoolID {
		return nil, ErrNotInSchool
	}

	seen := make(map[int]struct{}, len(req.Marks))
	studentIDs := make([]int, 0, len(req.Marks))
	marks := make([]model.AttendanceMark, 0, len(req.Marks))
	for _, m := range req.Marks {
		if !m.Status.Valid() {
			return nil, ErrInvalidMarkStatus
		}
		if _, dup := seen[m.StudentID]; dup {
			return nil, ErrDuplicateMark
		}
		seen[m.StudentID] = struct{}{}
		studentIDs = append(studentIDs, m.StudentID)
		marks = append(marks, model.AttendanceMark{StudentID: m.StudentID, Status: m.Status})
	}

	inClass, err := s.studentRepo.CountInClassroom(ctx, req.ClassroomID, studentIDs)
	if err != nil {
		return nil, err
	}
	if inClass != len(studentIDs) {
		return nil, ErrStudentNotInClassroom
	}

	session := &model.AttendanceSession{
		SchoolID:    schoolID,
		ClassroomID: req.ClassroomID,
		SubjectID:   req.SubjectID,
		TeacherID:   teacherID,
		PeriodID:    req.PeriodID,
		TakenOn:     takenOn,
	}

	if err := s.attendanceRepo.CreateSession(ctx, session, marks); err != nil {
		return nil, err
	}

	s.publishFeedEvent(ctx, session, marks)

	return session, nil
}

// publishFeedEvent pushes a live-feed event for the new session. Best-effort:
// a publish failure is logged, never surfaced to the roll-call caller.
func (s *AttendanceService) publishFeedEvent(ctx context.Context, session *model.AttendanceSession, marks []model.AttendanceMark) {
	present := 0
	for _, m := range marks {
		if m.Status == model.MarkPresent {
			present++
		}
	}

	event := model.FeedEvent{
		SessionID:    session.ID,
		ClassroomID:  session.ClassroomID,
		SubjectID:    session.SubjectID,
		TeacherID:    session.TeacherID,
		TakenOn:      session.TakenOn.Format("2006-01-02"),
		PresentCount: present,
		TotalMarks:   len(marks),
		RecordedAt:   session.CreatedAt,
	}

	// Display names are decoration for the feed; skip them on lookup errors.
	if classroom, err := s.classroomRepo.GetByID(ctx, session.ClassroomID); err == nil {
		event.ClassroomName = classroom.Name
	}
	if subject, err := s.subjectRepo.GetByID(ctx, session.SubjectID); err == nil {
		event.SubjectName = subject.Name
	}
	if teacher, err := s.teacherRepo.GetByID(ctx, session.TeacherID); err == nil {
		event.TeacherName = teacher.Name
	}

	raw, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Msg("marshal feed event")
		return
	}

	channel := config.CacheKey.AttendanceFeedChannel(session.SchoolID)
	if err := s.rdb.Publish(ctx, channel, raw).Err(); err != nil {
		s.log.Warn().Err(err).Str("channel", channel).Msg("feed publish failed")
	}
}
