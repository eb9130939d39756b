package repository

import (
	"context"
	"errors"
	"time"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateSession is returned when attendance has already been taken for
// the same (classroom, subject, period, date).
var ErrDuplicateSession = errors.New("attendance already taken for this period and date")

// AttendanceRepository handles attendance session and mark data access.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// CreateSession persists a roll-call session together with all of its marks
// in a single transaction. Nothing is written if any insert fails.
func (r *AttendanceRepository) CreateSession(ctx context.Context, session *model.AttendanceSession, marks []model.AttendanceMark) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	session.ID = uuid.New()
	err = tx.QueryRow(ctx,
		`INSERT INTO attendance_sessions (id, school_id, classroom_id, subject_id, teacher_id, period_id, taken_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		session.ID, session.SchoolID, session.ClassroomID, session.SubjectID,
		session.TeacherID, session.PeriodID, session.TakenOn,
	).Scan(&session.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSession
		}
		return err
	}

	copyRows := make([][]interface{}, 0, len(marks))
	for _, m := range marks {
		copyRows = append(copyRows, []interface{}{session.ID, m.StudentID, int(m.Status)})
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"attendance_marks"},
		[]string{"session_id", "student_id", "status"},
		pgx.CopyFromRows(copyRows),
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// CountSessions returns how many sessions were held for a subject within a
// classroom. This is the report denominator.
func (r *AttendanceRepository) CountSessions(ctx context.Context, classroomID, subjectID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance_sessions
		 WHERE classroom_id = $1 AND subject_id = $2`,
		classroomID, subjectID,
	).Scan(&count)
	return count, err
}

// PresentCounts returns, per student of the classroom, the number of present
// marks within the scope's sessions. Students with no marks are absent from
// the map and count as zero.
func (r *AttendanceRepository) PresentCounts(ctx context.Context, classroomID, subjectID int) (map[int]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT m.student_id, COUNT(*)
		 FROM attendance_marks m
		 JOIN attendance_sessions s ON s.id = m.session_id
		 WHERE s.classroom_id = $1 AND s.subject_id = $2 AND m.status = 1
		 GROUP BY m.student_id`,
		classroomID, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var studentID, count int
		if err := rows.Scan(&studentID, &count); err != nil {
			return nil, err
		}
		counts[studentID] = count
	}
	return counts, rows.Err()
}

// SessionsOn counts the sessions a school held on a given date.
func (r *AttendanceRepository) SessionsOn(ctx context.Context, schoolID int, day time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance_sessions WHERE school_id = $1 AND taken_on = $2`,
		schoolID, day,
	).Scan(&count)
	return count, err
}

// SchoolPresenceRate computes the school-wide share of present marks across
// all sessions, as a ratio in [0, 1]. Returns 0 with no error when the school
// has no marks at all.
func (r *AttendanceRepository) SchoolPresenceRate(ctx context.Context, schoolID int) (float64, error) {
	var present, total int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(CASE WHEN m.status = 1 THEN 1 ELSE 0 END), 0), COUNT(m.status)
		 FROM attendance_marks m
		 JOIN attendance_sessions s ON s.id = m.session_id
		 WHERE s.school_id = $1`,
		schoolID,
	).Scan(&present, &total)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return float64(present) / float64(total), nil
}

// ListSchoolIDs returns the IDs of every registered school. Used by the
// summary worker to iterate tenants.
func (r *AttendanceRepository) ListSchoolIDs(ctx context.Context) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM schools ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
