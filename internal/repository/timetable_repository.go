package repository

import (
	"context"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TimetableRepository handles period/day-schedule data access.
type TimetableRepository struct {
	pool *pgxpool.Pool
}

// NewTimetableRepository creates a new TimetableRepository.
func NewTimetableRepository(pool *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{pool: pool}
}

const periodColumns = `p.id, p.classroom_id, p.day, p.subject_id, p.teacher_id, p.start_min, p.end_min,
	 s.name AS subject_name, t.name AS teacher_name`

// GetWeek retrieves a classroom's full weekly timetable ordered by day and
// start time.
func (r *TimetableRepository) GetWeek(ctx context.Context, classroomID int) ([]model.Period, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+periodColumns+`
		 FROM periods p
		 JOIN subjects s ON s.id = p.subject_id
		 JOIN teachers t ON t.id = p.teacher_id
		 WHERE p.classroom_id = $1
		 ORDER BY p.day, p.start_min`, classroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPeriods(rows)
}

// GetDay retrieves one day's periods for a classroom ordered by start time.
func (r *TimetableRepository) GetDay(ctx context.Context, classroomID int, day model.Day) ([]model.Period, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+periodColumns+`
		 FROM periods p
		 JOIN subjects s ON s.id = p.subject_id
		 JOIN teachers t ON t.id = p.teacher_id
		 WHERE p.classroom_id = $1 AND p.day = $2
		 ORDER BY p.start_min`, classroomID, int(day))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPeriods(rows)
}

// ListByTeacher retrieves every period taught by a teacher across all
// classrooms, ordered by day and start time.
func (r *TimetableRepository) ListByTeacher(ctx context.Context, teacherID int) ([]model.Period, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+periodColumns+`
		 FROM periods p
		 JOIN subjects s ON s.id = p.subject_id
		 JOIN teachers t ON t.id = p.teacher_id
		 WHERE p.teacher_id = $1
		 ORDER BY p.day, p.start_min`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPeriods(rows)
}

// TeacherAssigned reports whether a teacher has at least one timetabled
// period for the given classroom and subject.
func (r *TimetableRepository) TeacherAssigned(ctx context.Context, teacherID, classroomID, subjectID int) (bool, error) {
	var assigned bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			 SELECT 1 FROM periods
			 WHERE teacher_id = $1 AND classroom_id = $2 AND subject_id = $3
		 )`, teacherID, classroomID, subjectID).Scan(&assigned)
	return assigned, err
}

// GetPeriodByID retrieves a single period without joined display fields.
func (r *TimetableRepository) GetPeriodByID(ctx context.Context, id int) (*model.Period, error) {
	p := &model.Period{}
	var day int
	err := r.pool.QueryRow(ctx,
		`SELECT id, classroom_id, day, subject_id, teacher_id, start_min, end_min
		 FROM periods WHERE id = $1`, id,
	).Scan(&p.ID, &p.ClassroomID, &day, &p.SubjectID, &p.TeacherID, &p.Start, &p.End)
	if err != nil {
		return nil, err
	}
	p.Day = model.Day(day)
	return p, nil
}

// ReplaceDay swaps a classroom's entire day atomically: existing periods for
// the day are deleted and the proposed set is inserted in one transaction.
// The caller must have validated the set for overlaps beforehand.
func (r *TimetableRepository) ReplaceDay(ctx context.Context, classroomID int, day model.Day, periods []model.Period) ([]model.Period, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM periods WHERE classroom_id = $1 AND day = $2`,
		classroomID, int(day)); err != nil {
		return nil, err
	}

	inserted := make([]model.Period, 0, len(periods))
	for _, p := range periods {
		p.ClassroomID = classroomID
		p.Day = day
		err := tx.QueryRow(ctx,
			`INSERT INTO periods (classroom_id, day, subject_id, teacher_id, start_min, end_min)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			classroomID, int(day), p.SubjectID, p.TeacherID, int(p.Start), int(p.End),
		).Scan(&p.ID)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, p)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return inserted, nil
}

func scanPeriods(rows pgx.Rows) ([]model.Period, error) {
	var periods []model.Period
	for rows.Next() {
		var p model.Period
		var day int
		if err := rows.Scan(&p.ID, &p.ClassroomID, &day, &p.SubjectID, &p.TeacherID, &p.Start, &p.End, &p.SubjectName, &p.TeacherName); err != nil {
			return nil, err
		}
		p.Day = model.Day(day)
		periods = append(periods, p)
	}
	return periods, rows.Err()
}
