package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDuplicateRoll = errors.New("a student with this roll already exists in the classroom")

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, school_id, classroom_id, name, roll, created_at, updated_at
		 FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.SchoolID, &s.ClassroomID, &s.Name, &s.Roll, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListPaginated retrieves students of a school with pagination, optional
// classroom filter and optional case-insensitive name search.
func (r *StudentRepository) ListPaginated(ctx context.Context, schoolID int, classroomID *int, search string, limit, offset int) ([]model.Student, int, error) {
	where := ` WHERE school_id = $1`
	args := []interface{}{schoolID}

	if classroomID != nil {
		args = append(args, *classroomID)
		where += ` AND classroom_id = $` + strconv.Itoa(len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		where += ` AND name ILIKE $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, school_id, classroom_id, name, roll, created_at, updated_at FROM students` + where +
		` ORDER BY name LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.SchoolID, &s.ClassroomID, &s.Name, &s.Roll, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// ListByClassroom retrieves the roster of a classroom, optionally filtered by
// a case-insensitive name substring.
func (r *StudentRepository) ListByClassroom(ctx context.Context, classroomID int, search string) ([]model.Student, error) {
	query := `SELECT id, school_id, classroom_id, name, roll, created_at, updated_at
	          FROM students WHERE classroom_id = $1`
	args := []interface{}{classroomID}
	if search != "" {
		query += ` AND name ILIKE $2`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.SchoolID, &s.ClassroomID, &s.Name, &s.Roll, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// CountInClassroom returns how many of the given student IDs belong to the
// classroom. Used to validate roll-call submissions.
func (r *StudentRepository) CountInClassroom(ctx context.Context, classroomID int, studentIDs []int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE classroom_id = $1 AND id = ANY($2)`,
		classroomID, studentIDs,
	).Scan(&count)
	return count, err
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (school_id, classroom_id, name, roll)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		s.SchoolID, s.ClassroomID, s.Name, s.Roll,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateRoll
		}
		return err
	}
	return nil
}

// Update modifies a student's details.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students SET classroom_id = $1, name = $2, roll = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4 AND school_id = $5`,
		s.ClassroomID, s.Name, s.Roll, s.ID, s.SchoolID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateRoll
		}
		return err
	}
	return nil
}

// Delete removes a student of the given school by ID.
func (r *StudentRepository) Delete(ctx context.Context, schoolID, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1 AND school_id = $2`, id, schoolID)
	return err
}
