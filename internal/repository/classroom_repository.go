package repository

import (
	"context"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClassroomRepository handles classroom data access.
type ClassroomRepository struct {
	pool *pgxpool.Pool
}

// NewClassroomRepository creates a new ClassroomRepository.
func NewClassroomRepository(pool *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{pool: pool}
}

// GetByID retrieves a classroom by its ID.
func (r *ClassroomRepository) GetByID(ctx context.Context, id int) (*model.Classroom, error) {
	c := &model.Classroom{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, school_id, name, grade_level, created_at, updated_at
		 FROM classrooms WHERE id = $1`, id,
	).Scan(&c.ID, &c.SchoolID, &c.Name, &c.GradeLevel, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListBySchool retrieves all classrooms of a school.
func (r *ClassroomRepository) ListBySchool(ctx context.Context, schoolID int) ([]model.Classroom, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, school_id, name, grade_level, created_at, updated_at
		 FROM classrooms WHERE school_id = $1 ORDER BY grade_level, name`, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []model.Classroom
	for rows.Next() {
		var c model.Classroom
		if err := rows.Scan(&c.ID, &c.SchoolID, &c.Name, &c.GradeLevel, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		classrooms = append(classrooms, c)
	}
	return classrooms, rows.Err()
}

// Create inserts a new classroom.
func (r *ClassroomRepository) Create(ctx context.Context, c *model.Classroom) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO classrooms (school_id, name, grade_level)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		c.SchoolID, c.Name, c.GradeLevel,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update modifies an existing classroom.
func (r *ClassroomRepository) Update(ctx context.Context, c *model.Classroom) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE classrooms SET name = $1, grade_level = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3 AND school_id = $4`,
		c.Name, c.GradeLevel, c.ID, c.SchoolID,
	)
	return err
}

// Delete removes a classroom of the given school by ID.
func (r *ClassroomRepository) Delete(ctx context.Context, schoolID, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM classrooms WHERE id = $1 AND school_id = $2`, id, schoolID)
	return err
}
