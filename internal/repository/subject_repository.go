package repository

import (
	"context"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubjectRepository handles subject data access.
type SubjectRepository struct {
	pool *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository.
func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

// GetByID retrieves a subject by its ID.
func (r *SubjectRepository) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	s := &model.Subject{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, school_id, name, created_at, updated_at
		 FROM subjects WHERE id = $1`, id,
	).Scan(&s.ID, &s.SchoolID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListBySchool retrieves all subjects of a school ordered by name.
func (r *SubjectRepository) ListBySchool(ctx context.Context, schoolID int) ([]model.Subject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, school_id, name, created_at, updated_at
		 FROM subjects WHERE school_id = $1 ORDER BY name`, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.SchoolID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// Create inserts a new subject.
func (r *SubjectRepository) Create(ctx context.Context, s *model.Subject) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO subjects (school_id, name)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		s.SchoolID, s.Name,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing subject.
func (r *SubjectRepository) Update(ctx context.Context, s *model.Subject) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE subjects SET name = $1, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $2 AND school_id = $3`,
		s.Name, s.ID, s.SchoolID,
	)
	return err
}

// Delete removes a subject of the given school by ID.
func (r *SubjectRepository) Delete(ctx context.Context, schoolID, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE id = $1 AND school_id = $2`, id, schoolID)
	return err
}
