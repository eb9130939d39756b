package repository

import (
	"context"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SchoolRepository handles school (tenant) data access.
type SchoolRepository struct {
	pool *pgxpool.Pool
}

// NewSchoolRepository creates a new SchoolRepository.
func NewSchoolRepository(pool *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{pool: pool}
}

// GetByID retrieves a school by its ID.
func (r *SchoolRepository) GetByID(ctx context.Context, id int) (*model.School, error) {
	s := &model.School{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, address, created_at, updated_at
		 FROM schools WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Register creates a school and its principal account in a single
// transaction. The principal's PasswordHash must already be hashed.
func (r *SchoolRepository) Register(ctx context.Context, school *model.School, principal *model.Principal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO schools (name, address)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		school.Name, school.Address,
	).Scan(&school.ID, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		return err
	}

	principal.SchoolID = school.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO principals (school_id, name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		principal.SchoolID, principal.Name, principal.Email, principal.PasswordHash,
	).Scan(&principal.ID, &principal.CreatedAt, &principal.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
