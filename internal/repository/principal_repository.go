package repository

import (
	"context"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PrincipalRepository handles principal account data access.
type PrincipalRepository struct {
	pool *pgxpool.Pool
}

// NewPrincipalRepository creates a new PrincipalRepository.
func NewPrincipalRepository(pool *pgxpool.Pool) *PrincipalRepository {
	return &PrincipalRepository{pool: pool}
}

// GetByID retrieves a principal by ID.
func (r *PrincipalRepository) GetByID(ctx context.Context, id int) (*model.Principal, error) {
	p := &model.Principal{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, school_id, name, email, password_hash, created_at, updated_at
		 FROM principals WHERE id = $1`, id,
	).Scan(&p.ID, &p.SchoolID, &p.Name, &p.Email, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByEmail retrieves a principal by their unique email.
func (r *PrincipalRepository) GetByEmail(ctx context.Context, email string) (*model.Principal, error) {
	p := &model.Principal{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, school_id, name, email, password_hash, created_at, updated_at
		 FROM principals WHERE email = $1`, email,
	).Scan(&p.ID, &p.SchoolID, &p.Name, &p.Email, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}
