package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository handles principal dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSummaryCounts retrieves the high-level entity counts for a school.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context, schoolID int) (totalStudents, totalTeachers, totalClassrooms, totalSubjects int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM students WHERE school_id = $1),
			(SELECT COUNT(*) FROM teachers WHERE school_id = $1),
			(SELECT COUNT(*) FROM classrooms WHERE school_id = $1),
			(SELECT COUNT(*) FROM subjects WHERE school_id = $1)`,
		schoolID,
	).Scan(&totalStudents, &totalTeachers, &totalClassrooms, &totalSubjects)
	return
}
