package service

import (
	"context"
	"errors"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// ErrNotInSchool is returned when a record exists but belongs to another
// tenant. Callers surface it as not-found to avoid leaking cross-tenant data.
var ErrNotInSchool = errors.New("record belongs to a different school")

// ClassroomService handles classroom business logic.
type ClassroomService struct {
	classroomRepo *repository.ClassroomRepository
}

// NewClassroomService creates a new ClassroomService.
func NewClassroomService(classroomRepo *repository.ClassroomRepository) *ClassroomService {
	return &ClassroomService{classroomRepo: classroomRepo}
}

// GetScoped retrieves a classroom and verifies it belongs to the school.
func (s *ClassroomService) GetScoped(ctx context.Context, schoolID, id int) (*model.Classroom, error) {
	c, err := s.classroomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.SchoolID != schoolID {
		return nil, pgx.ErrNoRows
	}
	return c, nil
}

// List retrieves all classrooms of a school.
func (s *ClassroomService) List(ctx context.Context, schoolID int) ([]model.Classroom, error) {
	return s.classroomRepo.ListBySchool(ctx, schoolID)
}

// Create creates a new classroom within the school.
func (s *ClassroomService) Create(ctx context.Context, classroom *model.Classroom) error {
	return s.classroomRepo.Create(ctx, classroom)
}

// Update modifies an existing classroom.
func (s *ClassroomService) Update(ctx context.Context, classroom *model.Classroom) error {
	return s.classroomRepo.Update(ctx, classroom)
}

// Delete removes a classroom. Foreign keys on students/periods prevent
// deletion while dependents exist; the handler maps that error.
func (s *ClassroomService) Delete(ctx context.Context, schoolID, id int) error {
	return s.classroomRepo.Delete(ctx, schoolID, id)
}
