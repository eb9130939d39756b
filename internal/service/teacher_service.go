package service

import (
	"context"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
)

// TeacherService handles teacher account business logic.
type TeacherService struct {
	teacherRepo *repository.TeacherRepository
	authService *AuthService
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teacherRepo *repository.TeacherRepository, authService *AuthService) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo, authService: authService}
}

// GetByID retrieves a teacher by ID.
func (s *TeacherService) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a teacher by their email.
func (s *TeacherService) GetByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	return s.teacherRepo.GetByEmail(ctx, email)
}

// List retrieves all teachers of a school.
func (s *TeacherService) List(ctx context.Context, schoolID int) ([]model.Teacher, error) {
	return s.teacherRepo.ListBySchool(ctx, schoolID)
}

// Create inserts a new teacher with a hashed password.
func (s *TeacherService) Create(ctx context.Context, teacher *model.Teacher, password string) error {
	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return err
	}
	teacher.PasswordHash = hash
	return s.teacherRepo.Create(ctx, teacher)
}

// Update modifies a teacher's details. Updates the password only if provided.
func (s *TeacherService) Update(ctx context.Context, teacher *model.Teacher, password string) error {
	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return err
	}

	if password != "" {
		hash, err := s.authService.HashPassword(password)
		if err != nil {
			return err
		}
		return s.teacherRepo.UpdatePassword(ctx, teacher.ID, hash)
	}

	return nil
}

// Delete removes a teacher.
func (s *TeacherService) Delete(ctx context.Context, schoolID, id int) error {
	return s.teacherRepo.Delete(ctx, schoolID, id)
}
