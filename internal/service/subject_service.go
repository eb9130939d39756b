package service

import (
	"context"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// SubjectService handles subject business logic.
type SubjectService struct {
	subjectRepo *repository.SubjectRepository
	log         zerolog.Logger
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjectRepo *repository.SubjectRepository, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		log:         log.With().Str("component", "subject_service").Logger(),
	}
}

// GetScoped retrieves a subject and verifies it belongs to the school.
func (s *SubjectService) GetScoped(ctx context.Context, schoolID, id int) (*model.Subject, error) {
	sub, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.SchoolID != schoolID {
		return nil, pgx.ErrNoRows
	}
	return sub, nil
}

// List retrieves all subjects of a school.
func (s *SubjectService) List(ctx context.Context, schoolID int) ([]model.Subject, error) {
	return s.subjectRepo.ListBySchool(ctx, schoolID)
}

// Create creates a new subject within the school.
func (s *SubjectService) Create(ctx context.Context, subject *model.Subject) error {
	return s.subjectRepo.Create(ctx, subject)
}

// Update modifies an existing subject.
func (s *SubjectService) Update(ctx context.Context, subject *model.Subject) error {
	return s.subjectRepo.Update(ctx, subject)
}

// Delete removes a subject.
func (s *SubjectService) Delete(ctx context.Context, schoolID, id int) error {
	return s.subjectRepo.Delete(ctx, schoolID, id)
}
