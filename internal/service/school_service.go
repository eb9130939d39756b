package service

import (
	"context"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
)

// SchoolService handles school registration and principal lookup.
type SchoolService struct {
	schoolRepo    *repository.SchoolRepository
	principalRepo *repository.PrincipalRepository
	authService   *AuthService
}

// NewSchoolService creates a new SchoolService.
func NewSchoolService(schoolRepo *repository.SchoolRepository, principalRepo *repository.PrincipalRepository, authService *AuthService) *SchoolService {
	return &SchoolService{schoolRepo: schoolRepo, principalRepo: principalRepo, authService: authService}
}

// GetByID retrieves a school by its ID.
func (s *SchoolService) GetByID(ctx context.Context, id int) (*model.School, error) {
	return s.schoolRepo.GetByID(ctx, id)
}

// GetPrincipalByEmail retrieves a principal by their email.
func (s *SchoolService) GetPrincipalByEmail(ctx context.Context, email string) (*model.Principal, error) {
	return s.principalRepo.GetByEmail(ctx, email)
}

// GetPrincipalByID retrieves a principal by ID.
func (s *SchoolService) GetPrincipalByID(ctx context.Context, id int) (*model.Principal, error) {
	return s.principalRepo.GetByID(ctx, id)
}

// Register creates a school together with its principal account in one
// transaction. Returns both freshly persisted records.
func (s *SchoolService) Register(ctx context.Context, req *model.RegisterSchoolRequest) (*model.School, *model.Principal, error) {
	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	school := &model.School{
		Name:    req.SchoolName,
		Address: req.SchoolAddress,
	}
	principal := &model.Principal{
		Name:         req.PrincipalName,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.schoolRepo.Register(ctx, school, principal); err != nil {
		return nil, nil, err
	}
	return school, principal, nil
}
