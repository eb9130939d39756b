package handler

import (
	"errors"
	"net/http"

	"github.com/classpoint/classpoint-backend/internal/middleware"
	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/response"
	"github.com/classpoint/classpoint-backend/internal/service"
	"github.com/classpoint/classpoint-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// AuthHandler handles registration, login and profile endpoints.
type AuthHandler struct {
	authService    *service.AuthService
	schoolService  *service.SchoolService
	teacherService *service.TeacherService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authService *service.AuthService,
	schoolService *service.SchoolService,
	teacherService *service.TeacherService,
) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		schoolService:  schoolService,
		teacherService: teacherService,
	}
}

// Register godoc
// POST /api/v1/auth/register
// Creates a new school with its principal account and returns a token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterSchoolRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	school, principal, err := h.schoolService.Register(c.Request.Context(), &req)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	token, err := h.authService.GenerateToken(service.TokenTypePrincipal, principal.ID, school.ID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, model.PrincipalLoginResponse{
		Token:     token,
		Principal: *principal,
		School:    *school,
	})
}

// PrincipalLogin godoc
// POST /api/v1/auth/principal/login
// Validates email + password against principal accounts, returns JWT.
func (h *AuthHandler) PrincipalLogin(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	principal, err := h.schoolService.GetPrincipalByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// Same response as a wrong password so emails cannot be probed.
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(principal.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	school, err := h.schoolService.GetByID(c.Request.Context(), principal.SchoolID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	token, err := h.authService.GenerateToken(service.TokenTypePrincipal, principal.ID, principal.SchoolID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.PrincipalLoginResponse{
		Token:     token,
		Principal: *principal,
		School:    *school,
	})
}

// TeacherLogin godoc
// POST /api/v1/auth/teacher/login
// Validates email + password against teacher accounts, returns JWT.
func (h *AuthHandler) TeacherLogin(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher, err := h.teacherService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(teacher.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateToken(service.TokenTypeTeacher, teacher.ID, teacher.SchoolID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.TeacherLoginResponse{
		Token:   token,
		Teacher: *teacher,
	})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the profile behind the presented token, principal or teacher.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	switch claims.TokenType {
	case service.TokenTypePrincipal:
		principal, err := h.schoolService.GetPrincipalByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Success(c, http.StatusOK, gin.H{
			"role":      string(service.TokenTypePrincipal),
			"principal": principal,
		})
	case service.TokenTypeTeacher:
		teacher, err := h.teacherService.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Success(c, http.StatusOK, gin.H{
			"role":    string(service.TokenTypeTeacher),
			"teacher": teacher,
		})
	default:
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
	}
}
