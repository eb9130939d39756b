package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/classpoint/classpoint-backend/internal/middleware"
	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/classpoint/classpoint-backend/internal/response"
	"github.com/classpoint/classpoint-backend/internal/service"
	"github.com/classpoint/classpoint-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// TeacherManagementHandler handles principal-facing teacher account CRUD.
type TeacherManagementHandler struct {
	teacherService *service.TeacherService
}

// NewTeacherManagementHandler creates a new TeacherManagementHandler.
func NewTeacherManagementHandler(teacherService *service.TeacherService) *TeacherManagementHandler {
	return &TeacherManagementHandler{teacherService: teacherService}
}

// ListTeachers godoc
// GET /api/v1/admin/teachers
// Lists all teachers of the principal's school.
func (h *TeacherManagementHandler) ListTeachers(c *gin.Context) {
	claims := middleware.GetClaims(c)

	teachers, err := h.teacherService.List(c.Request.Context(), claims.SchoolID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"teachers": teachers})
}

// CreateTeacher godoc
// POST /api/v1/admin/teachers
// Creates a new teacher account in the principal's school.
func (h *TeacherManagementHandler) CreateTeacher(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher := &model.Teacher{
		SchoolID: claims.SchoolID,
		Name:     req.Name,
		Email:    req.Email,
	}

	if err := h.teacherService.Create(c.Request.Context(), teacher, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"teacher": teacher})
}

// UpdateTeacher godoc
// PUT /api/v1/admin/teachers/:id
// Updates a teacher's details. Password is changed only when provided.
func (h *TeacherManagementHandler) UpdateTeacher(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	existing, err := h.teacherService.GetByID(c.Request.Context(), id)
	if err != nil || existing.SchoolID != claims.SchoolID {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	existing.Name = req.Name
	existing.Email = req.Email

	if err := h.teacherService.Update(c.Request.Context(), existing, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"teacher": existing})
}

// DeleteTeacher godoc
// DELETE /api/v1/admin/teachers/:id
// Deletes a teacher account. Fails while periods or sessions reference it.
func (h *TeacherManagementHandler) DeleteTeacher(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.teacherService.Delete(c.Request.Context(), claims.SchoolID, id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "teacher deleted successfully"})
}
