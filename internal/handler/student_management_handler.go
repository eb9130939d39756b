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

// StudentManagementHandler handles principal-facing student enrollment CRUD.
type StudentManagementHandler struct {
	studentService   *service.StudentService
	classroomService *service.ClassroomService
}

// NewStudentManagementHandler creates a new StudentManagementHandler.
func NewStudentManagementHandler(studentService *service.StudentService, classroomService *service.ClassroomService) *StudentManagementHandler {
	return &StudentManagementHandler{
		studentService:   studentService,
		classroomService: classroomService,
	}
}

// ListStudents godoc
// GET /api/v1/admin/students?page=&per_page=&class=&search=
// Lists students of the school, paginated, optionally filtered by classroom
// and by a case-insensitive name search.
func (h *StudentManagementHandler) ListStudents(c *gin.Context) {
	claims := middleware.GetClaims(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	search := c.Query("search")

	var classroomID *int
	if raw := c.Query("class"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		classroomID = &id
	}

	students, pagination, err := h.studentService.ListStudents(c.Request.Context(), claims.SchoolID, classroomID, search, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"students": students}, pagination)
}

// CreateStudent godoc
// POST /api/v1/admin/students
// Enrolls a new student into one of the school's classrooms.
func (h *StudentManagementHandler) CreateStudent(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	// The target classroom must belong to the same school.
	if _, err := h.classroomService.GetScoped(c.Request.Context(), claims.SchoolID, req.ClassroomID); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	student := &model.Student{
		SchoolID:    claims.SchoolID,
		ClassroomID: req.ClassroomID,
		Name:        req.Name,
		Roll:        req.Roll,
	}

	if err := h.studentService.Create(c.Request.Context(), student); err != nil {
		if errors.Is(err, repository.ErrDuplicateRoll) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// UpdateStudent godoc
// PUT /api/v1/admin/students/:id
// Updates a student's details, including moving them between classrooms.
func (h *StudentManagementHandler) UpdateStudent(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	existing, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil || existing.SchoolID != claims.SchoolID {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	if _, err := h.classroomService.GetScoped(c.Request.Context(), claims.SchoolID, req.ClassroomID); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	existing.Name = req.Name
	existing.Roll = req.Roll
	existing.ClassroomID = req.ClassroomID

	if err := h.studentService.Update(c.Request.Context(), existing); err != nil {
		if errors.Is(err, repository.ErrDuplicateRoll) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": existing})
}

// DeleteStudent godoc
// DELETE /api/v1/admin/students/:id
// Deletes a student. Fails while attendance marks still reference them.
func (h *StudentManagementHandler) DeleteStudent(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), claims.SchoolID, id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}
