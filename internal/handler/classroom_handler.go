package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/classpoint/classpoint-backend/internal/middleware"
	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/response"
	"github.com/classpoint/classpoint-backend/internal/service"
	"github.com/classpoint/classpoint-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// ClassroomHandler handles principal-facing classroom management (CRUD).
type ClassroomHandler struct {
	classroomService *service.ClassroomService
}

// NewClassroomHandler creates a new ClassroomHandler.
func NewClassroomHandler(classroomService *service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{classroomService: classroomService}
}

// ListClassrooms godoc
// GET /api/v1/admin/classrooms
// Lists all classrooms of the principal's school.
func (h *ClassroomHandler) ListClassrooms(c *gin.Context) {
	claims := middleware.GetClaims(c)

	classrooms, err := h.classroomService.List(c.Request.Context(), claims.SchoolID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classrooms": classrooms})
}

// GetClassroom godoc
// GET /api/v1/admin/classrooms/:id
// Retrieves a single classroom of the principal's school.
func (h *ClassroomHandler) GetClassroom(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	classroom, err := h.classroomService.GetScoped(c.Request.Context(), claims.SchoolID, id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classroom": classroom})
}

// CreateClassroom godoc
// POST /api/v1/admin/classrooms
// Creates a new classroom in the principal's school.
func (h *ClassroomHandler) CreateClassroom(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateClassroomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	classroom := &model.Classroom{
		SchoolID:   claims.SchoolID,
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
	}

	if err := h.classroomService.Create(c.Request.Context(), classroom); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"classroom": classroom})
}

// UpdateClassroom godoc
// PUT /api/v1/admin/classrooms/:id
// Updates an existing classroom.
func (h *ClassroomHandler) UpdateClassroom(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateClassroomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	existing, err := h.classroomService.GetScoped(c.Request.Context(), claims.SchoolID, id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	existing.Name = req.Name
	existing.GradeLevel = req.GradeLevel

	if err := h.classroomService.Update(c.Request.Context(), existing); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classroom": existing})
}

// DeleteClassroom godoc
// DELETE /api/v1/admin/classrooms/:id
// Deletes a classroom. Fails while students or periods still reference it.
func (h *ClassroomHandler) DeleteClassroom(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.classroomService.Delete(c.Request.Context(), claims.SchoolID, id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "classroom deleted successfully"})
}
