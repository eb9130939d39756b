package handler

import (
	"errors"
	"net/http"

	"github.com/classpoint/classpoint-backend/internal/middleware"
	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/classpoint/classpoint-backend/internal/response"
	"github.com/classpoint/classpoint-backend/internal/service"
	"github.com/classpoint/classpoint-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// AttendanceHandler handles teacher-facing roll-call recording.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// RecordAttendance godoc
// POST /api/v1/teacher/attendance
// Records a full roll call for one period on one date. The session and all
// marks are persisted atomically; a retake of the same period and date is
// rejected as a duplicate.
func (h *AttendanceHandler) RecordAttendance(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.RecordAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	session, err := h.attendanceService.Record(c.Request.Context(), claims.SchoolID, claims.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSession):
			response.Fail(c, http.StatusConflict, response.ErrDuplicateSession)
		case errors.Is(err, service.ErrStudentNotInClassroom):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrStudentNotInClass)
		case errors.Is(err, service.ErrPeriodMismatch):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrPeriodNotInTimetable)
		case errors.Is(err, service.ErrNotOwnPeriod):
			response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		case errors.Is(err, service.ErrDuplicateMark), errors.Is(err, service.ErrInvalidMarkStatus):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{
				"marks": err.Error(),
			})
		case errors.Is(err, service.ErrNotInSchool), errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": session})
}
