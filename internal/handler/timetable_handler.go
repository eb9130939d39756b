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
)

// TimetableHandler handles weekly timetable reads and day replacements.
type TimetableHandler struct {
	timetableService *service.TimetableService
	classroomService *service.ClassroomService
}

// NewTimetableHandler creates a new TimetableHandler.
func NewTimetableHandler(timetableService *service.TimetableService, classroomService *service.ClassroomService) *TimetableHandler {
	return &TimetableHandler{
		timetableService: timetableService,
		classroomService: classroomService,
	}
}

// GetWeekTimetable godoc
// GET /api/v1/admin/classrooms/:id/timetable
// Returns a classroom's full weekly timetable grouped by day.
func (h *TimetableHandler) GetWeekTimetable(c *gin.Context) {
	claims := middleware.GetClaims(c)

	classroomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if _, err := h.classroomService.GetScoped(c.Request.Context(), claims.SchoolID, classroomID); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	week, err := h.timetableService.GetWeek(c.Request.Context(), classroomID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timetable": week})
}

// ReplaceDaySchedule godoc
// PUT /api/v1/admin/classrooms/:id/timetable/:day
// Replaces a classroom's entire schedule for one weekday. The proposed set
// is validated for overlaps first; on conflict the whole day is rejected
// and nothing is written.
func (h *TimetableHandler) ReplaceDaySchedule(c *gin.Context) {
	claims := middleware.GetClaims(c)

	classroomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	dayNum, err := strconv.Atoi(c.Param("day"))
	if err != nil || !model.Day(dayNum).Valid() {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	day := model.Day(dayNum)

	if _, err := h.classroomService.GetScoped(c.Request.Context(), claims.SchoolID, classroomID); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	var req model.ReplaceDayScheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	periods, err := h.timetableService.ReplaceDay(c.Request.Context(), classroomID, day, req.Periods)
	if err != nil {
		var conflictErr *service.ErrScheduleConflict
		switch {
		case errors.As(err, &conflictErr):
			response.Fail(c, http.StatusConflict, response.ErrScheduleConflict)
		case errors.Is(err, model.ErrBadTimeOfDay):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidTime)
		case errors.Is(err, service.ErrInvalidPeriod):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{
				"periods": service.ErrInvalidPeriod.Error(),
			})
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"day":     day,
		"periods": periods,
	})
}

// GetMySchedule godoc
// GET /api/v1/teacher/timetable
// Returns the authenticated teacher's own periods grouped by day.
func (h *TimetableHandler) GetMySchedule(c *gin.Context) {
	claims := middleware.GetClaims(c)

	week, err := h.timetableService.ListByTeacher(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timetable": week})
}
