package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/classpoint/classpoint-backend/internal/middleware"
	"github.com/classpoint/classpoint-backend/internal/response"
	"github.com/classpoint/classpoint-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves per-student attendance summaries and PDF exports.
type ReportHandler struct {
	reportService    *service.ReportService
	classroomService *service.ClassroomService
	subjectService   *service.SubjectService
	timetableService *service.TimetableService
	exportService    *service.ExportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(
	reportService *service.ReportService,
	classroomService *service.ClassroomService,
	subjectService *service.SubjectService,
	timetableService *service.TimetableService,
	exportService *service.ExportService,
) *ReportHandler {
	return &ReportHandler{
		reportService:    reportService,
		classroomService: classroomService,
		subjectService:   subjectService,
		timetableService: timetableService,
		exportService:    exportService,
	}
}

// parseReportQuery reads the report query params. page_size accepts the
// sentinel "all" meaning an unbounded page. Defaults and clamping happen
// downstream in ReportQuery.Normalize.
func parseReportQuery(c *gin.Context) service.ReportQuery {
	q := service.ReportQuery{
		Search:    c.Query("search"),
		SortField: c.DefaultQuery("sf", service.SortByName),
		SortOrder: c.DefaultQuery("so", "asc"),
	}

	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))

	rawSize := c.DefaultQuery("page_size", "10")
	if rawSize == "all" {
		q.All = true
	} else {
		q.PageSize, _ = strconv.Atoi(rawSize)
	}

	return q
}

// GetAttendanceReport godoc
// GET /api/v1/{admin,teacher}/reports/attendance?class=&subject=&search=&page=&page_size=&sf=&so=
// Returns one page of the per-student attendance summary for a subject
// within a classroom.
func (h *ReportHandler) GetAttendanceReport(c *gin.Context) {
	claims := middleware.GetClaims(c)

	classroomID, err := strconv.Atoi(c.Query("class"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	subjectID, err := strconv.Atoi(c.Query("subject"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if _, err := h.classroomService.GetScoped(c.Request.Context(), claims.SchoolID, classroomID); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if _, err := h.subjectService.GetScoped(c.Request.Context(), claims.SchoolID, subjectID); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	// Teachers may only read reports for classroom/subject pairs they are
	// timetabled to teach. Principals see every pair in their school.
	if claims.TokenType == service.TokenTypeTeacher {
		assigned, err := h.timetableService.TeacherAssigned(c.Request.Context(), claims.UserID, classroomID, subjectID)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		if !assigned {
			response.Fail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}
	}

	report, err := h.reportService.AttendanceReport(c.Request.Context(), classroomID, subjectID, parseReportQuery(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, report)
}

// ExportAttendancePDF godoc
// GET /api/v1/admin/reports/attendance/pdf?class=&subject=&search=&sf=&so=
// Streams the full (unpaginated) report for a classroom and subject as a
// downloadable PDF sheet.
func (h *ReportHandler) ExportAttendancePDF(c *gin.Context) {
	claims := middleware.GetClaims(c)

	classroomID, err := strconv.Atoi(c.Query("class"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	subjectID, err := strconv.Atoi(c.Query("subject"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	classroom, err := h.classroomService.GetScoped(c.Request.Context(), claims.SchoolID, classroomID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	subject, err := h.subjectService.GetScoped(c.Request.Context(), claims.SchoolID, subjectID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	// The sheet always covers every student; pagination params are ignored.
	q := parseReportQuery(c)
	q.All = true

	report, err := h.reportService.AttendanceReport(c.Request.Context(), classroomID, subjectID, q)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	pdfBytes, err := h.exportService.AttendanceSheetPDF(classroom, subject, report)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	filename := fmt.Sprintf("attendance-%s-%s.pdf", classroom.Name, subject.Name)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
