package router

import (
	"net/http"
	"time"

	"github.com/classpoint/classpoint-backend/internal/config"
	"github.com/classpoint/classpoint-backend/internal/handler"
	"github.com/classpoint/classpoint-backend/internal/middleware"
	"github.com/classpoint/classpoint-backend/internal/response"
	"github.com/classpoint/classpoint-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Classroom   *handler.ClassroomHandler
	Subject     *handler.SubjectHandler
	TeacherMgmt *handler.TeacherManagementHandler
	StudentMgmt *handler.StudentManagementHandler
	Timetable   *handler.TimetableHandler
	Attendance  *handler.AttendanceHandler
	Report      *handler.ReportHandler
	Dashboard   *handler.DashboardHandler
	Feed        *handler.FeedHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli compression globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/principal/login", handlers.Auth.PrincipalLogin)
		auth.POST("/teacher/login", handlers.Auth.TeacherLogin)

		// Authenticated profile route, valid for either role.
		auth.GET("/me", middleware.RequireAnyJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. Admin Group (Principal JWT) ────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequirePrincipalJWT(authService))
	{
		adminAPI.GET("/dashboard", handlers.Dashboard.GetDashboard)

		// Classroom management
		adminAPI.GET("/classrooms", handlers.Classroom.ListClassrooms)
		adminAPI.POST("/classrooms", handlers.Classroom.CreateClassroom)
		adminAPI.GET("/classrooms/:id", handlers.Classroom.GetClassroom)
		adminAPI.PUT("/classrooms/:id", handlers.Classroom.UpdateClassroom)
		adminAPI.DELETE("/classrooms/:id", handlers.Classroom.DeleteClassroom)

		// Timetable
		adminAPI.GET("/classrooms/:id/timetable", handlers.Timetable.GetWeekTimetable)
		adminAPI.PUT("/classrooms/:id/timetable/:day", handlers.Timetable.ReplaceDaySchedule)

		// Subject management
		adminAPI.GET("/subjects", handlers.Subject.ListSubjects)
		adminAPI.POST("/subjects", handlers.Subject.CreateSubject)
		adminAPI.PUT("/subjects/:id", handlers.Subject.UpdateSubject)
		adminAPI.DELETE("/subjects/:id", handlers.Subject.DeleteSubject)

		// Teacher management
		adminAPI.GET("/teachers", handlers.TeacherMgmt.ListTeachers)
		adminAPI.POST("/teachers", handlers.TeacherMgmt.CreateTeacher)
		adminAPI.PUT("/teachers/:id", handlers.TeacherMgmt.UpdateTeacher)
		adminAPI.DELETE("/teachers/:id", handlers.TeacherMgmt.DeleteTeacher)

		// Student management
		adminAPI.GET("/students", handlers.StudentMgmt.ListStudents)
		adminAPI.POST("/students", handlers.StudentMgmt.CreateStudent)
		adminAPI.PUT("/students/:id", handlers.StudentMgmt.UpdateStudent)
		adminAPI.DELETE("/students/:id", handlers.StudentMgmt.DeleteStudent)

		// Reports
		adminAPI.GET("/reports/attendance", handlers.Report.GetAttendanceReport)
		adminAPI.GET("/reports/attendance/pdf", handlers.Report.ExportAttendancePDF)
	}

	// ─── 3. Teacher Group (Teacher JWT) ────────────────────────────────
	teacherAPI := router.Group("/api/v1/teacher")
	teacherAPI.Use(middleware.RequireTeacherJWT(authService))
	{
		teacherAPI.GET("/timetable", handlers.Timetable.GetMySchedule)
		teacherAPI.POST("/attendance", handlers.Attendance.RecordAttendance)
		teacherAPI.GET("/reports/attendance", handlers.Report.GetAttendanceReport)
	}

	// ─── 4. WebSocket Group (Principal WS Auth) ────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequirePrincipalWSAuth(authService))
	{
		ws.GET("/attendance/feed", handlers.Feed.AttendanceFeed)
	}

	return router
}
