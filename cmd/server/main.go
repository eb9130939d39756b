package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/classpoint/classpoint-backend/internal/config"
	"github.com/classpoint/classpoint-backend/internal/database"
	"github.com/classpoint/classpoint-backend/internal/handler"
	"github.com/classpoint/classpoint-backend/internal/logger"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/classpoint/classpoint-backend/internal/router"
	"github.com/classpoint/classpoint-backend/internal/service"
	"github.com/classpoint/classpoint-backend/internal/validator"
	"github.com/classpoint/classpoint-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting ClassPoint Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	schoolRepo := repository.NewSchoolRepository(pool)
	principalRepo := repository.NewPrincipalRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	classroomRepo := repository.NewClassroomRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	schoolService := service.NewSchoolService(schoolRepo, principalRepo, authService)
	teacherService := service.NewTeacherService(teacherRepo, authService)
	classroomService := service.NewClassroomService(classroomRepo)
	subjectService := service.NewSubjectService(subjectRepo, log)
	studentService := service.NewStudentService(studentRepo)
	timetableService := service.NewTimetableService(timetableRepo, rdb, log)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, timetableRepo, classroomRepo, subjectRepo, teacherRepo, rdb, log)
	reportService := service.NewReportService(attendanceRepo, studentRepo, log)
	dashboardService := service.NewDashboardService(dashboardRepo, rdb, log)
	exportService := service.NewExportService(cfg, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:        handler.NewAuthHandler(authService, schoolService, teacherService),
		Classroom:   handler.NewClassroomHandler(classroomService),
		Subject:     handler.NewSubjectHandler(subjectService),
		TeacherMgmt: handler.NewTeacherManagementHandler(teacherService),
		StudentMgmt: handler.NewStudentManagementHandler(studentService, classroomService),
		Timetable:   handler.NewTimetableHandler(timetableService, classroomService),
		Attendance:  handler.NewAttendanceHandler(attendanceService),
		Report:      handler.NewReportHandler(reportService, classroomService, subjectService, timetableService, exportService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Feed:        handler.NewFeedHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	summaryWorker := worker.NewSummaryWorker(attendanceRepo, rdb, cfg.SummaryInterval, log)
	go summaryWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the background worker.
	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
