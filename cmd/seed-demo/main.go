package main

import (
	"context"
	"fmt"
	"time"

	"github.com/classpoint/classpoint-backend/internal/config"
	"github.com/classpoint/classpoint-backend/internal/database"
	"github.com/classpoint/classpoint-backend/internal/logger"
	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/classpoint/classpoint-backend/internal/service"
	"github.com/jackc/pgx/v5"
)

// Seeds a complete demo school: principal, teachers, classrooms, subjects,
// students, a Monday timetable and one recorded roll call. Safe to run once
// against an empty database.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	schoolRepo := repository.NewSchoolRepository(pool)
	principalRepo := repository.NewPrincipalRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	classroomRepo := repository.NewClassroomRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)

	authService := service.NewAuthService(cfg)
	schoolService := service.NewSchoolService(schoolRepo, principalRepo, authService)
	teacherService := service.NewTeacherService(teacherRepo, authService)
	timetableService := service.NewTimetableService(timetableRepo, rdb, log)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, timetableRepo, classroomRepo, subjectRepo, teacherRepo, rdb, log)

	fmt.Println("=== Seeding Demo School ===")

	// ─── School + Principal ────────────────────────────────────────────
	var schoolID int
	err = pool.QueryRow(ctx, "SELECT id FROM schools WHERE name = $1", "Riverview High").Scan(&schoolID)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Fatal().Err(err).Msg("Failed to check existing school")
		}
		school, principal, err := schoolService.Register(ctx, &model.RegisterSchoolRequest{
			SchoolName:    "Riverview High",
			SchoolAddress: "12 River Road",
			PrincipalName: "Dana Whitfield",
			Email:         "principal@riverview.example",
			Password:      "riverview-demo",
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to register demo school")
		}
		schoolID = school.ID
		fmt.Printf("Created school %q (ID %d) with principal %s\n", school.Name, school.ID, principal.Email)
	} else {
		fmt.Printf("Found existing school with ID: %d\n", schoolID)
	}

	// ─── Teachers ──────────────────────────────────────────────────────
	teacherNames := map[string]string{
		"m.okafor@riverview.example": "Miriam Okafor",
		"p.reyes@riverview.example":  "Pablo Reyes",
		"l.chen@riverview.example":   "Lily Chen",
	}
	teachers := make([]*model.Teacher, 0, len(teacherNames))
	for email, name := range teacherNames {
		existing, err := teacherRepo.GetByEmail(ctx, email)
		if err == nil {
			teachers = append(teachers, existing)
			continue
		}
		t := &model.Teacher{SchoolID: schoolID, Name: name, Email: email}
		if err := teacherService.Create(ctx, t, "teacher-demo"); err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("Failed to create teacher")
		}
		teachers = append(teachers, t)
	}
	fmt.Printf("Seeded %d teachers\n", len(teachers))

	// ─── Classrooms + Subjects ─────────────────────────────────────────
	classroom := &model.Classroom{SchoolID: schoolID, Name: "Grade 7 Blue", GradeLevel: 7}
	if err := classroomRepo.Create(ctx, classroom); err != nil {
		log.Fatal().Err(err).Msg("Failed to create classroom")
	}

	subjectNames := []string{"Mathematics", "English", "Science"}
	subjects := make([]*model.Subject, 0, len(subjectNames))
	for _, name := range subjectNames {
		sub := &model.Subject{SchoolID: schoolID, Name: name}
		if err := subjectRepo.Create(ctx, sub); err != nil {
			log.Fatal().Err(err).Str("subject", name).Msg("Failed to create subject")
		}
		subjects = append(subjects, sub)
	}
	fmt.Printf("Created classroom %q and %d subjects\n", classroom.Name, len(subjects))

	// ─── Students ──────────────────────────────────────────────────────
	studentNames := []string{
		"Aaron Bell", "Bianca Torres", "Caleb Wright", "Daria Novak", "Elias Moreau",
		"Farah Haddad", "Gavin O'Shea", "Hana Suzuki", "Ivan Petrov", "Jade Thompson",
		"Karim Mansour", "Leah Goldberg", "Mateo Silva", "Nora Lindqvist", "Omar Farouk",
		"Priya Nair", "Quentin Dubois", "Rosa Delgado", "Samuel Adeyemi", "Tessa Brandt",
	}
	students := make([]*model.Student, 0, len(studentNames))
	for i, name := range studentNames {
		s := &model.Student{
			SchoolID:    schoolID,
			ClassroomID: classroom.ID,
			Name:        name,
			Roll:        fmt.Sprintf("7B-%02d", i+1),
		}
		if err := studentRepo.Create(ctx, s); err != nil {
			log.Fatal().Err(err).Str("student", name).Msg("Failed to create student")
		}
		students = append(students, s)
	}
	fmt.Printf("Enrolled %d students\n", len(students))

	// ─── Monday Timetable ──────────────────────────────────────────────
	inputs := []model.PeriodInput{
		{SubjectID: subjects[0].ID, TeacherID: teachers[0].ID, StartTime: "08:00", EndTime: "08:45"},
		{SubjectID: subjects[1].ID, TeacherID: teachers[1].ID, StartTime: "08:45", EndTime: "09:30"},
		{SubjectID: subjects[2].ID, TeacherID: teachers[2].ID, StartTime: "09:45", EndTime: "10:30"},
	}
	periods, err := timetableService.ReplaceDay(ctx, classroom.ID, model.DayMonday, inputs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build Monday timetable")
	}
	fmt.Printf("Built Monday timetable with %d periods\n", len(periods))

	// ─── Sample Roll Call ──────────────────────────────────────────────
	marks := make([]model.MarkInput, 0, len(students))
	for i, s := range students {
		status := model.MarkPresent
		if i%7 == 0 {
			status = model.MarkAbsent
		}
		marks = append(marks, model.MarkInput{StudentID: s.ID, Status: status})
	}

	session, err := attendanceService.Record(ctx, schoolID, periods[0].TeacherID, &model.RecordAttendanceRequest{
		ClassroomID: classroom.ID,
		SubjectID:   periods[0].SubjectID,
		PeriodID:    periods[0].ID,
		TakenOn:     time.Now().Format("2006-01-02"),
		Marks:       marks,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to record sample roll call")
	}

	fmt.Printf("\nSeed completed! Sample attendance session: %s\n", session.ID)
}
