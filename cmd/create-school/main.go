package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/classpoint/classpoint-backend/internal/config"
	"github.com/classpoint/classpoint-backend/internal/database"
	"github.com/classpoint/classpoint-backend/internal/logger"
	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/classpoint/classpoint-backend/internal/repository"
	"github.com/classpoint/classpoint-backend/internal/service"
	"golang.org/x/term"
)

// Interactive bootstrap for a school plus its principal account, for
// deployments where self-service registration is disabled at the proxy.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	schoolRepo := repository.NewSchoolRepository(pool)
	principalRepo := repository.NewPrincipalRepository(pool)
	authService := service.NewAuthService(cfg)
	schoolService := service.NewSchoolService(schoolRepo, principalRepo, authService)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Register New School ===")

	fmt.Print("Enter School Name: ")
	schoolName, _ := reader.ReadString('\n')
	schoolName = strings.TrimSpace(schoolName)
	if schoolName == "" {
		fmt.Println("Error: School name is required")
		return
	}

	fmt.Print("Enter School Address (optional): ")
	schoolAddress, _ := reader.ReadString('\n')
	schoolAddress = strings.TrimSpace(schoolAddress)

	fmt.Print("Enter Principal Name: ")
	principalName, _ := reader.ReadString('\n')
	principalName = strings.TrimSpace(principalName)
	if principalName == "" {
		fmt.Println("Error: Principal name is required")
		return
	}

	fmt.Print("Enter Principal Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	req := &model.RegisterSchoolRequest{
		SchoolName:    schoolName,
		SchoolAddress: schoolAddress,
		PrincipalName: principalName,
		Email:         email,
		Password:      password,
	}

	school, principal, err := schoolService.Register(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register school")
	}

	fmt.Printf("\nSuccess! School '%s' (ID %d) registered with principal '%s' (%s)\n",
		school.Name, school.ID, principal.Name, principal.Email)
}
