package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/smartaid/smartaid-backend/internal/config"
	"github.com/smartaid/smartaid-backend/internal/database"
	"github.com/smartaid/smartaid-backend/internal/logger"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/smartaid/smartaid-backend/internal/repository"
	"github.com/smartaid/smartaid-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	staffRepo := repository.NewStaffRepository(pool)
	authService := service.NewAuthService(cfg)

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Staff User ===")

	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)

	fmt.Print("Enter Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	fmt.Print("Enter Role (caseworker/supervisor): ")
	roleInput, _ := reader.ReadString('\n')
	role := model.StaffRole(strings.TrimSpace(roleInput))
	if role != model.RoleCaseworker && role != model.RoleSupervisor {
		log.Fatal().Str("role", string(role)).Msg("Role must be caseworker or supervisor")
	}

	fmt.Print("Enter Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read password")
	}

	hash, err := authService.HashPassword(string(password))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	staff := &model.StaffUser{
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
	}
	if err := staffRepo.Create(ctx, staff); err != nil {
		log.Fatal().Err(err).Msg("Failed to create staff user")
	}

	fmt.Printf("Staff user %q (%s) created with ID %d\n", username, role, staff.ID)
}
