package main

import (
	"context"
	"flag"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/config"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	adminRepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/admin"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
)

// Offline tool that seeds a superadmin account. Admin accounts are never
// created through the public API.
func main() {
	name := flag.String("name", "Super Admin", "display name")
	email := flag.String("email", "", "login email (required)")
	password := flag.String("password", "", "login password (required)")
	role := flag.String("role", constant.RoleSuperAdmin, "admin or superadmin")
	flag.Parse()

	cfg := config.Load()
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if *email == "" || *password == "" {
		logger.Fatal("email and password are required")
	}
	if *role != constant.RoleAdmin && *role != constant.RoleSuperAdmin {
		logger.Fatal("role must be admin or superadmin", zap.String("role", *role))
	}

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("err hash password", zap.Error(err))
	}

	admin := &model.AdminEntity{
		ID:           uuid.NewString(),
		Name:         *name,
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash: string(hash),
		Role:         *role,
		CreatedAt:    time.Now(),
	}

	repo := adminRepo.NewAdminRepository(db)
	if err := repo.Create(context.Background(), admin); err != nil {
		logger.Fatal("err seed admin", zap.Error(err))
	}

	logger.Info("admin seeded", zap.String("id", admin.ID), zap.String("email", admin.Email))
}
