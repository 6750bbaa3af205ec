// Command admin runs maintenance tasks against the club database:
//
//	admin migrate
//	admin seed
//	admin create-staff -username boss -password secret -role hr [-phone +7...]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitclub-admin/internal/core/config"
	"fitclub-admin/internal/core/database"
	"fitclub-admin/internal/core/logger"
	"fitclub-admin/internal/domain"
	"fitclub-admin/internal/feature/seed"
	"fitclub-admin/internal/repo"
	"fitclub-admin/pkg/utils"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admin <migrate|seed|create-staff> [flags]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	ctx := context.Background()

	switch cmd := os.Args[1]; cmd {
	case "migrate":
		if err := repo.Migrate(db); err != nil {
			log.Fatal("migrate", zap.Error(err))
		}
		log.Info("migrate done")

	case "seed":
		if err := repo.Migrate(db); err != nil {
			log.Fatal("migrate", zap.Error(err))
		}
		res, err := seed.Run(ctx, repo.NewStore(db), time.Local)
		if err != nil {
			log.Fatal("seed", zap.Error(err))
		}
		log.Info("seed done", zap.Bool("skipped", res.Skipped), zap.Int("actors", res.Actors))

	case "create-staff":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		username := fs.String("username", "", "login name")
		password := fs.String("password", "", "initial password")
		role := fs.String("role", string(domain.RoleAdmin), "hr | crm | trainer")
		phone := fs.String("phone", "", "contact phone")
		_ = fs.Parse(os.Args[2:])

		a, err := createStaff(ctx, repo.NewStore(db), *username, *password, *role, *phone)
		if err != nil {
			log.Fatal("create-staff", zap.Error(err))
		}
		log.Info("staff created", zap.Uint("id", a.ID), zap.String("username", a.Username), zap.String("role", a.Role.String()))

	default:
		usage()
	}
}

func createStaff(ctx context.Context, store domain.Store, username, password, role, phone string) (*domain.Actor, error) {
	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	if r == domain.RoleClient {
		return nil, fmt.Errorf("%w: clients are added through /add_registration", domain.ErrInvalidInput)
	}
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	a := &domain.Actor{Username: username, PasswordHash: hash, Role: r, Phone: phone}
	if err := store.Actors().Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
