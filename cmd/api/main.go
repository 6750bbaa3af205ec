package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"fitclub-admin/internal/core/auth"
	"fitclub-admin/internal/core/config"
	"fitclub-admin/internal/core/database"
	"fitclub-admin/internal/core/logger"
	"fitclub-admin/internal/core/server"
	"fitclub-admin/internal/core/session"
	"fitclub-admin/internal/feature/seed"
	"fitclub-admin/internal/repo"
	"fitclub-admin/internal/service"
	"fitclub-admin/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, cleanup := logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate(cfg.Log.File))
	defer cleanup()
	undo := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer undo()

	db := mustOpenDB(cfg, log)
	log.Info("database connected",
		zap.String("driver", cfg.DB.Driver),
		zap.String("dsn", database.MaskDSN(cfg.DB.DSN)),
	)

	if cfg.DB.AutoMigrate {
		if err := repo.Migrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	store := repo.NewStore(db)
	if cfg.DB.Seed {
		res, err := seed.Run(context.Background(), store, time.Local)
		if err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
		log.Info("seed done",
			zap.Bool("skipped", res.Skipped),
			zap.Int("actors", res.Actors),
			zap.Int("sections", res.Sections),
			zap.Int("schedules", res.Schedules),
		)
	}

	sessions := mustSessionStore(cfg, log)
	ttl := time.Duration(cfg.Auth.SessionTTLMin) * time.Minute
	jwter := &auth.JWTer{Secret: []byte(cfg.Auth.JWTSecret), Issuer: cfg.Auth.Issuer}

	deps := router.Deps{
		Auth:          service.NewAuthService(store, sessions, jwter, ttl),
		Sections:      service.NewSectionService(store),
		Trainers:      service.NewTrainerService(store),
		Schedule:      service.NewScheduleService(store, time.Local),
		Registrations: service.NewRegistrationService(store),
		Payments:      service.NewPaymentService(store),
		Analytics:     service.NewAnalyticsService(store),
	}
	r := router.NewAPIEngine(log, deps, router.Options{
		CookieName:     cfg.Auth.CookieName,
		SecureCookie:   cfg.Auth.SecureCookie,
		SessionTTL:     ttl,
		EnforceRoles:   cfg.Auth.EnforceRoles,
		RPS:            cfg.Limits.RPS,
		Burst:          cfg.Limits.Burst,
		Concurrency:    cfg.Limits.Concurrency,
		MaxBodyBytes:   cfg.Limits.MaxBodyBytes,
		RequestTimeout: time.Duration(cfg.Limits.RequestTimeoutSec) * time.Second,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("fitclub admin starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.Bool("enforce_roles", cfg.Auth.EnforceRoles),
	)

	go func() {
		if err := server.StartHTTP(srv, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http start FAILED", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("fitclub admin stopped gracefully")
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
		PrepareStmt:        cfg.DB.PrepareStmt,
		Writer:             logger.ToStdLogger(l.Named("gorm"), zapcore.InfoLevel),
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

// mustSessionStore uses Redis when configured, otherwise sessions live in
// process memory and do not survive a restart.
func mustSessionStore(cfg *config.Config, l *zap.Logger) session.Store {
	if cfg.Redis.Addr == "" {
		l.Warn("redis.addr empty, using in-memory sessions")
		return session.NewMemoryStore()
	}
	rdb := session.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		l.Fatal("redis ping", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	return session.NewRedisStore(rdb)
}
