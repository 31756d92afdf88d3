package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StyleMate-25-26J/stylemate-backend/config"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/bootstrap"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/llm"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/session"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/storage/postgres"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/suggestion"
)

const serviceName = "stylemate-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	// database/sql connection only bootstraps the schema; runtime queries
	// go through the pgx pool.
	sqlDB, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	if err := postgres.EnsureSchema(sqlDB); err != nil {
		log.Fatalf("schema: %v", err)
	}
	_ = sqlDB.Close()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	sessions := session.NewStore(rdb, sessionTTL)

	sweeper := session.NewSweeper(sessions)
	sweeper.Start()
	defer sweeper.Stop()

	var ai suggestion.Strategy
	if cfg.AIAvailable() {
		client := llm.New(llm.Config{
			BaseURL: cfg.AI.BaseURL,
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
			Timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		})
		ai = suggestion.NewAIStrategy(client, time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
		log.Printf("AI suggestions enabled (model=%s)", cfg.AI.Model)
	} else {
		log.Println("AI suggestions disabled, serving rule-based only")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		AllowOrigins: cfg.Server.AllowOrigins,
		GalleryDir:   cfg.Gallery.Dir,
		DB:           pool,
		Redis:        rdb,
		Engine:       suggestion.NewEngine(ai),
		Sessions:     sessions,
		Cookies: session.CookieOptions{
			Name:   cfg.Session.CookieName,
			TTL:    sessionTTL,
			Secure: cfg.Session.CookieSecure,
		},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
