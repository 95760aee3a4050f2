package main

import (
	"net/http"
	"os"
	"time"

	jwtadapter "pet-memorial/internal/adapters/auth/jwt"
	pg "pet-memorial/internal/adapters/storage/postgres"
	"pet-memorial/internal/config"
	"pet-memorial/internal/platform/logger"
	"pet-memorial/internal/router"
	"pet-memorial/internal/uploads"

	_ "pet-memorial/docs"
)

func main() {
	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	tokens, err := jwtadapter.New(cfg.Auth.Secret)
	if err != nil {
		log.Error("jwt setup failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	store, err := uploads.NewStore(cfg.Uploads.Dir, cfg.HTTP.PublicBaseURL)
	if err != nil {
		log.Error("uploads setup failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	opts := router.Options{
		Verifier: tokens,
		Issuer:   tokens,
		Log:      log,
		Uploads:  store,
	}

	if cfg.DB.DSN != "" {
		db, err := pg.Open(cfg.DB.DSN)
		if err != nil {
			log.Error("db connection failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.HTTP.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
