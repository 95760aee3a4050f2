package config

import (
	"errors"
	"os"
	"strings"
)

// Config agrupa toda la configuración del proceso.
// Se construye una sola vez en main y se pasa explícita (sin globals).
type Config struct {
	HTTP    HTTPConfig
	DB      DBConfig
	Auth    AuthConfig
	Uploads UploadsConfig
}

type HTTPConfig struct {
	Addr          string // listen address, ej ":8080"
	PublicBaseURL string // base para armar URLs de imágenes
}

type DBConfig struct {
	// DSN de Postgres. Vacío => repos in-memory (modo dev).
	DSN string
}

type AuthConfig struct {
	// Secreto HS256 para firmar tokens.
	Secret string
}

type UploadsConfig struct {
	Dir string
}

// Load lee la config desde env y valida lo crítico.
// - PORT (default 8080)
// - PUBLIC_BASE_URL (default http://localhost:<port>)
// - DB_DSN (opcional)
// - JWT_SECRET (obligatorio)
// - UPLOAD_DIR (default ./uploads)
func Load() (Config, error) {
	port := getEnv("PORT", "8080")

	cfg := Config{
		HTTP: HTTPConfig{
			Addr:          ":" + port,
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:"+port),
		},
		DB: DBConfig{
			DSN: strings.TrimSpace(os.Getenv("DB_DSN")),
		},
		Auth: AuthConfig{
			Secret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
		},
		Uploads: UploadsConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
	}

	if cfg.Auth.Secret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	cfg.HTTP.PublicBaseURL = strings.TrimRight(cfg.HTTP.PublicBaseURL, "/")

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
