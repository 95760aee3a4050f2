package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "pet-memorial/internal/adapters/storage/memory"
	pg "pet-memorial/internal/adapters/storage/postgres"
	"pet-memorial/internal/domain/comments"
	"pet-memorial/internal/domain/pets"
	"pet-memorial/internal/domain/users"
	"pet-memorial/internal/middleware"
	"pet-memorial/internal/platform/logger"
	"pet-memorial/internal/ports/auth"
	"pet-memorial/internal/uploads"
)

type Options struct {
	Verifier auth.AuthVerifier
	Issuer   auth.TokenIssuer

	// Opcional: si viene, usa Postgres. Si no, in-memory (modo dev/tests).
	DB *sql.DB

	Log     logger.Logger
	Uploads *uploads.Store
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.AuthContext(opts.Verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		userRepo    users.Repository
		petRepo     pets.Repository
		commentRepo comments.Repository
	)

	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		commentRepo = pg.NewCommentsRepo(opts.DB)
	} else {
		userRepo = mem.NewUserRepo()
		petRepo = mem.NewPetRepo()
		commentRepo = mem.NewCommentRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo, opts.Issuer)
	petsSvc := pets.NewService(petRepo, userRepo, commentRepo)
	commentsSvc := comments.NewService(commentRepo, petRepo, userRepo)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	pets.RegisterRoutes(r, petsSvc, opts.Uploads)
	comments.RegisterRoutes(r, commentsSvc)

	// Imágenes subidas, servidas estáticas para que las URLs resuelvan.
	if opts.Uploads != nil {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.Uploads.Dir())))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
