package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"

	"github.com/bookkeephq/bookkeep/pkg/catalog"
	"github.com/bookkeephq/bookkeep/pkg/catalog/catalogdb"
	"github.com/bookkeephq/bookkeep/pkg/config"
	"github.com/bookkeephq/bookkeep/pkg/gate"
	"github.com/bookkeephq/bookkeep/pkg/identity"
	"github.com/bookkeephq/bookkeep/pkg/ratelimit"
	"github.com/bookkeephq/bookkeep/pkg/userrole"
	"github.com/bookkeephq/bookkeep/pkg/userrole/userroledb"
)

type Config struct {
	DbConfig        config.DatabaseConfig
	StorageConfig   config.StorageConfig
	AuthConfig      config.AuthConfig
	RateLimitConfig config.RateLimitConfig
	AppConfig       app.AppConfig
}

// loadEnvFile loads environment variables from .env file if it exists
// Only sets variables that are not already set in the environment
func loadEnvFile() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		execPath, err := os.Executable()
		if err != nil {
			return
		}
		envFile = filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		slog.Error("Failed to load .env file", "error", err, "path", envFile)
		return
	}
	slog.Info("Configuration loaded from .env file", "path", envFile)
}

// buildRepositories selects the record store backend. Postgres is the
// production store; memory and file back development setups.
func buildRepositories(cfg *Config) (userrole.AssignmentRepository, catalog.BookRepository) {
	switch cfg.StorageConfig.BackendType() {
	case config.StorageMemory:
		slog.Info("Using in-memory record store")
		return userrole.NewInMemoryAssignmentRepository(), catalog.NewInMemoryBookRepository()

	case config.StorageFile:
		slog.Info("Using file record store", "dir", cfg.StorageConfig.DataDir)
		assignmentRepo, err := userrole.NewFileAssignmentRepository(cfg.StorageConfig.DataDir)
		if err != nil {
			slog.Error("Failed to open assignment store", "err", err)
			os.Exit(-1)
		}
		bookRepo, err := catalog.NewFileBookRepository(cfg.StorageConfig.DataDir)
		if err != nil {
			slog.Error("Failed to open catalog store", "err", err)
			os.Exit(-1)
		}
		return assignmentRepo, bookRepo

	default:
		dbConfig := cfg.DbConfig.ToDbConfig()
		pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
		if err != nil {
			slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host,
				"port", dbConfig.Port, "user", dbConfig.User)
			os.Exit(-1)
		}
		return userrole.NewPostgresAssignmentRepository(userroledb.New(pool)),
			catalog.NewPostgresBookRepository(catalogdb.New(pool))
	}
}

func main() {
	// Create a logger with source enabled
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true, // Enables line number & file path
	}))
	slog.SetDefault(logger)

	// Load .env file if it exists (before reading environment variables)
	loadEnvFile()

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	server := app.DefaultApp()
	app.RoutesHealthz(server.R)

	assignmentRepo, bookRepo := buildRepositories(&cfg)
	assignmentService := userrole.NewAssignmentService(assignmentRepo)
	bookService := catalog.NewBookService(bookRepo)

	assignmentHandle := userrole.NewHandle(assignmentService)
	catalogHandle := catalog.NewHandle(bookService)

	// Root banner and health endpoints kept from the original API surface
	server.R.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "BookKeep API is running")
	})
	server.R.Get("/health", handleHealth)
	server.R.Get("/api/health", handleHealth)
	server.R.Get("/api/debug", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]interface{}{
			"message": "API debug endpoint is working",
			"routes": []string{
				"/api/forms",
				"/api/users/set-role",
				"/api/users/get-role/{userId}",
			},
		})
	})

	var limitAPI func(http.Handler) http.Handler
	if cfg.RateLimitConfig.Enabled {
		limiter := ratelimit.NewLimiter(cfg.RateLimitConfig.Capacity, cfg.RateLimitConfig.RefillRate, time.Hour)
		limitAPI = ratelimit.PerClient(limiter)
	}

	if cfg.AuthConfig.Enabled {
		tokenAuth := identity.NewJWTAuth(cfg.AuthConfig.JwtSecret)
		slog.Info("Bearer token authentication enabled", "issuer", cfg.AuthConfig.Issuer)

		server.R.Route("/api", func(r chi.Router) {
			if limitAPI != nil {
				r.Use(limitAPI)
			}
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(jwtauth.Authenticator(tokenAuth))
			r.Use(identity.AuthUserMiddleware)

			assignmentHandle.RegisterRoutes(r)

			r.Route("/forms", func(r chi.Router) {
				// Reads are open to both roles; writes require admin
				r.Get("/", catalogHandle.ListBooks)
				r.Get("/{id}", catalogHandle.GetBook)

				r.Group(func(r chi.Router) {
					r.Use(gate.RequireRole(assignmentService, userrole.RoleAdmin))
					r.Post("/", catalogHandle.CreateBook)
					r.Put("/{id}", catalogHandle.UpdateBook)
					r.Delete("/{id}", catalogHandle.DeleteBook)
				})
			})
		})
	} else {
		// The original deployment never enforced provider auth on these
		// routes; the gate lives client-side. Keep that the default.
		server.R.Route("/api", func(r chi.Router) {
			if limitAPI != nil {
				r.Use(limitAPI)
			}
			assignmentHandle.RegisterRoutes(r)
			catalogHandle.RegisterRoutes(r)
		})
	}

	server.Run()
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "healthy"})
}
