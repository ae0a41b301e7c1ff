package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/favmov/favmov-go/internal/config"
	"github.com/favmov/favmov-go/internal/handler"
	"github.com/favmov/favmov-go/internal/middleware"
	"github.com/favmov/favmov-go/internal/repository"
	"github.com/favmov/favmov-go/internal/service"
	"github.com/favmov/favmov-go/internal/tmdb"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService, cfg.UploadDir, cfg.PublicURL)

	favRepo := repository.NewFavoriteRepository(db)
	favService := service.NewFavoriteService(favRepo)
	catalog := tmdb.NewClient(cfg.TMDBAPIKey)
	favHandler := handler.NewFavoriteHandler(favService, catalog)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Uploaded profile photos are public.
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Post("/api/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/auth/me", authHandler.HandleMe)
		r.Post("/api/auth/update-photo", authHandler.HandleUpdatePhoto)

		r.Get("/api/movies/favorites", favHandler.HandleList)
		r.Post("/api/movies/favorites", favHandler.HandleAdd)
		r.Get("/api/movies/favorites/{movie_id}", favHandler.HandleCheck)
		r.Delete("/api/movies/favorites/{movie_id}", favHandler.HandleRemove)
		r.Get("/api/movies/{movie_id}", favHandler.HandleMovieDetails)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
