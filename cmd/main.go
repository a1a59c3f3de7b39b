package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"gamelibrary-backend/internal/config"
	"gamelibrary-backend/internal/database"
	"gamelibrary-backend/internal/handlers"
	"gamelibrary-backend/internal/repository"
	"gamelibrary-backend/internal/server"
	"gamelibrary-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Game Library API
// @version 1.0
// @description CRUD API for a game catalog with a fixed genre reference list

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5068
// @BasePath /api
// @schemes http https

func main() {
	loadEnvFile()

	cfg := config.Load()
	log := setupLogger()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()
	log.WithField("driver", cfg.Database.Driver).Info("Database connected")

	seedGenres(cfg, db, log)

	gameRepo := repository.NewGameRepository(db)
	genreRepo := repository.NewGenreRepository(db)

	var archiver services.ImageArchiver
	var imageHandler *handlers.ImageHandler
	if cfg.MinIO.Enabled {
		minioArchiver, err := services.NewMinIOArchiver(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize image archive: %v", err)
		}
		archiver = minioArchiver
	}

	gameService := services.NewGameService(gameRepo, archiver, log)
	genreService := services.NewGenreService(genreRepo)

	gameHandler := handlers.NewGameHandler(gameService, genreService, log)
	if archiver != nil {
		imageHandler = handlers.NewImageHandler(gameService, log)
	}

	app := server.New(cfg, db, gameHandler, imageHandler, log)

	go gracefulShutdown(app, log)

	log.Infof("Game Library API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func seedGenres(cfg *config.Config, db *database.Database, log *logrus.Logger) {
	genres, err := database.LoadGenreSeed(cfg.Seed.GenreFile)
	if err != nil {
		log.Fatalf("Failed to load genre seed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := database.SeedGenres(ctx, db, genres); err != nil {
		log.Fatalf("Failed to seed genres: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	} else if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

// loadEnvFile loads envs/.env.<GO_ENV>, falling back to envs/.env. Variables
// already set in the process environment win.
func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err == nil {
		log.Infof("Environment loaded from file %s", envFile)
		return
	}

	defaultEnvFile := filepath.Join(execDir, "envs", ".env")
	if err := godotenv.Load(defaultEnvFile); err != nil {
		log.Debugf("No environment file found, using process environment")
		return
	}
	log.Infof("Environment loaded from default file %s", defaultEnvFile)
}
