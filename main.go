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

	"collabspace/config"
	"collabspace/controllers"
	"collabspace/database"
	"collabspace/repository"
	"collabspace/routes"
	"collabspace/services"
	"collabspace/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var logger *log.Logger

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()
	setupLogging(cfg.Verbose)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	events := utils.NewManager(logger, cfg.AllowedOrigins)
	go events.Run(ctx)

	store := repository.NewStore(db)
	projectService := services.NewProjectService(store, events)
	taskService := services.NewTaskService(store, events)

	projectController := controllers.NewProjectController(projectService, events, cfg.PublicBaseURL)
	taskController := controllers.NewTaskController(taskService)
	teamController := controllers.NewTeamController(services.NewTeamService(store))

	gin.SetMode(cfg.GinMode)
	router := routes.NewRouter(cfg.AllowedOrigins, projectController, taskController, teamController)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		logger.Printf("Starting server on port %s (%s)", cfg.Port, cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Println("Server exited")
}

func setupLogging(verbose bool) {
	logFlags := log.LstdFlags
	if verbose {
		logFlags |= log.Lshortfile
	}
	logger = log.New(os.Stdout, "collabspace: ", logFlags)
}
