package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/kunalkt5656/Taskflow/internal/auth"
	config "github.com/kunalkt5656/Taskflow/internal/configs"
	httpapi "github.com/kunalkt5656/Taskflow/internal/http"
	middleware "github.com/kunalkt5656/Taskflow/internal/http/middlewares"
	"github.com/kunalkt5656/Taskflow/internal/logger"
	repository "github.com/kunalkt5656/Taskflow/internal/repositories"
	"github.com/kunalkt5656/Taskflow/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracking HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Init("taskflow")

		if err := godotenv.Load(); err != nil {
			log.Info(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
		authService := services.NewAuthService(userRepo, tokens)
		userService := services.NewUserService(userRepo)
		taskService := services.NewTaskService(taskRepo, userRepo)
		reportService := services.NewReportService(taskRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		e.Use(middleware.RequestLogger(log))
		e.Use(middleware.Metrics())

		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			e.Use(middleware.RedisRateLimiter(redisClient, log, cfg.RateLimit, time.Minute))
		} else {
			e.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))
		}

		handler := httpapi.NewHandler(authService, userService, taskService, reportService, cfg.UploadDir, log)
		httpapi.Register(e, handler, authService)

		go func() {
			log.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Infof("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
