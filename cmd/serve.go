package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	config "github.com/Zzz-puppy/working-calendar/internal/configs"
	httpapi "github.com/Zzz-puppy/working-calendar/internal/http"
	middleware "github.com/Zzz-puppy/working-calendar/internal/http/middlewares"
	repository "github.com/Zzz-puppy/working-calendar/internal/repositories"
	"github.com/Zzz-puppy/working-calendar/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task and statistics HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

		if err := godotenv.Load(); err != nil {
			logger.Info().Msg(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabase(cfg.DatabaseDSN)
		taskRepo := repository.NewTaskRepository(database)

		taskService := services.NewTaskService(taskRepo, logger)
		statsService := services.NewStatsService(taskRepo, logger)

		rateLimiter := middleware.RateLimiter(cfg.RateLimit, time.Minute)
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			rateLimiter = middleware.RedisRateLimiter(redisClient, cfg.RateLimit, time.Minute)
		}

		e := echo.New()
		handler := httpapi.NewHandler(taskService, statsService)
		httpapi.Register(e, handler, logger, rateLimiter)

		go func() {
			logger.Info().Str("addr", cfg.AppURL).Msg("HTTP server listening")
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info().Err(err).Msg("server stopped")
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		logger.Info().Msg("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
