// Package main реализует точку входа консольного приложения planboard.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"planboard/internal/tracker/adapters/console"
	"planboard/internal/tracker/adapters/memory"
	"planboard/internal/tracker/app"
	"planboard/internal/tracker/config"
	"planboard/pkg/logger"
	"planboard/pkg/shutdown"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "TRACKER_LOGGER_MODE"
	EnvLoggerLevel = "TRACKER_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogAppStarted      = "planboard started"
	LogAppShutdownDone = "planboard shutdown complete"
	LogInitRepo        = "initializing in-memory stores"
	LogInitUseCases    = "initializing use cases"
	LogInitConsole     = "initializing console menu"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "tracker",
		Short:        "In-memory project and team management console",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}
}

func run() error {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrInitLogger, err)
	}
	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	defer func() {
		if err := log.Sync(); err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
				return
			}
			fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err)
		}
	}()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, ErrLoadConfig, zap.Error(err))
		return err
	}

	finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
	if err != nil {
		log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
		return err
	}
	logger.SetGlobalLogger(finalLogger)
	log = finalLogger

	log.Info(ctx, LogAppStarted,
		zap.String("environment", string(cfg.Logging.GetEnvironment())),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("startup_time", time.Now().Format(time.RFC3339)))

	log.Info(ctx, LogInitRepo)
	userRepo := memory.NewUserRepository()
	projectRepo := memory.NewProjectRepository()
	teamRepo := memory.NewTeamRepository()

	log.Info(ctx, LogInitUseCases)
	userUseCase := app.NewUserUseCase(userRepo, projectRepo, teamRepo)
	projectUseCase := app.NewProjectUseCase(projectRepo, userRepo)
	teamUseCase := app.NewTeamUseCase(teamRepo, userRepo)

	log.Info(ctx, LogInitConsole)
	menu := console.NewMenu(userUseCase, projectUseCase, teamUseCase, os.Stdin, os.Stdout)

	done := make(chan struct{})
	go func() {
		defer close(done)
		menu.Run(ctx)
	}()

	shutdown.Wait(done, cfg.Shutdown.GetTimeout(), func(hookCtx context.Context) error {
		log.Info(hookCtx, LogAppShutdownDone)
		return nil
	})

	return nil
}
