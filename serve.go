package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"faq-assistant/ai"
	"faq-assistant/config"
	"faq-assistant/handlers"
	"faq-assistant/helper"
	"faq-assistant/middleware"
	"faq-assistant/repositories"
	"faq-assistant/router"
	"faq-assistant/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Port = port
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "override the configured port")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	if cfg.Database.AutoMigrate {
		if err := repositories.AutoMigrate(db); err != nil {
			return err
		}
	}

	hasher, err := services.NewBcryptHasher(cfg.Security.PasswordSalt)
	if err != nil {
		return err
	}
	tokens, err := services.NewTokenService(cfg.JWT)
	if err != nil {
		return err
	}

	var generator services.AnswerGenerator = ai.Disabled{}
	if claude, err := ai.NewClaudeGenerator(cfg.AI); err == nil {
		generator = claude
	} else {
		slog.Warn("ai answers disabled", "reason", err)
	}

	repos := repositories.NewRepositories(db)
	uow := repositories.NewUnitOfWork(db)

	h := helper.NewHTTPHelper()
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(router.Handlers{
		Auth:     handlers.NewAuthHandler(services.NewAuthService(repos, uow, hasher, tokens), h),
		User:     handlers.NewUserHandler(services.NewUserService(repos, uow), h),
		Category: handlers.NewCategoryHandler(services.NewCategoryService(repos, uow), h),
		Tag:      handlers.NewTagHandler(services.NewTagService(repos, uow), h),
		Faq: handlers.NewFaqHandler(
			services.NewFaqService(repos, uow),
			services.NewAnswerService(repos, generator, cfg.AI),
			h,
		),
	}, middleware.AuthMiddleware(tokens, h), slog.Default())

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	return nil
}
