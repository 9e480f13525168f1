// Package server initializes and runs the jobinow backend: it opens the
// database, applies migrations, wires repositories and services, and starts
// the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jobinow/jobinow/internal/logging"
	"github.com/jobinow/jobinow/internal/server/auth"
	"github.com/jobinow/jobinow/internal/server/config"
	"github.com/jobinow/jobinow/internal/server/httpapi"
	"github.com/jobinow/jobinow/internal/server/repositories/repomanager"
	"github.com/jobinow/jobinow/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	sessionService := services.NewSessionService(db, rm, hasher, logger, cfg)
	userService := services.NewUserService(db, rm)
	offerService := services.NewOfferService(db, rm)
	applyService := services.NewApplyService(db, rm)
	resumeService := services.NewResumeService(cfg)
	subscriptionService := services.NewSubscriptionService(db, rm)
	tagService := services.NewTagService(db, rm)

	srv := httpapi.NewServer(cfg.EndpointAddrHTTP, logger, sessionService,
		userService, offerService, applyService, resumeService,
		subscriptionService, tagService, cfg.SecretKey)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
