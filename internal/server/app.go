// Package server initializes and runs the bank server application:
// configuration, storage, the business services, and the raw TCP listener,
// with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/alinaagnistova/TestTask/internal/cryptox"
	"github.com/alinaagnistova/TestTask/internal/logging"
	"github.com/alinaagnistova/TestTask/internal/server/accounts"
	"github.com/alinaagnistova/TestTask/internal/server/config"
	"github.com/alinaagnistova/TestTask/internal/server/shared/db"
	"github.com/alinaagnistova/TestTask/internal/server/tcp"
	"github.com/alinaagnistova/TestTask/internal/server/users"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	repos          db.RepositoryManager
	userService    *users.Service
	accountService *accounts.Service
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := cryptox.NewHasher(cfg.Pepper)
	us := users.NewService(m.Users(), m, hasher, cfg)
	as := accounts.NewService(m.Accounts())

	return &App{config: cfg, logger: logger, repos: m, userService: us, accountService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startTCPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	handler := tcp.NewHandler(app.userService, app.accountService, app.config.SecretKey)
	s := tcp.NewServer(app.config.Address, handler, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startTCPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
