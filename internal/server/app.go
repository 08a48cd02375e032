// Package server initializes and runs the lexico API server. It wires the
// configuration, storage backends and HTTP transport together and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dbellanger/lexico/internal/logging"
	"github.com/dbellanger/lexico/internal/server/auth"
	"github.com/dbellanger/lexico/internal/server/config"
	"github.com/dbellanger/lexico/internal/server/httpapi"
	"github.com/dbellanger/lexico/internal/server/password"
	"github.com/dbellanger/lexico/internal/server/shared/db"
	"github.com/dbellanger/lexico/internal/server/users"
	"github.com/dbellanger/lexico/internal/server/words"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	manager     db.RepositoryManager
	tokens      *auth.TokenManager
	userService *users.Service
	wordService *words.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	manager, err := db.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher, err := password.NewHasher(password.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	tokens := auth.NewTokenManager(auth.Config{
		SecretKey: []byte(c.SecretKey),
		Issuer:    c.TokenIssuer,
		Audience:  c.TokenAudience,
		Lifetime:  c.TokenLifetime,
		Leeway:    c.TokenLeeway,
	})

	us := users.NewService(manager.Users(), hasher, tokens, c.StoreTimeout)
	ws := words.NewService(manager.Words(), c.StoreTimeout)

	return &App{
		config:      c,
		logger:      logger,
		manager:     manager,
		tokens:      tokens,
		userService: us,
		wordService: ws,
	}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	router := httpapi.NewRouter(
		httpapi.NewAuthHandler(app.userService, app.logger),
		httpapi.NewWordHandler(app.wordService, app.logger),
		app.tokens,
		app.logger,
	)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: router,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, err.Error())
		}
	}()

	app.logger.Info(ctx, "listening", "addr", app.config.EndpointAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
