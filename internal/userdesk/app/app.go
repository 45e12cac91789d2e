package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/userdesk/internal/userdesk/http"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/service"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/store"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/store/drivers/postgres"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/store/drivers/sqlite"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/web"
	"github.com/aussiebroadwan/userdesk/pkg/cryptox"
	"github.com/aussiebroadwan/userdesk/pkg/httpx"
	"github.com/aussiebroadwan/userdesk/pkg/jwtx"
	"github.com/aussiebroadwan/userdesk/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application owns the userdesk service and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	hasher *cryptox.BcryptHasher
	codec  *jwtx.HS256Codec

	sessionService   *service.SessionService
	userService      *service.UserService
	bootstrapService *service.BootstrapService

	server *http.Server
	router *httpapi.Router
}

// New opens the store, bootstraps the admin account and builds the HTTP
// server. Nothing listens until Run is called.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "userdesk",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx := context.Background()

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.bootstrap(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initHTTP(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("userdesk starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests within the grace period and closes the
// store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down userdesk...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("userdesk stopped")
	return nil
}

// initDatabase opens the configured driver and applies its migrations.
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(app.cfg.DatabaseFile)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

func (app *Application) initServices() error {
	if app.cfg.SecretKey == DefaultSecretKey {
		app.logger.Warn("JWT_SECRET_KEY is not set, sessions are signed with the built-in default key")
	}

	codec, err := jwtx.NewHS256Codec([]byte(app.cfg.SecretKey), jwtx.CodecOptions{TTL: app.cfg.SessionTTL})
	if err != nil {
		return fmt.Errorf("failed to initialize session codec: %w", err)
	}
	app.codec = codec
	app.hasher = cryptox.NewBcryptHasher(app.cfg.BcryptCost)

	app.sessionService = &service.SessionService{
		Store:  app.db,
		Hasher: app.hasher,
		Codec:  app.codec,
	}
	app.userService = &service.UserService{Store: app.db, Hasher: app.hasher}
	app.bootstrapService = &service.BootstrapService{Store: app.db, Hasher: app.hasher}
	return nil
}

// bootstrap makes sure an admin account exists before the listener starts.
func (app *Application) bootstrap(ctx context.Context) error {
	created, err := app.bootstrapService.EnsureAdmin(slogx.WithContext(ctx, app.logger), domain.BootstrapData{
		AdminUsername:          app.cfg.AdminUsername,
		AdminPassword:          app.cfg.AdminPassword,
		AdminProfilePictureURL: app.cfg.AdminPictureURL,
	})
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	if created && app.cfg.AdminPassword == DefaultAdminPassword {
		app.logger.Warn("bootstrap admin created with the default password, change it",
			"username", app.cfg.AdminUsername)
	}
	return nil
}

func (app *Application) initHTTP() error {
	pages, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	router := httpapi.NewRouter(
		httpx.SessionCookie{
			Name:   app.cfg.SessionCookieName,
			Secure: app.cfg.SessionCookieSecure,
		},
		pages,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.SessionService = app.sessionService
	router.UserService = app.userService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}
