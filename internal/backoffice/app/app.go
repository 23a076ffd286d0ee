package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aikidoconnect/backoffice/internal/backoffice/http"
	"github.com/aikidoconnect/backoffice/internal/backoffice/service"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store/drivers/sqlite"
	"github.com/aikidoconnect/backoffice/pkg/cryptox"
	"github.com/aikidoconnect/backoffice/pkg/jwtx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application wires the backoffice together: store, services, HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *jwtx.Signer

	identityService     *service.IdentityService
	bootstrapService    *service.BootstrapService
	invitationService   *service.InvitationService
	accountService      *service.AccountService
	authorizeService    *service.AuthorizeService
	sheetService        *service.SheetService
	videoService        *service.VideoService
	statsService        *service.StatsService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "backoffice",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	key, err := jwtx.LoadOrGenerateKey(cfg.SessionKeyFile)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session key: %w", err)
	}
	app.signer = jwtx.NewSigner(key)
	verifier := jwtx.NewVerifier(key, cfg.Issuer)

	app.initServices()
	app.initHTTP(verifier)

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("backoffice starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown drains the server, stops housekeeping, and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down backoffice...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("backoffice stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.identityService = &service.IdentityService{
		Store:      app.db,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
		ResetTTL:   app.cfg.ResetTTL,
	}
	app.bootstrapService = &service.BootstrapService{
		Store:           app.db,
		Token:           app.cfg.BootstrapToken,
		SuperAdminEmail: app.cfg.SuperAdminEmail,
	}
	app.invitationService = &service.InvitationService{
		Store: app.db,
		TTL:   app.cfg.InviteTTL,
	}
	app.accountService = &service.AccountService{
		Store:           app.db,
		SuperAdminEmail: app.cfg.SuperAdminEmail,
	}
	app.authorizeService = &service.AuthorizeService{Store: app.db}
	app.sheetService = &service.SheetService{Store: app.db}
	app.videoService = &service.VideoService{Store: app.db}
	app.statsService = &service.StatsService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP(verifier *jwtx.Verifier) {
	router := httpapi.NewRouter(verifier, BuildVersion, app.db, app.logger)

	router.IdentityService = app.identityService
	router.BootstrapService = app.bootstrapService
	router.InvitationService = app.invitationService
	router.AccountService = app.accountService
	router.AuthorizeService = app.authorizeService
	router.SheetService = app.sheetService
	router.VideoService = app.videoService
	router.StatsService = app.statsService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
