package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	trmcontext "github.com/avito-tech/go-transaction-manager/trm/v2/context"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/innnova/pending/internal/cli"
	"github.com/innnova/pending/internal/config"
	"github.com/innnova/pending/internal/identity"
	"github.com/innnova/pending/internal/migrations"
	"github.com/innnova/pending/internal/orders"
	"github.com/innnova/pending/internal/profile"
	"github.com/innnova/pending/internal/session"
	"github.com/innnova/pending/pkg/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	sqldblogger "github.com/simukti/sqldb-logger"
)

// Version indicates the current version of the application.
var Version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Application run context, released on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Load application configurations.
	cfg := config.MustLoad()

	// Create root logger tagged with the application version.
	logger := logger.New(cfg).With(ctx, "version", Version)

	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("failed to open the database: %w", err)
	}

	// Log every query to the database.
	db = sqldblogger.OpenDriver(cfg.DSN, db.Driver(), logger)

	// Check connectivity and DSN correctness.
	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}

	// Close connection.
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error(err)
		}
		_ = logger.Sync()
	}()

	// Bring the schema up to date.
	if err = migrations.Up(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create default transaction manager for database/sql package.
	trManager := manager.Must(
		trmsql.NewDefaultFactory(db),
		manager.WithCtxManager(trmcontext.DefaultManager),
	)

	// Local session marker.
	sessionStore, err := session.NewStore(cfg.Session.Path)
	if err != nil {
		return fmt.Errorf("failed to init session store: %w", err)
	}

	// Init identity provider.
	identityRepo, err := identity.NewRepository(db, trmsql.DefaultCtxGetter, logger)
	if err != nil {
		return fmt.Errorf("failed to init identity repository: %w", err)
	}
	identityService, err := identity.NewService(identityRepo, trManager, logger, cfg)
	if err != nil {
		return fmt.Errorf("failed to init identity service: %w", err)
	}

	// Init order service.
	orderRepo, err := orders.NewRepository(db, trmsql.DefaultCtxGetter, logger)
	if err != nil {
		return fmt.Errorf("failed to init order repository: %w", err)
	}
	orderService, err := orders.NewService(orderRepo, logger)
	if err != nil {
		return fmt.Errorf("failed to init order service: %w", err)
	}

	// Init profile service.
	profileRepo, err := profile.NewRepository(db, trmsql.DefaultCtxGetter, logger)
	if err != nil {
		return fmt.Errorf("failed to init profile repository: %w", err)
	}
	profileService, err := profile.NewService(profileRepo, logger)
	if err != nil {
		return fmt.Errorf("failed to init profile service: %w", err)
	}

	logger.Infof("pending %v starting", Version)

	app := cli.NewApp(orderService, profileService, identityService, sessionStore, logger)

	return app.Run(ctx)
}
