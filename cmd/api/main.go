package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/account"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"
	"storefront/internal/session"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// Sessions idle this long are dropped from memory; Redis keeps them.
	sessionIdle   = 30 * time.Minute
	sweepInterval = 5 * time.Minute
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Apply migrations before the pool starts serving queries
	if err := database.Migrate(cfg.Database, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize Redis session mirror
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	sessionStore := session.NewRedisStore(redisClient, cfg.Redis.SessionTTLDuration())
	if err := sessionStore.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Initialize catalog with snapshot fallback
	products := newCatalog(ctx, cfg, logger)
	if n, err := products.Refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("catalog not loaded at startup, serving empty catalog until refresh")
	} else {
		logger.Info().Int("products", n).Msg("catalog loaded")
	}

	// Initialize account store, authentication and background sync
	accountStore := newAccountStore(cfg, pool, logger)
	accounts := account.NewService(accountStore, logger)
	syncer := account.NewSyncer(accountStore, time.Duration(cfg.Accounts.SyncTimeout)*time.Second, logger)

	// Initialize sessions; stored sessions re-authenticate on first use
	sessions := session.NewManager(sessionStore, service.NewHydrator(accounts, logger), logger)

	// Initialize repositories and checkout
	orderRepo := repository.NewOrderRepository(pool, logger)
	orchestrator := checkout.NewOrchestrator(checkout.TimerDelay{}, cfg.Checkout.PlatformFee, cfg.Checkout.PaymentDelay(), logger)

	// Initialize services
	sessionService := service.NewSessionService(sessions, logger)
	productService := service.NewProductService(products, sessions, logger)
	cartService := service.NewCartService(products, sessions, cart.NewLedger(cart.DefaultIdentity), logger)
	accountService := service.NewAccountService(accounts, syncer, sessions, logger)
	checkoutService := service.NewCheckoutService(sessions, orchestrator, orderRepo, logger)

	// Initialize router
	mux := router.New(router.Handlers{
		Session:  handler.NewSessionHandler(sessionService, logger),
		Product:  handler.NewProductHandler(productService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Account:  handler.NewAccountHandler(accountService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
		Order:    handler.NewOrderHandler(checkoutService, logger),
	}, cfg.Auth.APIKey, logger)

	go sweepSessions(ctx, sessions, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15*time.Second + cfg.Checkout.PaymentDelay(),
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		// Let pending account pushes finish
		syncer.Wait()

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newCatalog builds the catalog over the live sheet with snapshot fallback
// from S3 and the local file system.
func newCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) *catalog.Catalog {
	source := catalog.NewSheetSource(cfg.Catalog.URL, time.Duration(cfg.Catalog.Timeout)*time.Second, logger)
	fileLoader := catalog.NewFileSnapshotLoader(logger)

	var s3Loader catalog.SnapshotLoader
	if cfg.S3.Enabled {
		loader, err := catalog.NewS3SnapshotLoader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = loader
		}
	} else {
		logger.Info().Msg("using local file system for catalog snapshots (S3 disabled)")
	}

	snapshots := catalog.NewFallbackSnapshotLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
	return catalog.NewCatalog(source, snapshots, cfg.Catalog.SnapshotPath, logger)
}

func newAccountStore(cfg *config.Config, pool *pgxpool.Pool, logger zerolog.Logger) account.Store {
	if cfg.Accounts.Backend == config.AccountBackendPostgres {
		logger.Info().Msg("using PostgreSQL account store")
		return account.NewPostgresStore(pool, logger)
	}

	logger.Info().Str("url", cfg.Accounts.URL).Msg("using record API account store")
	return account.NewRecordAPIClient(account.RecordAPIConfig{
		URL:     cfg.Accounts.URL,
		Base:    cfg.Accounts.Base,
		Table:   cfg.Accounts.Table,
		Token:   cfg.Accounts.Token,
		Timeout: time.Duration(cfg.Accounts.SyncTimeout) * time.Second,
	}, logger)
}

func sweepSessions(ctx context.Context, sessions *session.Manager, logger zerolog.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(sessionIdle); n > 0 {
				logger.Debug().Int("evicted", n).Msg("idle sessions swept")
			}
		}
	}
}
