package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a migrated test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	Config    config.DatabaseConfig
}

// SetupTestDB starts a PostgreSQL container, applies the migrations and opens
// a pool the same way the API server does.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
		MigrationsPath:  "../../migrations",
	}

	logger := zerolog.Nop()
	if err := database.Migrate(dbConfig, logger); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	pool, err := database.NewPool(ctx, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		Config:    dbConfig,
	}
}

// SetupRedis starts an in-process Redis for the session mirror.
func SetupRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
	})

	return client
}

// TestProducts is the catalog served by the fake sheet.
var TestProducts = []model.Product{
	{
		Title: "Galaxy Buds3 Pro", Price: "1.500.000", SalePrice: "1.200.000", DiscountPercentage: "20",
		ImageLink: "https://img.test/buds-black.png", Rating: "490", Sold: "2.1rb",
		ItemGroupID: "BUDS", FlashSale: "TRUE", EventTag: "flashsale", Category: "Audio", Color: "Black",
		QuantityToSell: "64%",
	},
	{
		Title: "Galaxy Buds3 Pro", Price: "1.500.000", SalePrice: "1.200.000", DiscountPercentage: "20",
		ImageLink: "https://img.test/buds-white.png", Rating: "490", Sold: "2.1rb",
		ItemGroupID: "BUDS", Category: "Audio", Color: "White",
	},
	{
		Title: "Galaxy Watch7", Price: "4.499.000", ImageLink: "https://img.test/watch-40.png",
		Rating: "475", Sold: "830", ItemGroupID: "WATCH", Category: "Wearable",
		Size: "40mm", Connectivity: "Bluetooth",
	},
	{
		Title: "Galaxy Watch7", Price: "5.799.000", ImageLink: "https://img.test/watch-44-lte.png",
		Rating: "475", Sold: "830", ItemGroupID: "WATCH", Category: "Wearable",
		Size: "44mm", Connectivity: "LTE",
	},
}

// SetupSheet serves the products as the catalog sheet would.
func SetupSheet(t *testing.T, products []model.Product) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(products)
	}))
	t.Cleanup(srv.Close)

	return srv
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "users"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
