package service

import (
	"context"
	"testing"
	"time"

	"storefront/internal/account"
	"storefront/internal/model"
	"storefront/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalog is a mock implementation of Catalog.
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Products() []model.Product {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Product)
}

func (m *MockCatalog) Loaded() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockCatalog) Refresh(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockAuthenticator is a mock implementation of Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Register(ctx context.Context, nama, phone, password string) (model.UserAccount, string, error) {
	args := m.Called(ctx, nama, phone, password)
	return args.Get(0).(model.UserAccount), args.String(1), args.Error(2)
}

func (m *MockAuthenticator) Login(ctx context.Context, phone, password string) (model.UserAccount, string, error) {
	args := m.Called(ctx, phone, password)
	return args.Get(0).(model.UserAccount), args.String(1), args.Error(2)
}

func (m *MockAuthenticator) Reauthenticate(ctx context.Context, phone, credential string) (model.UserAccount, error) {
	args := m.Called(ctx, phone, credential)
	return args.Get(0).(model.UserAccount), args.Error(1)
}

// MockSyncer is a mock implementation of AccountSyncer.
type MockSyncer struct {
	mock.Mock
}

func (m *MockSyncer) Push(id string, fields account.Fields) {
	m.Called(id, fields)
}

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	// Return a MockTx interface value, not a pointer
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Order), args.Get(1).([]model.OrderItem), args.Error(2)
}

func (m *MockOrderRepository) ListByAccount(ctx context.Context, accountID string, limit int) ([]model.Order, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

// newTestSessions returns a session manager mirrored to miniredis.
func newTestSessions(t *testing.T, hydrate session.HydrateFunc) (*session.Manager, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return session.NewManager(session.NewRedisStore(client, time.Hour), hydrate, zerolog.Nop()), mr
}

// newSession creates a session and returns its id.
func newSession(t *testing.T, sessions *session.Manager) string {
	st, err := sessions.Create(context.Background())
	require.NoError(t, err)
	return st.ID
}

// signIn puts a signed-in account in the session.
func signIn(t *testing.T, sessions *session.Manager, id string, user model.UserAccount) {
	_, err := sessions.Update(context.Background(), id, func(st *session.State) error {
		st.SignIn(user, "$2a$hash")
		return nil
	})
	require.NoError(t, err)
}

const testAddress = "DKI Jakarta,Jakarta Selatan,Kebayoran Baru,Senayan,12190,Jl. Asia Afrika 8"

func testUser() model.UserAccount {
	return model.UserAccount{
		ID:                "rec123",
		Nama:              "Budi",
		Phone:             "08123456789",
		Orders:            "[]",
		PaymentMethods:    "[]",
		ShippingAddresses: testAddress,
		Notifications:     "[]",
	}
}

func testProducts() []model.Product {
	return []model.Product{
		{Title: "Galaxy Buds", Price: "1.500.000", SalePrice: "1.200.000", ItemGroupID: "BUDS", Category: "Audio", Color: "Black", Rating: "480", Sold: "1200", ImageLink: "buds-black.jpg", AdditionalImageLink: "buds-1.jpg, buds-2.jpg"},
		{Title: "Galaxy Buds", Price: "1.500.000", SalePrice: "1.200.000", ItemGroupID: "BUDS", Category: "Audio", Color: "White", Rating: "480", Sold: "1200", ImageLink: "buds-white.jpg"},
		{Title: "Galaxy Watch", Price: "3.000.000", ItemGroupID: "WATCH", Category: "Wearable", Size: "40mm", Connectivity: "Bluetooth", Rating: "470", Sold: "300", EventTag: "flashsale", QuantityToSell: "40%"},
		{Title: "Galaxy Watch", Price: "3.500.000", ItemGroupID: "WATCH", Category: "Wearable", Size: "44mm", Connectivity: "LTE", Rating: "470", Sold: "300"},
		{Title: "Galaxy Watch", Price: "3.200.000", ItemGroupID: "WATCH", Category: "Wearable", Size: "44mm", Connectivity: "Bluetooth", Rating: "470", Sold: "300"},
	}
}

func newTestCatalog() *MockCatalog {
	c := new(MockCatalog)
	c.On("Products").Return(testProducts())
	c.On("Loaded").Return(true)
	return c
}
