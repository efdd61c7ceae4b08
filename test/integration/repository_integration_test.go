package integration

import (
	"context"
	"testing"
	"time"

	"storefront/internal/account"
	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	store := account.NewPostgresStore(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create fills column defaults", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		record, err := store.Create(ctx, account.Fields{
			account.FieldNama:  "Sari",
			account.FieldPhone: "0811",
		})
		require.NoError(t, err)
		require.NotEmpty(t, record.ID)

		user := account.ToAccount(record)
		assert.Equal(t, "Sari", user.Nama)
		assert.Equal(t, "[]", user.Orders)
		assert.Equal(t, "", user.Wishlist)
		assert.Equal(t, int64(0), user.MembershipPoints)
	})

	t.Run("Query matches every condition", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		_, err := store.Create(ctx, account.Fields{account.FieldNama: "A", account.FieldPhone: "0811", account.FieldPassword: "x"})
		require.NoError(t, err)
		_, err = store.Create(ctx, account.Fields{account.FieldNama: "B", account.FieldPhone: "0812", account.FieldPassword: "x"})
		require.NoError(t, err)

		records, err := store.Query(ctx, account.Where(account.FieldPhone, "0812").And(account.FieldPassword, "x"))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "B", records[0].Fields[account.FieldNama])

		records, err = store.Query(ctx, account.Where(account.FieldPhone, "0812").And(account.FieldPassword, "y"))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Query rejects unknown fields", func(t *testing.T) {
		_, err := store.Query(ctx, account.Where("email", "a@b.c"))
		assert.Error(t, err)
	})

	t.Run("Update applies a partial update", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		record, err := store.Create(ctx, account.Fields{account.FieldNama: "A", account.FieldPhone: "0811"})
		require.NoError(t, err)

		require.NoError(t, store.Update(ctx, record.ID, account.Fields{
			account.FieldWishlist:          "BUDS|Galaxy Buds3 Pro",
			account.FieldMembershipPoints:  150,
			account.FieldShippingAddresses: "DKI Jakarta,Jakarta Selatan,Tebet,Manggarai,12850,Jl. Sahardjo 1",
		}))

		records, err := store.Query(ctx, account.Where(account.FieldPhone, "0811"))
		require.NoError(t, err)
		require.Len(t, records, 1)

		user := account.ToAccount(records[0])
		assert.Equal(t, "A", user.Nama)
		assert.Equal(t, "BUDS|Galaxy Buds3 Pro", user.Wishlist)
		assert.Equal(t, int64(150), user.MembershipPoints)
		assert.True(t, user.HasAddress())
	})

	t.Run("Update of a missing user fails", func(t *testing.T) {
		err := store.Update(ctx, "00000000-0000-0000-0000-000000000000", account.Fields{account.FieldNama: "X"})
		assert.Error(t, err)
	})
}

func TestAccountService_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	store := account.NewPostgresStore(testDB.Pool, logger)
	accounts := account.NewService(store, logger)

	ctx := context.Background()

	t.Run("register then login", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		user, credential, err := accounts.Register(ctx, "Budi", "0813", "rahasia")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "rahasia", credential)

		_, _, err = accounts.Register(ctx, "Budi", "0813", "lain")
		assert.ErrorIs(t, err, model.ErrPhoneRegistered)

		loggedIn, loginCredential, err := accounts.Login(ctx, "0813", "rahasia")
		require.NoError(t, err)
		assert.Equal(t, user.ID, loggedIn.ID)
		assert.Equal(t, credential, loginCredential)

		_, _, err = accounts.Login(ctx, "0813", "salah")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)

		restored, err := accounts.Reauthenticate(ctx, "0813", credential)
		require.NoError(t, err)
		assert.Equal(t, "Budi", restored.Nama)
	})

	t.Run("legacy plain password is upgraded on login", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		record, err := store.Create(ctx, account.Fields{
			account.FieldNama:     "Lama",
			account.FieldPhone:    "0814",
			account.FieldPassword: "plain",
		})
		require.NoError(t, err)

		_, credential, err := accounts.Login(ctx, "0814", "plain")
		require.NoError(t, err)
		assert.NotEqual(t, "plain", credential)

		records, err := store.Query(ctx, account.Where(account.FieldPhone, "0814"))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, record.ID, records[0].ID)
		assert.Equal(t, credential, records[0].Fields[account.FieldPassword])

		_, _, err = accounts.Login(ctx, "0814", "plain")
		assert.NoError(t, err)
	})

	t.Run("syncer pushes profile changes", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		user, credential, err := accounts.Register(ctx, "Budi", "0815", "rahasia")
		require.NoError(t, err)

		syncer := account.NewSyncer(store, 5*time.Second, logger)
		syncer.Push(user.ID, account.Fields{account.FieldNama: "Budi Santoso"})
		syncer.Wait()

		restored, err := accounts.Reauthenticate(ctx, "0815", credential)
		require.NoError(t, err)
		assert.Equal(t, "Budi Santoso", restored.Nama)
	})
}
