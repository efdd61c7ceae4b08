package account

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const avatarURL = "https://picsum.photos/seed/%s/200"

// Service registers and authenticates accounts against a Store.
type Service struct {
	store  Store
	cost   int
	logger zerolog.Logger
}

// NewService creates an account service.
func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		cost:   bcrypt.DefaultCost,
		logger: logger.With().Str("service", "account").Logger(),
	}
}

// Register creates an account after checking the phone number is unused.
// It returns the new account and the credential to keep in the session.
func (s *Service) Register(ctx context.Context, nama, phone, password string) (model.UserAccount, string, error) {
	nama, phone = strings.TrimSpace(nama), strings.TrimSpace(phone)
	switch {
	case nama == "":
		return model.UserAccount{}, "", model.MissingField("nama")
	case phone == "":
		return model.UserAccount{}, "", model.MissingField("phone")
	case password == "":
		return model.UserAccount{}, "", model.MissingField("password")
	}

	existing, err := s.store.Query(ctx, Where(FieldPhone, phone))
	if err != nil {
		return model.UserAccount{}, "", fmt.Errorf("failed to check phone: %w", err)
	}
	if len(existing) > 0 {
		return model.UserAccount{}, "", model.ErrPhoneRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return model.UserAccount{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	record, err := s.store.Create(ctx, Fields{
		FieldNama:              nama,
		FieldPhone:             phone,
		FieldPassword:          string(hash),
		FieldAvatar:            fmt.Sprintf(avatarURL, phone),
		FieldMembershipPoints:  0,
		FieldMembershipBalance: 0,
		FieldOrders:            emptyList,
		FieldWishlist:          "",
		FieldPaymentMethods:    emptyList,
		FieldShippingAddresses: emptyList,
		FieldNotifications:     emptyList,
	})
	if err != nil {
		return model.UserAccount{}, "", fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info().Str("user_id", record.ID).Msg("account registered")
	return ToAccount(record), string(hash), nil
}

// Login looks the account up by phone and verifies the password.
func (s *Service) Login(ctx context.Context, phone, password string) (model.UserAccount, string, error) {
	records, err := s.store.Query(ctx, Where(FieldPhone, strings.TrimSpace(phone)))
	if err != nil {
		return model.UserAccount{}, "", fmt.Errorf("failed to query account: %w", err)
	}

	for _, r := range records {
		stored := stringField(r.Fields, FieldPassword, "")
		credential, ok := s.verify(ctx, r.ID, stored, password)
		if ok {
			return ToAccount(r), credential, nil
		}
	}

	return model.UserAccount{}, "", model.ErrInvalidCredentials
}

// Reauthenticate restores an account from a credential kept in the session.
// A changed password or a deleted record invalidates the credential.
func (s *Service) Reauthenticate(ctx context.Context, phone, credential string) (model.UserAccount, error) {
	if phone == "" || credential == "" {
		return model.UserAccount{}, model.ErrInvalidCredentials
	}

	records, err := s.store.Query(ctx, Where(FieldPhone, phone))
	if err != nil {
		return model.UserAccount{}, fmt.Errorf("failed to query account: %w", err)
	}

	for _, r := range records {
		stored := stringField(r.Fields, FieldPassword, "")
		if subtle.ConstantTimeCompare([]byte(stored), []byte(credential)) == 1 {
			return ToAccount(r), nil
		}
	}

	return model.UserAccount{}, model.ErrInvalidCredentials
}

// verify checks a password against the stored value. Records written before
// hashing was introduced hold the plain password; those are upgraded to a
// hash on a successful login.
func (s *Service) verify(ctx context.Context, id, stored, password string) (string, bool) {
	if stored == "" {
		return "", false
	}

	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	if err == nil {
		return stored, true
	}
	if isHash(stored) {
		return "", false
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return "", false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("failed to hash legacy password")
		return stored, true
	}
	if err := s.store.Update(ctx, id, Fields{FieldPassword: string(hash)}); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("failed to upgrade legacy password")
		return stored, true
	}

	s.logger.Info().Str("user_id", id).Msg("legacy password upgraded")
	return string(hash), true
}

func isHash(s string) bool {
	return strings.HasPrefix(s, "$2")
}
