package service

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/account"
	"storefront/internal/model"
	"storefront/internal/session"
	"storefront/internal/wishlist"

	"github.com/rs/zerolog"
)

// accountService implements AccountService.
type accountService struct {
	auth     Authenticator
	syncer   AccountSyncer
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(auth Authenticator, syncer AccountSyncer, sessions *session.Manager, logger zerolog.Logger) AccountService {
	return &accountService{
		auth:     auth,
		syncer:   syncer,
		sessions: sessions,
		logger:   logger.With().Str("service", "account").Logger(),
	}
}

func (s *accountService) Register(ctx context.Context, sessionID string, req model.RegisterRequest) (*AuthView, error) {
	if _, err := s.sessions.View(ctx, sessionID); err != nil {
		return nil, err
	}

	user, credential, err := s.auth.Register(ctx, req.Nama, req.Phone, req.Password)
	if err != nil {
		return nil, err
	}
	return s.signIn(ctx, sessionID, user, credential)
}

func (s *accountService) Login(ctx context.Context, sessionID string, req model.LoginRequest) (*AuthView, error) {
	if strings.TrimSpace(req.Phone) == "" || req.Password == "" {
		return nil, model.ErrInvalidCredentials
	}
	if _, err := s.sessions.View(ctx, sessionID); err != nil {
		return nil, err
	}

	user, credential, err := s.auth.Login(ctx, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			s.logger.Info().Str("session_id", sessionID).Msg("login rejected")
		}
		return nil, err
	}
	return s.signIn(ctx, sessionID, user, credential)
}

func (s *accountService) signIn(ctx context.Context, sessionID string, user model.UserAccount, credential string) (*AuthView, error) {
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.SignIn(user, credential)
		session.AfterLogin(st)
		refreshStage(st)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("session_id", sessionID).Str("user_id", user.ID).Msg("signed in")
	return &AuthView{User: *st.User, View: st.View}, nil
}

func (s *accountService) Logout(ctx context.Context, sessionID string) (*SessionView, error) {
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.SignOut()
		refreshStage(st)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summarize(st), nil
}

func (s *accountService) Me(ctx context.Context, sessionID string) (*model.UserAccount, error) {
	st, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !st.SignedIn() || st.User == nil {
		return nil, model.ErrLoginRequired
	}
	return st.User, nil
}

// UpdateProfile applies the non-nil fields. A phone change also moves the
// session credential to the new phone so silent re-login keeps working.
func (s *accountService) UpdateProfile(ctx context.Context, sessionID string, req model.ProfileUpdateRequest) (*model.UserAccount, error) {
	fields := account.Fields{}
	if req.Nama != nil {
		if strings.TrimSpace(*req.Nama) == "" {
			return nil, model.MissingField("nama")
		}
		fields[account.FieldNama] = *req.Nama
	}
	if req.Phone != nil {
		if strings.TrimSpace(*req.Phone) == "" {
			return nil, model.MissingField("phone")
		}
		fields[account.FieldPhone] = *req.Phone
	}
	if req.Avatar != nil {
		fields[account.FieldAvatar] = *req.Avatar
	}

	return s.updateUser(ctx, sessionID, fields, func(u *model.UserAccount) error {
		if req.Nama != nil {
			u.Nama = *req.Nama
		}
		if req.Phone != nil {
			u.Phone = *req.Phone
		}
		if req.Avatar != nil {
			u.Avatar = *req.Avatar
		}
		return nil
	})
}

func (s *accountService) SaveAddress(ctx context.Context, sessionID string, req model.AddressRequest) (*model.UserAccount, error) {
	nama, phone := strings.TrimSpace(req.Nama), strings.TrimSpace(req.Phone)
	switch {
	case nama == "":
		return nil, model.MissingField("nama")
	case phone == "":
		return nil, model.MissingField("phone")
	}
	if err := req.Address.Validate(); err != nil {
		return nil, err
	}

	stored := req.Address.String()
	fields := account.Fields{
		account.FieldNama:              nama,
		account.FieldPhone:             phone,
		account.FieldShippingAddresses: stored,
	}

	return s.updateUser(ctx, sessionID, fields, func(u *model.UserAccount) error {
		u.Nama = nama
		u.Phone = phone
		u.ShippingAddresses = stored
		return nil
	})
}

func (s *accountService) SavePaymentMethod(ctx context.Context, sessionID string, req model.PaymentMethodRequest) (*model.UserAccount, error) {
	if strings.TrimSpace(req.PaymentMethods) == "" {
		return nil, model.MissingField("paymentMethods")
	}

	fields := account.Fields{account.FieldPaymentMethods: req.PaymentMethods}
	return s.updateUser(ctx, sessionID, fields, func(u *model.UserAccount) error {
		u.PaymentMethods = req.PaymentMethods
		return nil
	})
}

// ToggleWishlist adds or removes the product. Sessions that are not signed in
// are sent to the login view.
func (s *accountService) ToggleWishlist(ctx context.Context, sessionID string, product model.Product) (*WishlistToggle, error) {
	if product.Title == "" {
		return nil, model.MissingField("product.title")
	}

	var (
		added    bool
		loggedIn bool
		userID   string
	)
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		if !st.SignedIn() || st.User == nil {
			session.Navigate(st, session.ViewLogin, st.SelectedProduct)
			return nil
		}
		loggedIn = true

		updated, ok, err := wishlist.Toggle(*st.User, product)
		if err != nil {
			return err
		}
		added = ok
		userID = updated.ID
		st.User = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !loggedIn {
		return nil, model.ErrLoginRequired
	}

	s.syncer.Push(userID, account.Fields{account.FieldWishlist: st.User.Wishlist})

	return &WishlistToggle{
		Added:   added,
		Entries: wishlist.Decode(st.User.Wishlist),
	}, nil
}

func (s *accountService) Wishlist(ctx context.Context, sessionID string) ([]wishlist.Entry, error) {
	user, err := s.Me(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return wishlist.Decode(user.Wishlist), nil
}

// updateUser applies apply to the signed-in account, keeps the session
// consistent and pushes fields to the account store in the background.
func (s *accountService) updateUser(ctx context.Context, sessionID string, fields account.Fields, apply func(u *model.UserAccount) error) (*model.UserAccount, error) {
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		if !st.SignedIn() || st.User == nil {
			return model.ErrLoginRequired
		}

		u := *st.User
		if err := apply(&u); err != nil {
			return err
		}
		st.User = &u
		st.Auth.Phone = u.Phone
		refreshStage(st)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.syncer.Push(st.User.ID, fields)
	return st.User, nil
}
