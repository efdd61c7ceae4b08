package service

import (
	"context"

	"storefront/internal/checkout"
	"storefront/internal/model"
	"storefront/internal/session"

	"github.com/rs/zerolog"
)

// sessionService implements SessionService.
type sessionService struct {
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(sessions *session.Manager, logger zerolog.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		logger:   logger.With().Str("service", "session").Logger(),
	}
}

func (s *sessionService) Create(ctx context.Context) (*SessionView, error) {
	st, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(st), nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*SessionView, error) {
	st, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return summarize(st), nil
}

func (s *sessionService) Navigate(ctx context.Context, sessionID string, req model.NavigateRequest) (*SessionView, error) {
	target, ok := session.ParseView(req.View)
	if !ok {
		return nil, model.ErrInvalidView
	}

	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		session.Navigate(st, target, req.Product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summarize(st), nil
}

func summarize(st *session.State) *SessionView {
	v := &SessionView{
		ID:        st.ID,
		View:      st.View,
		CartCount: st.Cart.Count(),
		SignedIn:  st.SignedIn(),
	}
	if st.User != nil {
		v.Nama = st.User.Nama
	}
	return v
}

// refreshStage recomputes the checkout stage after the cart, account or
// selection changed. A payment in flight keeps its stage, and a completed
// checkout stays completed until the cart is used again.
func refreshStage(st *session.State) {
	switch {
	case st.Stage == checkout.StageProcessing:
	case len(st.Cart) == 0:
		if st.Stage != checkout.StageCompleted {
			st.Stage = checkout.StageIdle
		}
	default:
		st.Stage = checkout.Evaluate(st.User, st.Checkout)
	}
}
