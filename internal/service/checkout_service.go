package service

import (
	"context"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/model"
	"storefront/internal/pricing"
	"storefront/internal/repository"
	"storefront/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	sessions     *session.Manager
	orchestrator *checkout.Orchestrator
	orders       *orderRecorder
	logger       zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	sessions *session.Manager,
	orchestrator *checkout.Orchestrator,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		sessions:     sessions,
		orchestrator: orchestrator,
		orders:       newOrderRecorder(orderRepo, logger),
		logger:       logger.With().Str("service", "checkout").Logger(),
	}
}

func (s *checkoutService) Summary(ctx context.Context, sessionID string) (*CheckoutSummary, error) {
	st, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !st.SignedIn() {
		return nil, model.ErrLoginRequired
	}
	return s.summary(st), nil
}

// Select stores the shipping method and bank. Empty values clear the choice;
// unknown or unavailable ones are rejected.
func (s *checkoutService) Select(ctx context.Context, sessionID string, sel checkout.Selection) (*CheckoutSummary, error) {
	if sel.ShippingMethod != "" {
		opt, ok := pricing.LookupShipping(sel.ShippingMethod)
		if !ok {
			return nil, model.ErrUnknownShippingMethod
		}
		if !opt.Available() {
			return nil, model.ErrShippingUnavailable
		}
	}
	if sel.Bank != "" {
		if _, ok := checkout.LookupBank(sel.Bank); !ok {
			return nil, model.ErrUnknownBank
		}
	}

	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		if !st.SignedIn() {
			return model.ErrLoginRequired
		}
		if st.Stage == checkout.StageProcessing {
			return model.ErrPaymentInProgress
		}
		st.Checkout = sel
		refreshStage(st)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.summary(st), nil
}

// Pay runs the simulated payment. The session is marked as processing while
// the payment runs outside the session lock; the result is applied only if
// the session still waits for this same payment.
func (s *checkoutService) Pay(ctx context.Context, sessionID string) (*model.PaymentDetails, error) {
	var (
		quote checkout.Quote
		user  model.UserAccount
	)
	_, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		if !st.SignedIn() || st.User == nil {
			return model.ErrLoginRequired
		}
		if st.Stage == checkout.StageProcessing {
			return model.ErrPaymentInProgress
		}

		q, err := s.orchestrator.Begin(st.User, st.Checkout, st.Cart)
		if err != nil {
			return err
		}

		quote, user = q, *st.User
		st.Quote = &q
		st.Stage = checkout.StageProcessing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("quote_id", quote.ID).
		Int64("grand_total", quote.Totals.GrandTotal).
		Msg("payment started")

	details, err := s.orchestrator.Complete(ctx, quote)
	if err != nil {
		s.abandon(context.WithoutCancel(ctx), sessionID, quote.ID)
		return nil, err
	}

	st, err := s.sessions.Update(context.WithoutCancel(ctx), sessionID, func(st *session.State) error {
		if st.Stage != checkout.StageProcessing || st.Quote == nil || st.Quote.ID != quote.ID {
			return model.ErrPaymentSuperseded
		}

		st.Cart = cart.Cart{}
		st.Quote = nil
		st.PendingPayment = &details
		st.Stage = checkout.StageCompleted
		session.Navigate(st, session.ViewPayment, nil)
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Str("quote_id", quote.ID).Msg("payment result discarded")
		return nil, err
	}

	if _, err := s.orders.Record(context.WithoutCancel(ctx), accountKey(&user), user.Phone, quote); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to record order")
	}

	return st.PendingPayment, nil
}

// abandon returns a session whose payment failed to its pre-payment stage.
func (s *checkoutService) abandon(ctx context.Context, sessionID, quoteID string) {
	_, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		if st.Stage != checkout.StageProcessing || st.Quote == nil || st.Quote.ID != quoteID {
			return nil
		}
		st.Quote = nil
		st.Stage = checkout.StageIdle
		refreshStage(st)
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to reset checkout")
	}
}

func (s *checkoutService) Payment(ctx context.Context, sessionID string) (*model.PaymentDetails, error) {
	st, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !st.SignedIn() {
		return nil, model.ErrLoginRequired
	}
	if st.PendingPayment == nil {
		return nil, model.ErrPaymentNotFound
	}
	return st.PendingPayment, nil
}

func (s *checkoutService) Orders(ctx context.Context, sessionID string) ([]model.Order, error) {
	st, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !st.SignedIn() || st.User == nil {
		return nil, model.ErrLoginRequired
	}
	return s.orders.List(ctx, accountKey(st.User))
}

func (s *checkoutService) Order(ctx context.Context, sessionID string, orderID uuid.UUID) (*model.OrderResponse, error) {
	st, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !st.SignedIn() || st.User == nil {
		return nil, model.ErrLoginRequired
	}
	return s.orders.Get(ctx, accountKey(st.User), orderID)
}

func (s *checkoutService) summary(st *session.State) *CheckoutSummary {
	totals := s.orchestrator.Totals(st.Cart, st.Checkout)

	out := &CheckoutSummary{
		Stage:          st.Stage,
		Items:          cartLines(st.Cart),
		Totals:         totals,
		GrandTotal:     pricing.FormatIDR(totals.GrandTotal),
		Selection:      st.Checkout,
		Address:        noAddress,
		Carriers:       pricing.Carriers(),
		ShippingMethod: pricing.ShippingMethods(),
		Banks:          checkout.Banks(),
		Provinces:      model.Provinces,
	}
	if addr, ok := st.User.Address(); ok {
		out.Address = addr.Display()
		out.HasAddress = true
	}
	return out
}

// accountKey identifies the account in the order history. Accounts that were
// never stored remotely fall back to their phone number.
func accountKey(u *model.UserAccount) string {
	if u.ID != "" {
		return u.ID
	}
	return u.Phone
}
