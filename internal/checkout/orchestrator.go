package checkout

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/cart"
	"storefront/internal/model"
	"storefront/internal/pricing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultPayDelay is how long the simulated payment takes.
const DefaultPayDelay = 2 * time.Second

// Quote is the priced order captured when payment starts.
type Quote struct {
	ID       string                 `json:"id"`
	Items    cart.Cart              `json:"items"`
	Shipping pricing.ShippingOption `json:"shipping"`
	Bank     Bank                   `json:"bank"`
	Totals   pricing.Totals         `json:"totals"`
}

// Orchestrator validates checkout preconditions and runs the payment.
type Orchestrator struct {
	delayer     Delayer
	platformFee int64
	payDelay    time.Duration
	logger      zerolog.Logger
}

// NewOrchestrator creates a checkout orchestrator.
func NewOrchestrator(delayer Delayer, platformFee int64, payDelay time.Duration, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		delayer:     delayer,
		platformFee: platformFee,
		payDelay:    payDelay,
		logger:      logger.With().Str("component", "checkout").Logger(),
	}
}

// PlatformFee returns the configured platform fee.
func (o *Orchestrator) PlatformFee() int64 {
	return o.platformFee
}

// Totals prices the cart for the summary screen. The shipping fee is zero
// until a known method is selected.
func (o *Orchestrator) Totals(items cart.Cart, sel Selection) pricing.Totals {
	var shippingFee int64
	if opt, ok := pricing.LookupShipping(sel.ShippingMethod); ok {
		shippingFee = opt.Fee
	}
	return pricing.ComputeTotals(items, shippingFee, o.platformFee)
}

// Begin re-checks every precondition and prices the order. The first failing
// check is returned as a domain error.
func (o *Orchestrator) Begin(user *model.UserAccount, sel Selection, items cart.Cart) (Quote, error) {
	if !user.HasAddress() {
		return Quote{}, model.ErrAddressRequired
	}
	if sel.ShippingMethod == "" {
		return Quote{}, model.ErrShippingMethodRequired
	}
	if sel.Bank == "" {
		return Quote{}, model.ErrPaymentMethodRequired
	}

	shipping, ok := pricing.LookupShipping(sel.ShippingMethod)
	if !ok {
		return Quote{}, model.ErrUnknownShippingMethod
	}
	if !shipping.Available() {
		return Quote{}, model.ErrShippingUnavailable
	}

	bank, ok := LookupBank(sel.Bank)
	if !ok {
		return Quote{}, model.ErrUnknownBank
	}

	if len(items) == 0 {
		return Quote{}, model.ErrEmptyCart
	}

	return Quote{
		ID:       uuid.NewString(),
		Items:    items.Clone(),
		Shipping: shipping,
		Bank:     bank,
		Totals:   pricing.ComputeTotals(items, shipping.Fee, o.platformFee),
	}, nil
}

// Complete waits out the processing delay and returns the payment
// instructions for the quote.
func (o *Orchestrator) Complete(ctx context.Context, q Quote) (model.PaymentDetails, error) {
	if err := o.delayer.Wait(ctx, o.payDelay); err != nil {
		o.logger.Warn().Err(err).Str("bank", q.Bank.Name).Msg("payment interrupted")
		return model.PaymentDetails{}, fmt.Errorf("payment interrupted: %w", err)
	}

	o.logger.Info().
		Str("bank", q.Bank.Name).
		Int64("amount", q.Totals.GrandTotal).
		Msg("payment instructions issued")

	return model.PaymentDetails{
		Bank:     q.Bank.Name,
		VANumber: q.Bank.VANumber,
		Amount:   q.Totals.GrandTotal,
	}, nil
}
