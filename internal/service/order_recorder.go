package service

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/checkout"
	"storefront/internal/model"
	"storefront/internal/pricing"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const orderHistoryLimit = 20

// orderRecorder writes completed payments to the order history.
type orderRecorder struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
	logger    zerolog.Logger
}

func newOrderRecorder(orderRepo repository.OrderRepository, logger zerolog.Logger) *orderRecorder {
	return &orderRecorder{
		orderRepo: orderRepo,
		now:       time.Now,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Record stores the quote as an order with one item per cart line.
func (r *orderRecorder) Record(ctx context.Context, accountID, phone string, q checkout.Quote) (*model.Order, error) {
	order := &model.Order{
		ID:             uuid.New(),
		AccountID:      accountID,
		Phone:          phone,
		Bank:           q.Bank.Name,
		VANumber:       q.Bank.VANumber,
		ShippingMethod: q.Shipping.Method,
		Subtotal:       q.Totals.Subtotal,
		ShippingFee:    q.Totals.ShippingFee,
		PlatformFee:    q.Totals.PlatformFee,
		GrandTotal:     q.Totals.GrandTotal,
		CreatedAt:      r.now(),
	}

	items := make([]model.OrderItem, len(q.Items))
	for i, line := range q.Items {
		items[i] = model.OrderItem{
			ID:           uuid.New(),
			OrderID:      order.ID,
			Title:        line.Title,
			ItemGroupID:  line.ItemGroupID,
			Color:        line.Color,
			Size:         line.Size,
			Connectivity: line.Connectivity,
			BandColor:    line.BandColor,
			BandType:     line.BandType,
			UnitPrice:    pricing.UnitPrice(line.Product),
			Quantity:     line.Quantity,
		}
	}

	tx, err := r.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = r.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	if err = r.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		return nil, fmt.Errorf("failed to record order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	r.logger.Info().
		Str("order_id", order.ID.String()).
		Str("account_id", accountID).
		Int("item_count", len(items)).
		Int64("grand_total", order.GrandTotal).
		Msg("order recorded")

	return order, nil
}

// List returns the latest orders of an account.
func (r *orderRecorder) List(ctx context.Context, accountID string) ([]model.Order, error) {
	orders, err := r.orderRepo.ListByAccount(ctx, accountID, orderHistoryLimit)
	if err != nil {
		r.logger.Error().Err(err).Str("account_id", accountID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// Get returns one order of the account. Orders of other accounts are
// reported as missing.
func (r *orderRecorder) Get(ctx context.Context, accountID string, id uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := r.orderRepo.GetByID(ctx, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil || order.AccountID != accountID {
		r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return &model.OrderResponse{Order: *order, Items: items}, nil
}
