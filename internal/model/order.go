package model

import (
	"time"

	"github.com/google/uuid"
)

// Order records a checkout that reached payment.
type Order struct {
	ID             uuid.UUID `json:"id" db:"id"`
	AccountID      string    `json:"accountId" db:"account_id"`
	Phone          string    `json:"phone" db:"phone"`
	Bank           string    `json:"bank" db:"bank"`
	VANumber       string    `json:"vaNumber" db:"va_number"`
	ShippingMethod string    `json:"shippingMethod" db:"shipping_method"`
	Subtotal       int64     `json:"subtotal" db:"subtotal"`
	ShippingFee    int64     `json:"shippingFee" db:"shipping_fee"`
	PlatformFee    int64     `json:"platformFee" db:"platform_fee"`
	GrandTotal     int64     `json:"grandTotal" db:"grand_total"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	ID           uuid.UUID `json:"-" db:"id"`
	OrderID      uuid.UUID `json:"-" db:"order_id"`
	Title        string    `json:"title" db:"title"`
	ItemGroupID  string    `json:"itemGroupId" db:"item_group_id"`
	Color        string    `json:"color,omitempty" db:"color"`
	Size         string    `json:"size,omitempty" db:"size"`
	Connectivity string    `json:"connectivity,omitempty" db:"connectivity"`
	BandColor    string    `json:"bandColor,omitempty" db:"band_color"`
	BandType     string    `json:"bandType,omitempty" db:"band_type"`
	UnitPrice    int64     `json:"unitPrice" db:"unit_price"`
	Quantity     int       `json:"quantity" db:"quantity"`
}

// OrderResponse represents the response payload for an order.
type OrderResponse struct {
	Order
	Items []OrderItem `json:"items"`
}
