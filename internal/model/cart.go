package model

// CartItem is a product line in a session cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
