package model

// AddToCartRequest adds one unit of a product variant to the cart.
type AddToCartRequest struct {
	Product Product `json:"product"`
	BuyNow  bool    `json:"buyNow"`
}

// CartLineRequest addresses cart lines by group and title.
type CartLineRequest struct {
	ItemGroupID string `json:"itemGroupId"`
	Title       string `json:"title"`
	Delta       int    `json:"delta,omitempty"`
}

// ChangeVariantRequest asks for the variant closest to current with one
// attribute changed.
type ChangeVariantRequest struct {
	Current   Product `json:"current"`
	Attribute string  `json:"attribute"`
	Value     string  `json:"value"`
}

type RegisterRequest struct {
	Nama     string `json:"nama"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ProfileUpdateRequest is a partial profile update. Nil fields are left
// unchanged.
type ProfileUpdateRequest struct {
	Nama   *string `json:"nama,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// AddressRequest saves the contact details and shipping address together,
// as the address form does.
type AddressRequest struct {
	Nama    string          `json:"nama"`
	Phone   string          `json:"phone"`
	Address ShippingAddress `json:"address"`
}

type PaymentMethodRequest struct {
	PaymentMethods string `json:"paymentMethods"`
}

type WishlistToggleRequest struct {
	Product Product `json:"product"`
}

type NavigateRequest struct {
	View    string   `json:"view"`
	Product *Product `json:"product,omitempty"`
}
