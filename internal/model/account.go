package model

// UserAccount mirrors the account record held by the account store.
// An empty ID means the account has not been persisted remotely.
type UserAccount struct {
	ID                string `json:"id,omitempty"`
	Nama              string `json:"nama"`
	Phone             string `json:"phone"`
	Avatar            string `json:"avatar"`
	MembershipPoints  int64  `json:"membership_points"`
	MembershipBalance int64  `json:"membership_balance"`
	Orders            string `json:"orders"`
	Wishlist          string `json:"wishlist"`
	PaymentMethods    string `json:"paymentMethods"`
	ShippingAddresses string `json:"shippingAddresses"`
	Notifications     string `json:"notifications"`
}

// Address returns the parsed shipping address, if the account has one.
func (u *UserAccount) Address() (ShippingAddress, bool) {
	if u == nil {
		return ShippingAddress{}, false
	}
	return ParseShippingAddress(u.ShippingAddresses)
}

// HasAddress reports whether the account carries a complete shipping address.
func (u *UserAccount) HasAddress() bool {
	_, ok := u.Address()
	return ok
}
