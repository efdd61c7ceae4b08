// Package session holds per-visitor storefront state and serializes every
// mutation of it.
package session

import (
	"time"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/model"
)

// AuthMarker is the credential kept with a signed-in session. It is used to
// silently re-authenticate when a session is restored.
type AuthMarker struct {
	Phone      string `json:"phone"`
	Credential string `json:"credential"`
}

// State is everything the storefront remembers about one visitor.
type State struct {
	ID              string                `json:"id"`
	Cart            cart.Cart             `json:"cart"`
	User            *model.UserAccount    `json:"user,omitempty"`
	Auth            *AuthMarker           `json:"-"`
	Checkout        checkout.Selection    `json:"checkout"`
	Stage           checkout.Stage        `json:"stage"`
	Quote           *checkout.Quote       `json:"-"`
	PendingPayment  *model.PaymentDetails `json:"pendingPayment,omitempty"`
	View            View                  `json:"view"`
	Intended        View                  `json:"-"`
	SelectedProduct *model.Product        `json:"selectedProduct,omitempty"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// NewState creates an empty session. Sessions restored with an auth marker
// start on the home view, others on login.
func NewState(id string) *State {
	return &State{
		ID:    id,
		Cart:  cart.Cart{},
		Stage: checkout.StageIdle,
		View:  ViewLogin,
	}
}

// SignedIn reports whether the session carries an auth marker.
func (s *State) SignedIn() bool {
	return s.Auth != nil
}

// SignIn records the account and its credential.
func (s *State) SignIn(user model.UserAccount, credential string) {
	s.User = &user
	s.Auth = &AuthMarker{Phone: user.Phone, Credential: credential}
}

// SignOut clears the account and credential and returns to the login view.
func (s *State) SignOut() {
	s.User = nil
	s.Auth = nil
	s.Intended = ""
	s.View = ViewLogin
	s.Checkout = checkout.Selection{}
	s.Stage = checkout.StageIdle
	s.Quote = nil
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Cart = s.Cart.Clone()
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	if s.Auth != nil {
		a := *s.Auth
		c.Auth = &a
	}
	if s.Quote != nil {
		q := *s.Quote
		q.Items = s.Quote.Items.Clone()
		c.Quote = &q
	}
	if s.PendingPayment != nil {
		p := *s.PendingPayment
		c.PendingPayment = &p
	}
	if s.SelectedProduct != nil {
		p := *s.SelectedProduct
		c.SelectedProduct = &p
	}
	return &c
}
