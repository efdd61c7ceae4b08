package session

import "storefront/internal/model"

// View is a storefront screen.
type View string

const (
	ViewHome     View = "home"
	ViewDetail   View = "detail"
	ViewCheckout View = "checkout"
	ViewPayment  View = "payment"
	ViewProfile  View = "profile"
	ViewLogin    View = "login"
	ViewRegister View = "register"
)

// ParseView validates a view name.
func ParseView(s string) (View, bool) {
	switch v := View(s); v {
	case ViewHome, ViewDetail, ViewCheckout, ViewPayment, ViewProfile, ViewLogin, ViewRegister:
		return v, true
	}
	return "", false
}

// Guarded reports whether the view needs a signed-in session.
func (v View) Guarded() bool {
	return v == ViewProfile || v == ViewCheckout || v == ViewPayment
}

// Navigate moves the session to target and returns the view it landed on.
// Guarded targets redirect to login when the session is not signed in and
// the target is remembered for AfterLogin.
func Navigate(s *State, target View, product *model.Product) View {
	s.SelectedProduct = product

	if target.Guarded() && !s.SignedIn() {
		s.Intended = target
		s.View = ViewLogin
		return s.View
	}

	s.View = target
	return s.View
}

// AfterLogin resumes the destination interrupted by the login redirect, or
// goes home.
func AfterLogin(s *State) View {
	target := s.Intended
	if target == "" {
		target = ViewHome
	}
	s.Intended = ""
	s.View = target
	return s.View
}
