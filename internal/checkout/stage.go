// Package checkout drives the checkout and simulated payment flow.
package checkout

import "storefront/internal/model"

// Stage is the checkout state of a session.
type Stage string

const (
	StageIdle            Stage = "idle"
	StageAddressRequired Stage = "address_required"
	StageMethodsRequired Stage = "methods_required"
	StageReadyToPay      Stage = "ready_to_pay"
	StageProcessing      Stage = "processing"
	StageCompleted       Stage = "completed"
)

// Selection is the shipping method and bank picked on the checkout screen.
type Selection struct {
	ShippingMethod string `json:"shippingMethod"`
	Bank           string `json:"bank"`
}

// Evaluate derives the pre-payment stage from the account and selection.
// The address check comes first, matching the order errors are reported in.
func Evaluate(user *model.UserAccount, sel Selection) Stage {
	switch {
	case !user.HasAddress():
		return StageAddressRequired
	case sel.ShippingMethod == "" || sel.Bank == "":
		return StageMethodsRequired
	default:
		return StageReadyToPay
	}
}
