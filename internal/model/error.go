package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON            = "INVALID_JSON"
	ErrCodeMissingField           = "MISSING_FIELD"
	ErrCodeProductNotFound        = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidQuantity        = "INVALID_QUANTITY"
	ErrCodeInvalidAttribute       = "INVALID_ATTRIBUTE"
	ErrCodeEmptyCart              = "EMPTY_CART"
	ErrCodeAddressRequired        = "ADDRESS_REQUIRED"
	ErrCodeInvalidAddress         = "INVALID_ADDRESS"
	ErrCodeShippingMethodRequired = "SHIPPING_METHOD_REQUIRED"
	ErrCodePaymentMethodRequired  = "PAYMENT_METHOD_REQUIRED"
	ErrCodeUnknownShippingMethod  = "UNKNOWN_SHIPPING_METHOD"
	ErrCodeShippingUnavailable    = "SHIPPING_METHOD_UNAVAILABLE"
	ErrCodeUnknownBank            = "UNKNOWN_BANK"
	ErrCodePaymentInProgress      = "PAYMENT_IN_PROGRESS"
	ErrCodePaymentNotFound        = "PAYMENT_NOT_FOUND"
	ErrCodeCatalogUnavailable     = "CATALOG_UNAVAILABLE"
	ErrCodeOrderNotFound          = "ORDER_NOT_FOUND"
	ErrCodeInvalidOrderID         = "INVALID_ORDER_ID"
	ErrCodeInvalidView            = "INVALID_VIEW"
	ErrCodePhoneRegistered        = "PHONE_REGISTERED"
	ErrCodeInvalidCredentials     = "INVALID_CREDENTIALS"
	ErrCodeLoginRequired          = "LOGIN_REQUIRED"
	ErrCodeSessionNotFound        = "SESSION_NOT_FOUND"
	ErrCodeUnauthorised           = "UNAUTHORIZED"
	ErrCodeInternalError          = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound        = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidQuantity        = NewDomainError(ErrCodeInvalidQuantity, "Quantity delta must not be zero")
	ErrInvalidAttribute       = NewDomainError(ErrCodeInvalidAttribute, "Unknown variant attribute")
	ErrEmptyCart              = NewDomainError(ErrCodeEmptyCart, "Your cart is empty.")
	ErrAddressRequired        = NewDomainError(ErrCodeAddressRequired, "Please set your shipping address.")
	ErrShippingMethodRequired = NewDomainError(ErrCodeShippingMethodRequired, "Please select a shipping method.")
	ErrPaymentMethodRequired  = NewDomainError(ErrCodePaymentMethodRequired, "Please select a payment method (Bank VA).")
	ErrUnknownShippingMethod  = NewDomainError(ErrCodeUnknownShippingMethod, "Unknown shipping method")
	ErrShippingUnavailable    = NewDomainError(ErrCodeShippingUnavailable, "Shipping method is currently unavailable")
	ErrUnknownBank            = NewDomainError(ErrCodeUnknownBank, "Unknown bank")
	ErrPaymentInProgress      = NewDomainError(ErrCodePaymentInProgress, "A payment is already being processed")
	ErrPaymentNotFound        = NewDomainError(ErrCodePaymentNotFound, "No payment to show")
	ErrPaymentSuperseded      = NewDomainError(ErrCodePaymentInProgress, "The checkout changed while the payment was processing")
	ErrCatalogUnavailable     = NewDomainError(ErrCodeCatalogUnavailable, "Product catalog is not available")
	ErrOrderNotFound          = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidView            = NewDomainError(ErrCodeInvalidView, "Unknown view")
	ErrPhoneRegistered        = NewDomainError(ErrCodePhoneRegistered, "Phone number is already registered")
	ErrInvalidCredentials     = NewDomainError(ErrCodeInvalidCredentials, "Invalid phone number or password.")
	ErrLoginRequired          = NewDomainError(ErrCodeLoginRequired, "Please log in first")
	ErrSessionNotFound        = NewDomainError(ErrCodeSessionNotFound, "Session not found")
)

// MissingField returns a validation error for a required request field.
func MissingField(name string) *DomainError {
	return NewDomainError(ErrCodeMissingField, name+" is required")
}
