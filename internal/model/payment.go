package model

// PaymentDetails describes the virtual account a customer must pay into.
// It is produced by checkout and never persisted remotely.
type PaymentDetails struct {
	Bank     string `json:"bank"`
	VANumber string `json:"vaNumber"`
	Amount   int64  `json:"amount"`
}
