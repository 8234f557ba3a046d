package domain

import (
	"strings"
	"time"
)

// PaymentDeletionWindow bounds how long after creation a payment may be
// deleted.
const PaymentDeletionWindow = 24 * time.Hour

var paymentMethods = []string{"Cash", "Card", "Transfer", "Online"}

// NormalizePaymentMethod matches the allow-list case-insensitively and
// returns the canonical spelling.
func NormalizePaymentMethod(method string) (string, error) {
	m := strings.TrimSpace(method)
	if m == "" {
		return "", Validationf("payment method is required")
	}
	for _, known := range paymentMethods {
		if strings.EqualFold(known, m) {
			return known, nil
		}
	}
	return "", Validationf("invalid payment method %q, allowed: %s", method, strings.Join(paymentMethods, ", "))
}

type Payment struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	PaymentDate   time.Time `json:"payment_date"` // UTC, set at creation
}
