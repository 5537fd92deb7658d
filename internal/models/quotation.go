package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation represents a priced trip proposal for a client. Start and end
// dates are kept as raw YYYY-MM-DD strings; they are coerced fail-soft when a
// payment plan is generated.
type Quotation struct {
	ID            int64           `json:"id"`
	AgencyID      int64           `json:"agency_id"`
	ClientID      int64           `json:"client_id"`
	TripID        int64           `json:"trip_id"`
	Reference     string          `json:"reference"`
	Total         decimal.Decimal `json:"total"`
	Discount      decimal.Decimal `json:"discount"`
	Deposit       decimal.Decimal `json:"deposit"`
	Currency      string          `json:"currency"`
	Frequency     Frequency       `json:"frequency"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	StartDate     string          `json:"start_date"` // Format: YYYY-MM-DD
	EndDate       string          `json:"end_date"`   // Format: YYYY-MM-DD
	PaymentLink   string          `json:"payment_link"`
	ExtraNote     string          `json:"extra_note"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// QuotationReminder is a flattened view used by the daily reminder sweep.
type QuotationReminder struct {
	QuotationID int64  `json:"quotation_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	TripName    string `json:"trip_name"`
	StartDate   string `json:"start_date"`
}
