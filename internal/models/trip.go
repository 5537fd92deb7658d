package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip represents a trip offered by the agency
type Trip struct {
	ID          int64           `json:"id"`
	AgencyID    int64           `json:"agency_id"`
	Name        string          `json:"name"`
	Destination string          `json:"destination"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
