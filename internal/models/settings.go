package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings holds the per-agency company profile shown on generated documents.
type Settings struct {
	AgencyID       int64           `json:"agency_id"`
	CompanyName    string          `json:"company_name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Instagram      string          `json:"instagram"`
	Facebook       string          `json:"facebook"`
	Website        string          `json:"website"`
	Locale         string          `json:"locale"`
	CardFeePercent decimal.Decimal `json:"card_fee_percent"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
