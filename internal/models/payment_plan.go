package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the cadence of installments in a payment plan.
type Frequency string

const (
	FrequencyMonthly  Frequency = "monthly"
	FrequencyBiweekly Frequency = "biweekly"
)

// PaymentMethod is how the client pays the installments.
type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCard     PaymentMethod = "card"
)

// ScheduleRequest describes the date range and cadence for a payment schedule.
// A zero StartDate or EndDate means the date is absent and yields an empty schedule.
type ScheduleRequest struct {
	StartDate time.Time
	EndDate   time.Time
	Frequency Frequency
}

// Installment is one scheduled partial payment.
type Installment struct {
	Index   int             `json:"index"`
	DueDate time.Time       `json:"due_date"`
	Amount  decimal.Decimal `json:"amount"`
}

// PaymentPlanInputs carries everything the document composer needs for one plan.
// Company settings are passed in explicitly; the composer holds no state.
type PaymentPlanInputs struct {
	Total         decimal.Decimal
	Discount      decimal.Decimal
	Deposit       decimal.Decimal
	Currency      string
	Frequency     Frequency
	PaymentMethod PaymentMethod
	StartDate     time.Time
	EndDate       time.Time
	PaymentLink   string
	ClientName    string
	TripName      string
	ExtraNote     string
	Settings      Settings
}

// PaymentPlanComputation holds the derived figures for a plan. It is produced
// fresh on every computation and never persisted.
type PaymentPlanComputation struct {
	DiscountedTotal  decimal.Decimal
	RemainingBalance decimal.Decimal
	Installments     []Installment
	BaseInstallment  decimal.Decimal
	CardInstallment  decimal.Decimal // zero unless the payment method is card
}
