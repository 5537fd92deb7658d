// Package plan implements the payment-schedule and installment-allocation
// engine: due-date generation, exact-summing installment splits, and the
// composed payment-plan document sent to clients. Everything here is pure and
// safe for concurrent use; malformed input degrades to zero amounts, empty
// schedules, or placeholder text instead of errors.
package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mvalderrama/travel-service/internal/format"
	"github.com/mvalderrama/travel-service/internal/models"
)

var (
	defaultCardFee = decimal.NewFromFloat(3.5)
	hundred        = decimal.NewFromInt(100)
)

// Compute derives the payment-plan figures for the given inputs without
// rendering them. The installment count follows from the generated due dates;
// a zero-length schedule yields no installments and zero amounts.
func Compute(in models.PaymentPlanInputs) models.PaymentPlanComputation {
	var comp models.PaymentPlanComputation
	comp.DiscountedTotal = in.Total.Sub(in.Discount).Round(2)
	comp.RemainingBalance = comp.DiscountedTotal.Sub(in.Deposit).Round(2)

	dates := ScheduleDates(models.ScheduleRequest{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Frequency: in.Frequency,
	})
	if len(dates) > 0 {
		amounts := Allocate(comp.RemainingBalance, len(dates))
		comp.Installments = make([]models.Installment, len(dates))
		for i, d := range dates {
			comp.Installments[i] = models.Installment{Index: i, DueDate: d, Amount: amounts[i]}
		}
		// The amount quoted to the client is always the first installment,
		// even though the last one may carry the rounding remainder.
		comp.BaseInstallment = amounts[0]
	}

	if in.PaymentMethod == models.PaymentCard {
		fee := cardFeePercent(in.Settings)
		comp.CardInstallment = comp.BaseInstallment.Mul(hundred.Add(fee)).Div(hundred).Round(2)
	}
	return comp
}

// Compose renders the full payment-plan document for the given inputs. It
// never fails: missing names, links, or dates render as placeholders and an
// empty schedule still produces a document with zero installments.
func Compose(in models.PaymentPlanInputs) string {
	comp := Compute(in)
	s := in.Settings

	clientName := in.ClientName
	if clientName == "" {
		clientName = "Cliente"
	}
	tripName := in.TripName
	if tripName == "" {
		tripName = "Viaje"
	}
	cur := func(d decimal.Decimal) string {
		return format.Currency(d, in.Currency, s.Locale)
	}

	var b strings.Builder
	b.WriteString(s.CompanyName + "\n")
	fmt.Fprintf(&b, "Tel: %s | Email: %s\n", s.Phone, s.Email)
	fmt.Fprintf(&b, "Instagram: %s | Facebook: %s\n", s.Instagram, s.Facebook)
	fmt.Fprintf(&b, "Web: %s\n\n", s.Website)

	title := tripName
	if in.ExtraNote != "" {
		title += " (" + in.ExtraNote + ")"
	}
	fmt.Fprintf(&b, "*%s*\n\n", title)
	fmt.Fprintf(&b, "Hola %s! Te compartimos el detalle de tu plan de pagos:\n\n", clientName)

	b.WriteString("Datos del cliente:\n")
	fmt.Fprintf(&b, "- Nombre: %s\n", clientName)
	fmt.Fprintf(&b, "- Monto total: %s\n", cur(in.Total))
	fmt.Fprintf(&b, "- Descuento: %s\n", cur(in.Discount))
	fmt.Fprintf(&b, "- Total con descuento: %s\n", cur(comp.DiscountedTotal))
	fmt.Fprintf(&b, "- Anticipo abonado: %s\n", cur(in.Deposit))
	// The template lists the remaining balance twice, under two labels.
	fmt.Fprintf(&b, "- Monto restante original: %s\n", cur(comp.RemainingBalance))
	fmt.Fprintf(&b, "- Monto pendiente final: %s\n", cur(comp.RemainingBalance))
	fmt.Fprintf(&b, "- Fecha de inicio: %s\n", longDateOrDash(in.StartDate))
	fmt.Fprintf(&b, "- Fecha de fin: %s\n\n", longDateOrDash(in.EndDate))

	b.WriteString("Modalidades de pago:\n")
	fmt.Fprintf(&b, "- Frecuencia: %s\n", frequencyLabel(in.Frequency))
	fmt.Fprintf(&b, "- Cantidad de cuotas: %d\n", len(comp.Installments))
	fmt.Fprintf(&b, "- Valor por cuota: %s\n", cur(comp.BaseInstallment))
	for _, inst := range comp.Installments {
		fmt.Fprintf(&b, "%s pago: %s\n", OrdinalLabel(inst.Index), format.LongDate(inst.DueDate))
	}
	b.WriteString("\n")

	link := in.PaymentLink
	if link == "" {
		link = "(pendiente)"
	}
	fmt.Fprintf(&b, "Link de pago: %s\n", link)

	if in.PaymentMethod == models.PaymentCard {
		fee := cardFeePercent(s)
		b.WriteString("\n")
		fmt.Fprintf(&b, "Pago con tarjeta: se aplica un recargo del %s%% por costos de procesamiento.\n", fee.String())
		fmt.Fprintf(&b, "- Valor por cuota con tarjeta: %s\n", cur(comp.CardInstallment))
		b.WriteString("Las fechas de pago pueden ajustarse hablando con tu asesor.\n")
		b.WriteString("Ante cualquier consulta escribinos y te ayudamos.\n")
	}

	return b.String()
}

func cardFeePercent(s models.Settings) decimal.Decimal {
	if s.CardFeePercent.IsZero() {
		return defaultCardFee
	}
	return s.CardFeePercent
}

func frequencyLabel(f models.Frequency) string {
	if f == models.FrequencyBiweekly {
		return "Quincenal"
	}
	return "Mensual"
}

func longDateOrDash(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return format.LongDate(t)
}
