package plan

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mvalderrama/travel-service/internal/models"
)

func testSettings() models.Settings {
	return models.Settings{
		AgencyID:       1,
		CompanyName:    "Rutas del Sur",
		Phone:          "+52 55 1234 5678",
		Email:          "hola@rutasdelsur.mx",
		Instagram:      "@rutasdelsur",
		Facebook:       "rutasdelsur",
		Website:        "https://rutasdelsur.mx",
		Locale:         "es-MX",
		CardFeePercent: decimal.RequireFromString("3.5"),
	}
}

func scenarioInputs() models.PaymentPlanInputs {
	return models.PaymentPlanInputs{
		Total:         decimal.RequireFromString("3797"),
		Discount:      decimal.RequireFromString("300"),
		Deposit:       decimal.RequireFromString("250"),
		Currency:      "USD",
		Frequency:     models.FrequencyMonthly,
		PaymentMethod: models.PaymentTransfer,
		StartDate:     date("2025-01-15"),
		EndDate:       date("2025-04-15"),
		PaymentLink:   "https://pay.example.com/abc",
		ClientName:    "Ana Torres",
		TripName:      "Bariloche Aventura",
		Settings:      testSettings(),
	}
}

func TestComputeScenario(t *testing.T) {
	comp := Compute(scenarioInputs())

	require.Equal(t, "3497.00", comp.DiscountedTotal.StringFixed(2))
	require.Equal(t, "3247.00", comp.RemainingBalance.StringFixed(2))
	require.Len(t, comp.Installments, 4)
	require.Equal(t, "811.75", comp.BaseInstallment.StringFixed(2))

	sum := decimal.Zero
	expectedDates := []string{"2025-01-15", "2025-02-15", "2025-03-15", "2025-04-15"}
	for i, inst := range comp.Installments {
		require.Equal(t, i, inst.Index)
		require.Equal(t, expectedDates[i], inst.DueDate.Format("2006-01-02"))
		require.Equal(t, "811.75", inst.Amount.StringFixed(2))
		sum = sum.Add(inst.Amount)
	}
	require.True(t, sum.Equal(comp.RemainingBalance))
	require.True(t, comp.CardInstallment.IsZero())
}

func TestComputeCardSurcharge(t *testing.T) {
	in := scenarioInputs()
	in.Total = decimal.RequireFromString("400")
	in.Discount = decimal.Zero
	in.Deposit = decimal.Zero
	in.PaymentMethod = models.PaymentCard

	comp := Compute(in)
	require.Equal(t, "100.00", comp.BaseInstallment.StringFixed(2))
	require.Equal(t, "103.50", comp.CardInstallment.StringFixed(2))
}

func TestComputeCardFeeDefaultsWhenUnset(t *testing.T) {
	in := scenarioInputs()
	in.Total = decimal.RequireFromString("400")
	in.Discount = decimal.Zero
	in.Deposit = decimal.Zero
	in.PaymentMethod = models.PaymentCard
	in.Settings.CardFeePercent = decimal.Zero

	comp := Compute(in)
	require.Equal(t, "103.50", comp.CardInstallment.StringFixed(2))
}

// The surcharge always applies to the first installment's amount, even though
// the last installment may carry the rounding remainder.
func TestCardSurchargeUsesFirstInstallment(t *testing.T) {
	in := scenarioInputs()
	in.Total = decimal.RequireFromString("1000")
	in.Discount = decimal.Zero
	in.Deposit = decimal.Zero
	in.StartDate = date("2025-01-15")
	in.EndDate = date("2025-03-15")
	in.PaymentMethod = models.PaymentCard

	comp := Compute(in)
	require.Len(t, comp.Installments, 3)
	require.Equal(t, "333.33", comp.BaseInstallment.StringFixed(2))
	require.Equal(t, "333.34", comp.Installments[2].Amount.StringFixed(2))
	require.Equal(t, "345.00", comp.CardInstallment.StringFixed(2))
}

func TestComposeDocument(t *testing.T) {
	doc := Compose(scenarioInputs())

	require.Contains(t, doc, "Rutas del Sur")
	require.Contains(t, doc, "*Bariloche Aventura*")
	require.Contains(t, doc, "Hola Ana Torres!")
	require.Contains(t, doc, "- Monto total: $3,797.00 USD")
	require.Contains(t, doc, "- Descuento: $300.00 USD")
	require.Contains(t, doc, "- Total con descuento: $3,497.00 USD")
	require.Contains(t, doc, "- Anticipo abonado: $250.00 USD")
	require.Contains(t, doc, "- Monto restante original: $3,247.00 USD")
	require.Contains(t, doc, "- Monto pendiente final: $3,247.00 USD")
	require.Equal(t, 2, strings.Count(doc, "$3,247.00 USD"))
	require.Contains(t, doc, "- Fecha de inicio: 15 de enero de 2025")
	require.Contains(t, doc, "- Fecha de fin: 15 de abril de 2025")
	require.Contains(t, doc, "- Frecuencia: Mensual")
	require.Contains(t, doc, "- Cantidad de cuotas: 4")
	require.Contains(t, doc, "- Valor por cuota: $811.75 USD")
	require.Contains(t, doc, "1er pago: 15 de enero de 2025")
	require.Contains(t, doc, "2do pago: 15 de febrero de 2025")
	require.Contains(t, doc, "3er pago: 15 de marzo de 2025")
	require.Contains(t, doc, "4to pago: 15 de abril de 2025")
	require.Contains(t, doc, "Link de pago: https://pay.example.com/abc")
	require.NotContains(t, doc, "tarjeta")
}

func TestComposeExtraNoteInTitle(t *testing.T) {
	in := scenarioInputs()
	in.ExtraNote = "salida grupal"
	doc := Compose(in)
	require.Contains(t, doc, "*Bariloche Aventura (salida grupal)*")
}

func TestComposeCardNotice(t *testing.T) {
	in := scenarioInputs()
	in.PaymentMethod = models.PaymentCard
	doc := Compose(in)

	require.Contains(t, doc, "recargo del 3.5%")
	require.Contains(t, doc, "- Valor por cuota con tarjeta: $840.16 USD")
}

func TestComposeFallbacks(t *testing.T) {
	in := scenarioInputs()
	in.ClientName = ""
	in.TripName = ""
	in.PaymentLink = ""
	doc := Compose(in)

	require.Contains(t, doc, "Hola Cliente!")
	require.Contains(t, doc, "*Viaje*")
	require.Contains(t, doc, "Link de pago: (pendiente)")
}

func TestComposeZeroInstallments(t *testing.T) {
	in := scenarioInputs()
	in.StartDate = date("2025-05-01")
	in.EndDate = date("2025-01-01")
	doc := Compose(in)

	require.Contains(t, doc, "Modalidades de pago:")
	require.Contains(t, doc, "- Cantidad de cuotas: 0")
	require.Contains(t, doc, "- Valor por cuota: $0.00 USD")
	require.NotContains(t, doc, "1er pago:")
}

func TestComposeMissingDates(t *testing.T) {
	in := scenarioInputs()
	in.StartDate = ParseDate("not-a-date")
	in.EndDate = ParseDate("")
	doc := Compose(in)

	require.Contains(t, doc, "- Fecha de inicio: -")
	require.Contains(t, doc, "- Fecha de fin: -")
	require.Contains(t, doc, "- Cantidad de cuotas: 0")
}
