package calc

import (
	"github.com/shopspring/decimal"

	"fuel-console/internal/models"
)

// Tolerance is the largest gap between amount due and amount received that
// still counts as settled.
var Tolerance = decimal.New(1, -2)

// Reconcile compares a sale total with the payments received against it.
// The result is advisory: a mismatch never blocks saving.
func Reconcile(total, received float64) models.Reconciliation {
	diff := decimal.NewFromFloat(total).Sub(decimal.NewFromFloat(received))
	return models.Reconciliation{
		Match:          diff.Abs().LessThanOrEqual(Tolerance),
		Difference:     diff.InexactFloat64(),
		DifferenceText: diff.StringFixed(2),
	}
}

// SaleComputation holds the fields derived from a sale draft.
type SaleComputation struct {
	LitresSold     float64
	TotalAmount    float64
	TotalReceived  float64
	Reconciliation models.Reconciliation
}

// ComputeSale derives litres, amount due and amount received from meter
// readings, test fuel, rate and the three payment channels. Litres never go
// below zero; money is rounded to paise.
func ComputeSale(openingMeter, closingMeter, testFuel, rate, cash, upi, card float64) SaleComputation {
	litres := decimal.NewFromFloat(closingMeter).
		Sub(decimal.NewFromFloat(openingMeter)).
		Sub(decimal.NewFromFloat(testFuel))
	if litres.IsNegative() {
		litres = decimal.Zero
	}
	total := litres.Mul(decimal.NewFromFloat(rate)).Round(2)
	received := decimal.NewFromFloat(cash).
		Add(decimal.NewFromFloat(upi)).
		Add(decimal.NewFromFloat(card)).
		Round(2)

	return SaleComputation{
		LitresSold:     litres.InexactFloat64(),
		TotalAmount:    total.InexactFloat64(),
		TotalReceived:  received.InexactFloat64(),
		Reconciliation: Reconcile(total.InexactFloat64(), received.InexactFloat64()),
	}
}

// Totals adds up a list of sales for the summary row.
func Totals(sales []models.Sale) models.SaleTotals {
	var litres, test, cash, upi, card, total, received decimal.Decimal
	for _, s := range sales {
		litres = litres.Add(decimal.NewFromFloat(s.LitresSold.Float()))
		test = test.Add(decimal.NewFromFloat(s.TestFuel.Float()))
		cash = cash.Add(decimal.NewFromFloat(s.CashAmount.Float()))
		upi = upi.Add(decimal.NewFromFloat(s.UPIAmount.Float()))
		card = card.Add(decimal.NewFromFloat(s.CardAmount.Float()))
		total = total.Add(decimal.NewFromFloat(s.TotalAmount.Float()))
		received = received.Add(decimal.NewFromFloat(s.TotalPayment.Float()))
	}
	return models.SaleTotals{
		Count:          len(sales),
		Litres:         litres.InexactFloat64(),
		TestFuel:       test.InexactFloat64(),
		Cash:           cash.InexactFloat64(),
		UPI:            upi.InexactFloat64(),
		Card:           card.InexactFloat64(),
		SalesTotal:     total.InexactFloat64(),
		TotalReceived:  received.InexactFloat64(),
		Reconciliation: Reconcile(total.InexactFloat64(), received.InexactFloat64()),
	}
}
