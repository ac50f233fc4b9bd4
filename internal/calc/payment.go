package calc

import (
	"strings"

	"github.com/shopspring/decimal"

	"fuel-console/internal/models"
	"fuel-console/internal/timeutil"
)

// ComparePayments sets the gateway's UPI and card receipts for a day against
// the UPI and card amounts recorded in that day's sale entries. An empty
// shift compares the whole day. Live payments carry no shift, so only the
// recorded side is narrowed by it. Days are IST calendar days.
func ComparePayments(payments []models.Payment, sales []models.Sale, date, shift string) models.PaymentComparison {
	var liveUPI, liveCard, saleUPI, saleCard decimal.Decimal

	for _, p := range payments {
		if date != "" && timeutil.LocalDate(p.CreatedAt) != date {
			continue
		}
		amount := decimal.NewFromFloat(p.Amount)
		switch strings.ToUpper(p.Mode) {
		case models.LiveUPI:
			liveUPI = liveUPI.Add(amount)
		case models.LiveCard:
			liveCard = liveCard.Add(amount)
		}
	}

	for _, s := range sales {
		if date != "" && timeutil.LocalDate(s.Date) != date {
			continue
		}
		if shift != "" && s.Shift != shift {
			continue
		}
		saleUPI = saleUPI.Add(decimal.NewFromFloat(s.UPIAmount.Float()))
		saleCard = saleCard.Add(decimal.NewFromFloat(s.CardAmount.Float()))
	}

	return models.PaymentComparison{
		Date:  date,
		Shift: shift,
		UPI:   compareMode(models.LiveUPI, liveUPI, saleUPI),
		Card:  compareMode(models.LiveCard, liveCard, saleCard),
	}
}

func compareMode(mode string, live, recorded decimal.Decimal) models.ModeComparison {
	diff := live.Sub(recorded)
	return models.ModeComparison{
		Mode:       mode,
		Live:       live.InexactFloat64(),
		Recorded:   recorded.InexactFloat64(),
		Difference: diff.InexactFloat64(),
		Match:      diff.Abs().LessThanOrEqual(Tolerance),
	}
}
