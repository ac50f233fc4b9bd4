package calc

import (
	"time"

	"github.com/shopspring/decimal"

	"fuel-console/internal/models"
)

// GSTRate is the flat rate applied to credit bills.
var GSTRate = decimal.NewFromInt(18)

// CreditStatusOf reports whether the account's outstanding exceeds its limit.
func CreditStatusOf(acc models.CreditAccount) models.CreditStatus {
	outstanding := decimal.NewFromFloat(acc.Outstanding)
	limit := decimal.NewFromFloat(acc.CreditLimit)
	status := models.CreditStatus{OverLimit: outstanding.GreaterThan(limit)}
	if status.OverLimit {
		status.Excess = outstanding.Sub(limit).InexactFloat64()
	} else {
		status.Available = limit.Sub(outstanding).InexactFloat64()
	}
	return status
}

// BuildGSTInvoice bills the account's outstanding balance with GST added on
// top. The invoice number is derived from the account id and issue time.
func BuildGSTInvoice(acc models.CreditAccount, issuedAt time.Time) models.GSTInvoice {
	taxable := decimal.NewFromFloat(acc.Outstanding).Round(2)
	gst := taxable.Mul(GSTRate).Div(decimal.NewFromInt(100)).Round(2)

	return models.GSTInvoice{
		InvoiceNo:   "INV-" + acc.AccountID + "-" + issuedAt.Format("20060102150405"),
		AccountID:   acc.AccountID,
		AccountName: acc.AccountName,
		Customer:    acc.Name,
		Email:       acc.Email,
		IssuedAt:    issuedAt.Format(time.RFC3339),
		Taxable:     taxable.InexactFloat64(),
		GSTRate:     GSTRate.InexactFloat64(),
		GST:         gst.InexactFloat64(),
		Total:       taxable.Add(gst).InexactFloat64(),
	}
}
