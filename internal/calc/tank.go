package calc

import (
	"strings"
	"time"

	"fuel-console/internal/models"
	"fuel-console/internal/timeutil"
)

// ComputeTank returns the closing stock and the purchase value of the
// received quantity. Closing stock is not clamped and may go negative.
func ComputeTank(opening, received, sold, rate float64) (closingStock, totalAmount float64) {
	return opening + received - sold, received * rate
}

// ApplyTank recomputes a draft's derived fields from its inputs.
func ApplyTank(d *models.TankDraft) {
	d.ClosingStock, d.TotalAmount = ComputeTank(
		d.OpeningStock.Value(),
		d.QuantityReceived.Value(),
		d.SoldQuantity.Value(),
		d.RatePerLitre.Value(),
	)
}

// LatestEntry returns the newest ledger entry for tankID. Entries are ordered
// by creation time; on equal times the one later in the list wins and entries
// without a readable time count as oldest.
func LatestEntry(entries []models.TankEntry, tankID string) (models.TankEntry, bool) {
	var (
		best      models.TankEntry
		bestTime  time.Time
		bestKnown bool
		found     bool
	)
	for _, e := range entries {
		if e.TankID != tankID {
			continue
		}
		t, ok := entryCreated(e)
		switch {
		case !found:
		case ok && !bestKnown:
		case ok && bestKnown && !t.Before(bestTime):
		case !ok && !bestKnown:
		default:
			continue
		}
		best, bestTime, bestKnown, found = e, t, ok, true
	}
	return best, found
}

func entryCreated(e models.TankEntry) (time.Time, bool) {
	if t, ok := timeutil.ParseTimestamp(e.CreatedAt); ok {
		return t, true
	}
	return timeutil.ParseTimestamp(e.DateTime)
}

// SoldLitresBetween sums litresSold over sales of product whose timestamp
// falls in [from, to]. Products match trimmed and case-insensitively; sales
// without a readable timestamp are skipped.
func SoldLitresBetween(sales []models.Sale, from, to time.Time, product string) float64 {
	want := normalizeProduct(product)
	if want == "" {
		return 0
	}
	var total float64
	for _, s := range sales {
		if normalizeProduct(s.ProductType) != want {
			continue
		}
		at, ok := timeutil.ParseTimestamp(s.Timestamp())
		if !ok || at.Before(from) || at.After(to) {
			continue
		}
		total += s.LitresSold.Float()
	}
	return total
}

func normalizeProduct(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
