package listing

import (
	"fuel-console/internal/models"
	"fuel-console/internal/timeutil"
)

// SaleQuery is the sales table's filter bar.
type SaleQuery struct {
	From     string
	To       string
	FuelType string
	Pump     string
	Search   string
	SortBy   string
	Dir      Direction
}

// Sale sort keys. SortNone keeps the filter order.
const (
	SortNone     = "none"
	SortLitres   = "litres"
	SortTestFuel = "testFuel"
	SortTotal    = "total"
	SortReceived = "received"
)

var saleKeys = map[string]Key[models.Sale]{
	SortLitres:   func(s models.Sale) float64 { return s.LitresSold.Float() },
	SortTestFuel: func(s models.Sale) float64 { return s.TestFuel.Float() },
	SortTotal:    func(s models.Sale) float64 { return s.TotalAmount.Float() },
	SortReceived: func(s models.Sale) float64 {
		return s.CashAmount.Float() + s.UPIAmount.Float() + s.CardAmount.Float()
	},
}

// ThisMonth fills From and To with the current IST month to date.
func (q *SaleQuery) ThisMonth() {
	q.From, q.To = timeutil.MonthToDate(timeutil.Now())
}

// Sales applies q to the sales list.
func Sales(sales []models.Sale, q SaleQuery) []models.Sale {
	filtered := Filter(sales,
		Search(func(s models.Sale) []string {
			return []string{s.ProductType, s.PumpNumber, s.SaleID, s.Attendant, s.PaymentMode}
		}, q.Search),
		Category(func(s models.Sale) string { return s.ProductType }, q.FuelType),
		Category(func(s models.Sale) string { return s.PumpNumber }, q.Pump),
		DateRange(models.Sale.Timestamp, q.From, q.To),
	)
	return Sort(filtered, saleKeys[q.SortBy], q.Dir)
}

// TankQuery is the tank ledger's filter bar.
type TankQuery struct {
	From   string
	To     string
	TankID string
	Fuel   string
}

// Tanks applies q to the ledger and orders it newest first.
func Tanks(entries []models.TankEntry, q TankQuery) []models.TankEntry {
	filtered := Filter(entries,
		Category(func(t models.TankEntry) string { return t.TankID }, q.TankID),
		Category(func(t models.TankEntry) string { return t.ProductType }, q.Fuel),
		InstantRange(func(t models.TankEntry) string {
			if t.CreatedAt != "" {
				return t.CreatedAt
			}
			return t.DateTime
		}, q.From, q.To),
	)
	return Sort(filtered, func(t models.TankEntry) float64 {
		at, ok := timeutil.ParseTimestamp(t.CreatedAt)
		if !ok {
			return 0
		}
		return float64(at.UnixMilli())
	}, Desc)
}

// AttendanceQuery is the attendance table's filter bar.
type AttendanceQuery struct {
	From   string
	To     string
	Shift  string
	Status string
	Search string
}

// Attendance applies q to the attendance records.
func Attendance(records []models.Attendance, q AttendanceQuery) []models.Attendance {
	return Filter(records,
		DateRange(func(a models.Attendance) string { return a.Date }, q.From, q.To),
		Category(func(a models.Attendance) string { return a.Shift }, q.Shift),
		Category(func(a models.Attendance) string { return a.Status }, q.Status),
		Search(func(a models.Attendance) []string {
			return []string{a.Employee.Name(), a.Employee.Role(), a.Status}
		}, q.Search),
	)
}
