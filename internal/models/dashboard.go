package models

type StockLevel struct {
	FuelType     string  `json:"fuelType"`
	CurrentLevel float64 `json:"currentLevel"`
	Capacity     float64 `json:"capacity"`
}

// Percent is the fill level, 0 for a tank with no capacity.
func (s StockLevel) Percent() float64 {
	if s.Capacity <= 0 {
		return 0
	}
	return s.CurrentLevel / s.Capacity * 100
}

type DashboardData struct {
	TotalSales       float64      `json:"totalSales"`
	TotalLitres      float64      `json:"totalLitres"`
	CashPayments     float64      `json:"cashPayments"`
	BankPayments     float64      `json:"bankPayments"`
	StockLevels      []StockLevel `json:"stockLevels"`
	TotalStaff       int          `json:"totalStaff"`
	PresentToday     int          `json:"presentToday"`
	TotalOutstanding float64      `json:"totalOutstanding"`
}

// DashboardSnapshot is the last poll result.
type DashboardSnapshot struct {
	Data      *DashboardData `json:"data"`
	FetchedAt string         `json:"fetchedAt,omitempty"`
	Error     string         `json:"error,omitempty"`
}
