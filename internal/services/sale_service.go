package services

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"fuel-console/internal/calc"
	"fuel-console/internal/listing"
	"fuel-console/internal/models"
	"fuel-console/internal/remote"
	"fuel-console/internal/timeutil"
	"fuel-console/pkg/apperror"
)

type SaleBackend interface {
	ListSales(ctx context.Context) ([]models.Sale, error)
	CreateSale(ctx context.Context, sale models.Sale) (*models.Sale, error)
	UpdateSale(ctx context.Context, id string, sale models.Sale) (*models.Sale, error)
	DeleteSale(ctx context.Context, id string) error
	ListPumps(ctx context.Context) ([]models.Pump, error)
	ListShifts(ctx context.Context) ([]models.Shift, error)
	GetFuelRates(ctx context.Context) (*models.FuelRates, error)
	FuelTestsByDate(ctx context.Context, pumpID, date string) ([]models.FuelTest, error)
}

type SaleService struct {
	backend SaleBackend
	now     Clock
}

func NewSaleService(backend SaleBackend) *SaleService {
	return &SaleService{backend: backend, now: defaultClock}
}

// SalePage is everything the sale entry page shows.
type SalePage struct {
	Sales      []models.Sale     `json:"sales"`
	Totals     models.SaleTotals `json:"totals"`
	Pumps      []models.Pump     `json:"pumps"`
	Shifts     []models.Shift    `json:"shifts"`
	Rates      models.FuelRates  `json:"rates"`
	FuelTypes  []string          `json:"fuelTypes"`
	Modes      []string          `json:"paymentModes"`
	Today      string            `json:"today"`
	TotalCount int               `json:"totalCount"`
}

// Page loads the sales list with its lookups and applies the filter bar.
// Totals cover the filtered rows.
func (s *SaleService) Page(ctx context.Context, q listing.SaleQuery) (*SalePage, error) {
	sales, err := s.backend.ListSales(ctx)
	if err != nil {
		return nil, backendError("load sales", err)
	}
	pumps, err := s.backend.ListPumps(ctx)
	if err != nil {
		return nil, backendError("load pumps", err)
	}
	shifts, err := s.backend.ListShifts(ctx)
	if err != nil {
		return nil, backendError("load shifts", err)
	}
	rates, err := s.rates(ctx)
	if err != nil {
		return nil, err
	}

	rows := listing.Sales(sales, q)
	return &SalePage{
		Sales:      rows,
		Totals:     calc.Totals(rows),
		Pumps:      pumps,
		Shifts:     shifts,
		Rates:      rates,
		FuelTypes:  models.FuelTypes,
		Modes:      models.PaymentModes,
		Today:      s.now().Format(timeutil.DateLayout),
		TotalCount: len(sales),
	}, nil
}

// rates returns the saved fuel rates. A station without rates gets zeros.
func (s *SaleService) rates(ctx context.Context) (models.FuelRates, error) {
	rates, err := s.backend.GetFuelRates(ctx)
	if remote.IsNotFound(err) {
		return models.FuelRates{}, nil
	}
	if err != nil {
		return models.FuelRates{}, backendError("load fuel rates", err)
	}
	return *rates, nil
}

// Preview fills the draft's lookups and derived fields. A zero rate is
// taken from the fuel rates for the product and zero test fuel from the
// day's fuel tests on the selected pump.
func (s *SaleService) Preview(ctx context.Context, d models.SaleDraft) (*models.SalePreview, error) {
	if d.Date == "" {
		d.Date = s.now().Format(timeutil.DateLayout)
	}
	if d.RatePerLitre == 0 && d.ProductType != "" {
		rates, err := s.rates(ctx)
		if err != nil {
			return nil, err
		}
		d.RatePerLitre = rates.RateFor(d.ProductType)
	}
	if d.TestFuel == 0 && d.PumpNumber != "" {
		test, err := s.testFuel(ctx, d.PumpNumber, d.Date)
		if err != nil {
			return nil, err
		}
		d.TestFuel = test
	}
	return preview(d), nil
}

// testFuel sums the litres drawn for testing from pumpNo on date.
func (s *SaleService) testFuel(ctx context.Context, pumpNo, date string) (float64, error) {
	pumps, err := s.backend.ListPumps(ctx)
	if err != nil {
		return 0, backendError("load pumps", err)
	}
	for _, p := range pumps {
		if p.PumpNo != pumpNo {
			continue
		}
		tests, err := s.backend.FuelTestsByDate(ctx, p.ID, timeutil.DatePart(date))
		if err != nil {
			return 0, backendError("load fuel tests", err)
		}
		var total float64
		for _, t := range tests {
			total += t.Liters
		}
		return total, nil
	}
	return 0, nil
}

func preview(d models.SaleDraft) *models.SalePreview {
	c := calc.ComputeSale(d.OpeningMeter, d.ClosingMeter, d.TestFuel, d.RatePerLitre,
		d.CashAmount, d.UPIAmount, d.CardAmount)
	return &models.SalePreview{
		Draft:          d,
		LitresSold:     c.LitresSold,
		TotalAmount:    c.TotalAmount,
		TotalReceived:  c.TotalReceived,
		Reconciliation: c.Reconciliation,
	}
}

func validateSale(d models.SaleDraft) error {
	var v apperror.Validator
	v.Check(strings.TrimSpace(d.PumpNumber) != "", "pumpNumber", "Please select a pump number")
	v.Check(strings.TrimSpace(d.Shift) != "", "shift", "Please select shift")
	if d.PaymentMode != "" {
		v.Check(slices.Contains(models.PaymentModes, d.PaymentMode), "paymentMode", "Payment mode must be Cash, UPI, Card or Credit")
	}
	return v.Err()
}

// Save creates the sale, or updates it when the draft has an id, and
// returns the refreshed list. A payment mismatch is reported by Preview but
// never blocks saving.
func (s *SaleService) Save(ctx context.Context, d models.SaleDraft) ([]models.Sale, error) {
	if err := validateSale(d); err != nil {
		return nil, err
	}

	now := s.now()
	if d.SaleID == "" {
		d.SaleID = "SALE-" + strconv.FormatInt(now.UnixMilli(), 10)
	}
	if d.Date == "" {
		d.Date = now.Format(timeutil.DateLayout)
	}
	if d.PaymentMode == "" {
		d.PaymentMode = models.PaymentCash
	}
	p := preview(d)

	sale := models.Sale{
		SaleID:       d.SaleID,
		Date:         d.Date,
		Time:         now.Format("03:04:05 PM"),
		Shift:        d.Shift,
		PumpNumber:   d.PumpNumber,
		ProductType:  d.ProductType,
		OpeningMeter: models.Number(d.OpeningMeter),
		ClosingMeter: models.Number(d.ClosingMeter),
		TestFuel:     models.Number(d.TestFuel),
		LitresSold:   models.Number(p.LitresSold),
		RatePerLitre: models.Number(d.RatePerLitre),
		TotalAmount:  models.Number(p.TotalAmount),
		CashAmount:   models.Number(d.CashAmount),
		UPIAmount:    models.Number(d.UPIAmount),
		CardAmount:   models.Number(d.CardAmount),
		TotalPayment: models.Number(p.TotalReceived),
		PaymentMode:  d.PaymentMode,
		Attendant:    d.Attendant,
		CreditParty:  d.CreditParty,
		Remarks:      d.Remarks,
	}

	if d.ID != "" {
		if _, err := s.backend.UpdateSale(ctx, d.ID, sale); err != nil {
			return nil, backendError("update sale", err)
		}
	} else {
		sale.CreatedAt = now.UTC().Format("2006-01-02T15:04:05.000Z")
		if _, err := s.backend.CreateSale(ctx, sale); err != nil {
			return nil, backendError("save sale", err)
		}
	}
	return s.list(ctx)
}

// Delete removes a sale and returns the refreshed list.
func (s *SaleService) Delete(ctx context.Context, id string) ([]models.Sale, error) {
	if err := s.backend.DeleteSale(ctx, id); err != nil {
		return nil, backendError("delete sale", err)
	}
	return s.list(ctx)
}

func (s *SaleService) list(ctx context.Context) ([]models.Sale, error) {
	sales, err := s.backend.ListSales(ctx)
	if err != nil {
		return nil, backendError("load sales", err)
	}
	return sales, nil
}
