package services

import (
	"context"
	"strings"
	"time"

	"fuel-console/internal/calc"
	"fuel-console/internal/listing"
	"fuel-console/internal/models"
	"fuel-console/internal/timeutil"
	"fuel-console/pkg/apperror"
)

type TankBackend interface {
	ListTanks(ctx context.Context) ([]models.TankEntry, error)
	CreateTank(ctx context.Context, entry models.TankEntry) (*models.TankEntry, error)
	UpdateTank(ctx context.Context, id string, entry models.TankEntry) (*models.TankEntry, error)
	ListTankMasters(ctx context.Context) ([]models.TankMaster, error)
	ListSales(ctx context.Context) ([]models.Sale, error)
}

type TankService struct {
	backend TankBackend
	now     Clock
}

func NewTankService(backend TankBackend) *TankService {
	return &TankService{backend: backend, now: defaultClock}
}

type TankPage struct {
	Entries  []models.TankEntry  `json:"entries"`
	Masters  []models.TankMaster `json:"masters"`
	LowStock []string            `json:"lowStock"`
}

// Page loads the ledger newest first with the filter bar applied. LowStock
// lists tanks whose latest entry is at or under its alert level.
func (s *TankService) Page(ctx context.Context, q listing.TankQuery) (*TankPage, error) {
	entries, err := s.backend.ListTanks(ctx)
	if err != nil {
		return nil, backendError("load tanks", err)
	}
	masters, err := s.backend.ListTankMasters(ctx)
	if err != nil {
		return nil, backendError("load tank master", err)
	}

	var low []string
	for _, m := range masters {
		if latest, ok := calc.LatestEntry(entries, m.TankID); ok && latest.IsLowStock() {
			low = append(low, m.TankID)
		}
	}

	return &TankPage{
		Entries:  listing.Tanks(entries, q),
		Masters:  masters,
		LowStock: low,
	}, nil
}

// TankAutoFill is a draft prepared for a tank selection.
type TankAutoFill struct {
	Draft models.TankDraft  `json:"draft"`
	Prior *models.TankEntry `json:"prior,omitempty"`
}

// AutoFill prepares the draft for tankID: fuel type and capacity come from
// the tank master, opening stock from the previous entry's closing stock and
// sold quantity from the sales of that fuel since the previous entry. The
// first entry for a tank leaves opening and sold blank for manual entry.
func (s *TankService) AutoFill(ctx context.Context, d models.TankDraft, tankID string) (*TankAutoFill, error) {
	masters, err := s.backend.ListTankMasters(ctx)
	if err != nil {
		return nil, backendError("load tank master", err)
	}
	var master *models.TankMaster
	for i := range masters {
		if masters[i].TankID == tankID {
			master = &masters[i]
			break
		}
	}
	if master == nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "tankId", Message: "Unknown tank " + tankID},
		})
	}

	entries, err := s.backend.ListTanks(ctx)
	if err != nil {
		return nil, backendError("load tanks", err)
	}

	now := s.now()
	d.ID = ""
	d.TankID = master.TankID
	d.ProductType = master.FuelType
	d.Capacity = models.NumOf(master.Capacity.Float())
	d.DateTime = now.Format(time.RFC3339)

	result := &TankAutoFill{}
	prior, ok := calc.LatestEntry(entries, master.TankID)
	if !ok {
		d.OpeningStock = ""
		d.SoldQuantity = ""
	} else {
		sales, err := s.backend.ListSales(ctx)
		if err != nil {
			return nil, backendError("load sales", err)
		}
		d.OpeningStock = models.NumOf(prior.ClosingStock.Float())
		d.SoldQuantity = models.NumOf(soldSince(sales, prior, now, master.FuelType))
		result.Prior = &prior
	}

	calc.ApplyTank(&d)
	result.Draft = d
	return result, nil
}

// soldSince sums the fuel sold from the prior entry's reading until now. A
// prior entry without a readable time yields 0.
func soldSince(sales []models.Sale, prior models.TankEntry, now time.Time, fuel string) float64 {
	from, ok := timeutil.ParseTimestamp(prior.Timestamp())
	if !ok {
		return 0
	}
	return calc.SoldLitresBetween(sales, from, now, fuel)
}

// Preview recomputes closing stock and total amount.
func (s *TankService) Preview(d models.TankDraft) models.TankDraft {
	calc.ApplyTank(&d)
	return d
}

// Save appends the draft to the tank's ledger, or corrects an existing entry
// when the draft carries its id, and returns the refreshed ledger.
func (s *TankService) Save(ctx context.Context, d models.TankDraft) ([]models.TankEntry, error) {
	var v apperror.Validator
	v.Check(strings.TrimSpace(d.TankID) != "", "tankId", "Select Tank ID")
	if err := v.Err(); err != nil {
		return nil, err
	}

	calc.ApplyTank(&d)
	if d.DateTime == "" {
		d.DateTime = s.now().Format(time.RFC3339)
	}
	entry := d.Entry()

	if d.ID != "" {
		if _, err := s.backend.UpdateTank(ctx, d.ID, entry); err != nil {
			return nil, backendError("update tank", err)
		}
	} else {
		if _, err := s.backend.CreateTank(ctx, entry); err != nil {
			return nil, backendError("save tank", err)
		}
	}

	entries, err := s.backend.ListTanks(ctx)
	if err != nil {
		return nil, backendError("load tanks", err)
	}
	return listing.Tanks(entries, listing.TankQuery{}), nil
}
