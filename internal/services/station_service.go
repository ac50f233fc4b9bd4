package services

import (
	"context"
	"slices"
	"strings"

	"fuel-console/internal/calc"
	"fuel-console/internal/models"
	"fuel-console/internal/remote"
	"fuel-console/pkg/apperror"
)

// StationBackend covers the station configuration pages: fuel rates,
// pumps, shifts and fuel tests.
type StationBackend interface {
	GetFuelRates(ctx context.Context) (*models.FuelRates, error)
	SaveFuelRates(ctx context.Context, rates models.FuelRates) error
	ListPumps(ctx context.Context) ([]models.Pump, error)
	CreatePump(ctx context.Context, p models.Pump) (*models.Pump, error)
	DeletePump(ctx context.Context, id string) error
	ListShifts(ctx context.Context) ([]models.Shift, error)
	CreateShift(ctx context.Context, s models.Shift) (*models.Shift, error)
	UpdateShift(ctx context.Context, id string, s models.Shift) (*models.Shift, error)
	DeleteShift(ctx context.Context, id string) error
	ListFuelTests(ctx context.Context) ([]models.FuelTest, error)
	CreateFuelTest(ctx context.Context, t models.FuelTest) (*models.FuelTest, error)
}

type StationService struct {
	backend StationBackend
	now     Clock
}

func NewStationService(backend StationBackend) *StationService {
	return &StationService{backend: backend, now: defaultClock}
}

// FuelRates returns the saved rates, or nil when none have been set yet.
func (s *StationService) FuelRates(ctx context.Context) (*models.FuelRates, error) {
	rates, err := s.backend.GetFuelRates(ctx)
	if remote.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, backendError("load fuel rates", err)
	}
	return rates, nil
}

func (s *StationService) SaveFuelRates(ctx context.Context, rates models.FuelRates) (*models.FuelRates, error) {
	var v apperror.Validator
	v.Check(rates.Petrol >= 0, "petrol", "Rate cannot be negative")
	v.Check(rates.Diesel >= 0, "diesel", "Rate cannot be negative")
	v.Check(rates.PremiumPetrol >= 0, "premiumPetrol", "Rate cannot be negative")
	v.Check(rates.CNG >= 0, "cng", "Rate cannot be negative")
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.backend.SaveFuelRates(ctx, rates); err != nil {
		return nil, backendError("save fuel rates", err)
	}
	return s.FuelRates(ctx)
}

func (s *StationService) Pumps(ctx context.Context) ([]models.Pump, error) {
	pumps, err := s.backend.ListPumps(ctx)
	if err != nil {
		return nil, backendError("load pumps", err)
	}
	return pumps, nil
}

// CreatePump adds a pump dispensing one or more of the station's fuels.
// Repeated fuels are collapsed.
func (s *StationService) CreatePump(ctx context.Context, p models.Pump) ([]models.Pump, error) {
	p.PumpNo = strings.TrimSpace(p.PumpNo)
	p.PumpName = strings.TrimSpace(p.PumpName)

	var v apperror.Validator
	v.Check(p.PumpNo != "", "pumpNo", "Pump number is required")
	v.Check(p.PumpName != "", "pumpName", "Pump name is required")

	fuels := make([]models.PumpFuel, 0, len(p.Fuels))
	seen := make(map[string]bool)
	for _, f := range p.Fuels {
		if seen[f.Type] {
			continue
		}
		seen[f.Type] = true
		v.Check(models.IsFuelType(f.Type), "fuels", "Unknown fuel type "+f.Type)
		fuels = append(fuels, f)
	}
	v.Check(len(fuels) > 0, "fuels", "Select at least one fuel")
	if err := v.Err(); err != nil {
		return nil, err
	}
	p.Fuels = fuels

	if _, err := s.backend.CreatePump(ctx, p); err != nil {
		return nil, backendError("create pump", err)
	}
	return s.Pumps(ctx)
}

func (s *StationService) DeletePump(ctx context.Context, id string) ([]models.Pump, error) {
	if err := s.backend.DeletePump(ctx, id); err != nil {
		return nil, backendError("delete pump", err)
	}
	return s.Pumps(ctx)
}

func (s *StationService) Shifts(ctx context.Context) ([]models.Shift, error) {
	shifts, err := s.backend.ListShifts(ctx)
	if err != nil {
		return nil, backendError("load shifts", err)
	}
	return shifts, nil
}

func validateShift(sh models.Shift) error {
	var v apperror.Validator
	v.Check(strings.TrimSpace(sh.ShiftName) != "", "shiftName", "Shift name is required")
	v.Check(sh.StartTime != "", "startTime", "Start time is required")
	v.Check(sh.EndTime != "", "endTime", "End time is required")
	return v.Err()
}

// SaveShift creates the shift, or updates it when it carries an id.
func (s *StationService) SaveShift(ctx context.Context, sh models.Shift) ([]models.Shift, error) {
	if err := validateShift(sh); err != nil {
		return nil, err
	}
	var err error
	if sh.ID != "" {
		_, err = s.backend.UpdateShift(ctx, sh.ID, sh)
	} else {
		_, err = s.backend.CreateShift(ctx, sh)
	}
	if err != nil {
		return nil, backendError("save shift", err)
	}
	return s.Shifts(ctx)
}

func (s *StationService) DeleteShift(ctx context.Context, id string) ([]models.Shift, error) {
	if err := s.backend.DeleteShift(ctx, id); err != nil {
		return nil, backendError("delete shift", err)
	}
	return s.Shifts(ctx)
}

// FuelTestRequest is the test-fuel form. StopTime defaults to now.
type FuelTestRequest struct {
	PumpID    string          `json:"pumpId"`
	FuelType  string          `json:"fuelType"`
	Liters    models.NumInput `json:"liters"`
	StartTime string          `json:"startTime"`
	StopTime  string          `json:"stopTime"`
}

type FuelTestPage struct {
	Pumps []models.Pump     `json:"pumps"`
	Tests []models.FuelTest `json:"tests"`
}

func (s *StationService) FuelTests(ctx context.Context) (*FuelTestPage, error) {
	pumps, err := s.Pumps(ctx)
	if err != nil {
		return nil, err
	}
	tests, err := s.backend.ListFuelTests(ctx)
	if err != nil {
		return nil, backendError("load fuel tests", err)
	}
	return &FuelTestPage{Pumps: pumps, Tests: tests}, nil
}

// RecordFuelTest saves a test draw. The pump's number and name are copied
// onto the record and the duration is the whole seconds between start and
// stop.
func (s *StationService) RecordFuelTest(ctx context.Context, req FuelTestRequest) (*FuelTestPage, error) {
	var v apperror.Validator
	v.Check(req.PumpID != "", "pumpId", "Select a pump")
	v.Check(req.FuelType != "", "fuelType", "Select a fuel")
	v.Check(!req.Liters.IsBlank(), "liters", "Enter liters")
	v.Check(req.StartTime != "", "startTime", "Start the test first")
	if err := v.Err(); err != nil {
		return nil, err
	}

	pumps, err := s.Pumps(ctx)
	if err != nil {
		return nil, err
	}
	var pump *models.Pump
	for i := range pumps {
		if pumps[i].ID == req.PumpID {
			pump = &pumps[i]
			break
		}
	}
	if pump == nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "pumpId", Message: "Unknown pump"}})
	}
	if !slices.Contains(pump.FuelNames(), req.FuelType) {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "fuelType", Message: "Pump does not dispense " + req.FuelType}})
	}

	stop := req.StopTime
	if stop == "" {
		stop = s.now().Format("2006-01-02T15:04:05.000Z07:00")
	}
	test := models.FuelTest{
		PumpID:    pump.ID,
		PumpNo:    pump.PumpNo,
		PumpName:  pump.PumpName,
		FuelType:  req.FuelType,
		Liters:    req.Liters.Value(),
		StartTime: req.StartTime,
		StopTime:  stop,
		Duration:  calc.TestDuration(req.StartTime, stop),
	}
	if _, err := s.backend.CreateFuelTest(ctx, test); err != nil {
		return nil, backendError("save fuel test", err)
	}
	return s.FuelTests(ctx)
}
