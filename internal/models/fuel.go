package models

import (
	"slices"
	"strings"
)

// Fuel types sold at the station.
const (
	FuelPetrol        = "Petrol"
	FuelDiesel        = "Diesel"
	FuelPremiumPetrol = "Premium Petrol"
	FuelCNG           = "CNG"
)

var FuelTypes = []string{FuelPetrol, FuelDiesel, FuelPremiumPetrol, FuelCNG}

// IsFuelType reports whether s is one of FuelTypes.
func IsFuelType(s string) bool {
	return slices.Contains(FuelTypes, s)
}

// FuelRates holds the current per-litre price of each fuel.
type FuelRates struct {
	Petrol        float64 `json:"petrol"`
	Diesel        float64 `json:"diesel"`
	PremiumPetrol float64 `json:"premiumPetrol"`
	CNG           float64 `json:"cng"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
}

// RateFor returns the rate for a product type, 0 when the product is unknown.
func (r FuelRates) RateFor(product string) float64 {
	switch strings.TrimSpace(product) {
	case FuelPetrol:
		return r.Petrol
	case FuelDiesel:
		return r.Diesel
	case FuelPremiumPetrol:
		return r.PremiumPetrol
	case FuelCNG:
		return r.CNG
	}
	return 0
}

type PumpFuel struct {
	Type string `json:"type"`
}

type Pump struct {
	ID       string     `json:"_id,omitempty"`
	PumpNo   string     `json:"pumpNo"`
	PumpName string     `json:"pumpName"`
	Fuels    []PumpFuel `json:"fuels"`
}

// FuelNames lists the pump's fuel types.
func (p Pump) FuelNames() []string {
	names := make([]string, 0, len(p.Fuels))
	for _, f := range p.Fuels {
		names = append(names, f.Type)
	}
	return names
}

// FuelTest is fuel drawn from a nozzle for calibration and returned to the
// tank. It is excluded from a sale's litres.
type FuelTest struct {
	ID        string  `json:"_id,omitempty"`
	PumpID    string  `json:"pumpId"`
	PumpNo    string  `json:"pumpNo,omitempty"`
	PumpName  string  `json:"pumpName,omitempty"`
	FuelType  string  `json:"fuelType"`
	Liters    float64 `json:"liters"`
	StartTime string  `json:"startTime,omitempty"`
	StopTime  string  `json:"stopTime,omitempty"`
	Duration  int64   `json:"duration"`
}

type Shift struct {
	ID        string `json:"_id,omitempty"`
	ShiftName string `json:"shiftName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
