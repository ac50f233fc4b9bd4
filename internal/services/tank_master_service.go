package services

import (
	"context"
	"strings"

	"fuel-console/internal/models"
	"fuel-console/pkg/apperror"
)

type TankMasterBackend interface {
	ListTankMasters(ctx context.Context) ([]models.TankMaster, error)
	CreateTankMaster(ctx context.Context, tm models.TankMaster) (*models.TankMaster, error)
}

type TankMasterService struct {
	backend TankMasterBackend
}

func NewTankMasterService(backend TankMasterBackend) *TankMasterService {
	return &TankMasterService{backend: backend}
}

func (s *TankMasterService) List(ctx context.Context) ([]models.TankMaster, error) {
	masters, err := s.backend.ListTankMasters(ctx)
	if err != nil {
		return nil, backendError("load tank master", err)
	}
	return masters, nil
}

// Create registers a tank. Fuel type defaults to Petrol.
func (s *TankMasterService) Create(ctx context.Context, tm models.TankMaster) ([]models.TankMaster, error) {
	tm.TankID = strings.TrimSpace(tm.TankID)
	if tm.FuelType == "" {
		tm.FuelType = models.FuelPetrol
	}

	var v apperror.Validator
	v.Check(tm.TankID != "", "tankId", "Enter Tank ID")
	v.Check(tm.Capacity > 0, "capacity", "Enter capacity")
	v.Check(models.IsFuelType(tm.FuelType), "fuelType", "Unknown fuel type")
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.backend.CreateTankMaster(ctx, tm); err != nil {
		return nil, backendError("add tank", err)
	}
	return s.List(ctx)
}
