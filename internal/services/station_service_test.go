package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fuel-console/internal/models"
	"fuel-console/internal/remote"
	"fuel-console/pkg/apperror"
)

func TestStationService_FuelRatesNotFoundIsEmpty(t *testing.T) {
	m := new(MockBackend)
	m.On("GetFuelRates", mock.Anything).Return(nil, &remote.Error{Status: http.StatusNotFound})

	rates, err := NewStationService(m).FuelRates(context.Background())

	require.NoError(t, err)
	assert.Nil(t, rates)
}

func TestStationService_FuelRatesOtherErrors(t *testing.T) {
	m := new(MockBackend)
	m.On("GetFuelRates", mock.Anything).Return(nil, &remote.Error{Status: http.StatusInternalServerError})

	_, err := NewStationService(m).FuelRates(context.Background())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperror.GetAppError(err).Code)
}

func TestStationService_SaveFuelRates(t *testing.T) {
	m := new(MockBackend)
	s := NewStationService(m)

	_, err := s.SaveFuelRates(context.Background(), models.FuelRates{Petrol: -1})
	require.Error(t, err)

	rates := models.FuelRates{Petrol: 102.5, Diesel: 89.1}
	m.On("SaveFuelRates", mock.Anything, rates).Return(nil)
	m.On("GetFuelRates", mock.Anything).Return(&rates, nil)

	saved, err := s.SaveFuelRates(context.Background(), rates)
	require.NoError(t, err)
	assert.Equal(t, 102.5, saved.Petrol)
}

func TestStationService_CreatePump(t *testing.T) {
	m := new(MockBackend)
	s := NewStationService(m)

	_, err := s.CreatePump(context.Background(), models.Pump{PumpNo: "1", PumpName: "North"})
	require.Error(t, err)
	assert.Equal(t, "fuels", apperror.GetAppError(err).Errors[0].Field)

	_, err = s.CreatePump(context.Background(), models.Pump{PumpNo: "1", PumpName: "North", Fuels: []models.PumpFuel{{Type: "Kerosene"}}})
	require.Error(t, err)

	m.On("CreatePump", mock.Anything, models.Pump{
		PumpNo: "1", PumpName: "North",
		Fuels: []models.PumpFuel{{Type: models.FuelPetrol}, {Type: models.FuelDiesel}},
	}).Return(&models.Pump{}, nil)
	m.On("ListPumps", mock.Anything).Return([]models.Pump{{PumpNo: "1"}}, nil)

	pumps, err := s.CreatePump(context.Background(), models.Pump{
		PumpNo: " 1 ", PumpName: "North",
		Fuels: []models.PumpFuel{{Type: models.FuelPetrol}, {Type: models.FuelDiesel}, {Type: models.FuelPetrol}},
	})
	require.NoError(t, err)
	assert.Len(t, pumps, 1)
	m.AssertExpectations(t)
}

func TestStationService_SaveShift(t *testing.T) {
	m := new(MockBackend)
	s := NewStationService(m)

	_, err := s.SaveShift(context.Background(), models.Shift{ShiftName: "Morning"})
	require.Error(t, err)
	assert.Len(t, apperror.GetAppError(err).Errors, 2)

	shift := models.Shift{ID: "s1", ShiftName: "Morning", StartTime: "06:00", EndTime: "14:00"}
	m.On("UpdateShift", mock.Anything, "s1", shift).Return(&shift, nil)
	m.On("ListShifts", mock.Anything).Return([]models.Shift{shift}, nil)

	shifts, err := s.SaveShift(context.Background(), shift)
	require.NoError(t, err)
	assert.Len(t, shifts, 1)
	m.AssertNotCalled(t, "CreateShift", mock.Anything, mock.Anything)
}

func TestStationService_RecordFuelTest(t *testing.T) {
	m := new(MockBackend)
	s := NewStationService(m)
	s.now = fixedClock(morning)

	_, err := s.RecordFuelTest(context.Background(), FuelTestRequest{PumpID: "p1", FuelType: models.FuelPetrol})
	require.Error(t, err)
	assert.Len(t, apperror.GetAppError(err).Errors, 2)

	m.On("ListPumps", mock.Anything).Return([]models.Pump{
		{ID: "p1", PumpNo: "1", PumpName: "North", Fuels: []models.PumpFuel{{Type: models.FuelPetrol}}},
	}, nil)

	_, err = s.RecordFuelTest(context.Background(), FuelTestRequest{
		PumpID: "p1", FuelType: models.FuelDiesel, Liters: "5", StartTime: "2025-01-15T09:59:00+05:30",
	})
	require.Error(t, err)
	assert.Equal(t, "fuelType", apperror.GetAppError(err).Errors[0].Field)

	m.On("CreateFuelTest", mock.Anything, mock.MatchedBy(func(ft models.FuelTest) bool {
		return ft.PumpNo == "1" && ft.PumpName == "North" && ft.Liters == 5 && ft.Duration == 75
	})).Return(&models.FuelTest{}, nil)
	m.On("ListFuelTests", mock.Anything).Return([]models.FuelTest{{PumpID: "p1"}}, nil)

	page, err := s.RecordFuelTest(context.Background(), FuelTestRequest{
		PumpID: "p1", FuelType: models.FuelPetrol, Liters: "5", StartTime: "2025-01-15T09:58:45+05:30",
	})
	require.NoError(t, err)
	assert.Len(t, page.Tests, 1)
	assert.Len(t, page.Pumps, 1)
	m.AssertExpectations(t)
}
