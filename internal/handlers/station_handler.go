package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"fuel-console/internal/models"
	"fuel-console/internal/services"
	"fuel-console/pkg/utils"
)

// StationHandler serves fuel rates, pumps, shifts and fuel tests
type StationHandler struct {
	service *services.StationService
}

func NewStationHandler(service *services.StationService) *StationHandler {
	return &StationHandler{service: service}
}

// GetFuelRates handles GET /api/fuel-rates
// Responds with null when no rates have been saved yet.
func (h *StationHandler) GetFuelRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.service.FuelRates(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, rates)
}

// SaveFuelRates handles POST /api/fuel-rates
func (h *StationHandler) SaveFuelRates(w http.ResponseWriter, r *http.Request) {
	var rates models.FuelRates
	if err := utils.DecodeJSON(r, &rates); err != nil {
		utils.Error(w, err)
		return
	}
	saved, err := h.service.SaveFuelRates(r.Context(), rates)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, saved)
}

// ListPumps handles GET /api/pumps
func (h *StationHandler) ListPumps(w http.ResponseWriter, r *http.Request) {
	pumps, err := h.service.Pumps(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, pumps)
}

// CreatePump handles POST /api/pumps
func (h *StationHandler) CreatePump(w http.ResponseWriter, r *http.Request) {
	var p models.Pump
	if err := utils.DecodeJSON(r, &p); err != nil {
		utils.Error(w, err)
		return
	}
	pumps, err := h.service.CreatePump(r.Context(), p)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, pumps)
}

// DeletePump handles DELETE /api/pumps/{id}
func (h *StationHandler) DeletePump(w http.ResponseWriter, r *http.Request) {
	pumps, err := h.service.DeletePump(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, pumps)
}

// ListShifts handles GET /api/shifts
func (h *StationHandler) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.service.Shifts(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, shifts)
}

// CreateShift handles POST /api/shifts
func (h *StationHandler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var s models.Shift
	if err := utils.DecodeJSON(r, &s); err != nil {
		utils.Error(w, err)
		return
	}
	s.ID = ""
	h.saveShift(w, r, s, http.StatusCreated)
}

// UpdateShift handles PUT /api/shifts/{id}
func (h *StationHandler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var s models.Shift
	if err := utils.DecodeJSON(r, &s); err != nil {
		utils.Error(w, err)
		return
	}
	s.ID = mux.Vars(r)["id"]
	h.saveShift(w, r, s, http.StatusOK)
}

func (h *StationHandler) saveShift(w http.ResponseWriter, r *http.Request, s models.Shift, status int) {
	shifts, err := h.service.SaveShift(r.Context(), s)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, status, shifts)
}

// DeleteShift handles DELETE /api/shifts/{id}
func (h *StationHandler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.service.DeleteShift(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, shifts)
}

// ListFuelTests handles GET /api/fueltest
func (h *StationHandler) ListFuelTests(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.FuelTests(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, page)
}

// RecordFuelTest handles POST /api/fueltest
func (h *StationHandler) RecordFuelTest(w http.ResponseWriter, r *http.Request) {
	var req services.FuelTestRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}
	page, err := h.service.RecordFuelTest(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, page)
}
