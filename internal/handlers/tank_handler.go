package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"fuel-console/internal/listing"
	"fuel-console/internal/models"
	"fuel-console/internal/services"
	"fuel-console/pkg/utils"
)

// TankHandler serves the tank ledger and tank master APIs
type TankHandler struct {
	tanks   *services.TankService
	masters *services.TankMasterService
}

func NewTankHandler(tanks *services.TankService, masters *services.TankMasterService) *TankHandler {
	return &TankHandler{tanks: tanks, masters: masters}
}

func tankQuery(r *http.Request) listing.TankQuery {
	v := r.URL.Query()
	return listing.TankQuery{
		From:   v.Get("from"),
		To:     v.Get("to"),
		TankID: v.Get("tankId"),
		Fuel:   v.Get("fuel"),
	}
}

// List handles GET /api/tanks
func (h *TankHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.tanks.Page(r.Context(), tankQuery(r))
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, page)
}

type autoFillRequest struct {
	TankID string           `json:"tankId"`
	Draft  models.TankDraft `json:"draft"`
}

// AutoFill handles POST /api/tanks/autofill
func (h *TankHandler) AutoFill(w http.ResponseWriter, r *http.Request) {
	var req autoFillRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}
	fill, err := h.tanks.AutoFill(r.Context(), req.Draft, req.TankID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, fill)
}

// Preview handles POST /api/tanks/preview
func (h *TankHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var draft models.TankDraft
	if err := utils.DecodeJSON(r, &draft); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, h.tanks.Preview(draft))
}

// Create handles POST /api/tanks
func (h *TankHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.TankDraft
	if err := utils.DecodeJSON(r, &draft); err != nil {
		utils.Error(w, err)
		return
	}
	draft.ID = ""
	h.save(w, r, draft, http.StatusCreated)
}

// Update handles PUT /api/tanks/{id}
func (h *TankHandler) Update(w http.ResponseWriter, r *http.Request) {
	var draft models.TankDraft
	if err := utils.DecodeJSON(r, &draft); err != nil {
		utils.Error(w, err)
		return
	}
	draft.ID = mux.Vars(r)["id"]
	h.save(w, r, draft, http.StatusOK)
}

func (h *TankHandler) save(w http.ResponseWriter, r *http.Request, draft models.TankDraft, status int) {
	entries, err := h.tanks.Save(r.Context(), draft)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, status, entries)
}

// ListMasters handles GET /api/tank-master
func (h *TankHandler) ListMasters(w http.ResponseWriter, r *http.Request) {
	masters, err := h.masters.List(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, masters)
}

// CreateMaster handles POST /api/tank-master
func (h *TankHandler) CreateMaster(w http.ResponseWriter, r *http.Request) {
	var tm models.TankMaster
	if err := utils.DecodeJSON(r, &tm); err != nil {
		utils.Error(w, err)
		return
	}
	masters, err := h.masters.Create(r.Context(), tm)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, masters)
}
