package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"fuel-console/internal/models"
	"fuel-console/internal/services"
	"fuel-console/pkg/utils"
)

// FinanceHandler serves the accounting API
type FinanceHandler struct {
	service *services.FinanceService
}

func NewFinanceHandler(service *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

// List handles GET /api/finance
func (h *FinanceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Page(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, page)
}

// Create handles POST /api/finance
func (h *FinanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var entry models.FinanceEntry
	if err := utils.DecodeJSON(r, &entry); err != nil {
		utils.Error(w, err)
		return
	}
	page, err := h.service.Create(r.Context(), entry)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, page)
}

// Update handles PUT /api/finance/{id}
func (h *FinanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var entry models.FinanceEntry
	if err := utils.DecodeJSON(r, &entry); err != nil {
		utils.Error(w, err)
		return
	}
	page, err := h.service.Update(r.Context(), mux.Vars(r)["id"], entry)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, page)
}

// Delete handles DELETE /api/finance/{id}
func (h *FinanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, page)
}
