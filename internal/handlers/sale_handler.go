package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"fuel-console/internal/listing"
	"fuel-console/internal/models"
	"fuel-console/internal/services"
	"fuel-console/pkg/utils"
)

// SaleHandler serves the sale entry API
type SaleHandler struct {
	service *services.SaleService
}

func NewSaleHandler(service *services.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// saleQuery reads the sales filter bar from the query string. preset=month
// selects the current month to date.
func saleQuery(r *http.Request) listing.SaleQuery {
	v := r.URL.Query()
	q := listing.SaleQuery{
		From:     v.Get("from"),
		To:       v.Get("to"),
		FuelType: v.Get("fuelType"),
		Pump:     v.Get("pump"),
		Search:   v.Get("search"),
		SortBy:   v.Get("sortBy"),
		Dir:      listing.ParseDirection(v.Get("dir")),
	}
	if v.Get("preset") == "month" {
		q.ThisMonth()
	}
	return q
}

// List handles GET /api/sales
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Page(r.Context(), saleQuery(r))
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, page)
}

// Preview handles POST /api/sales/preview
func (h *SaleHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var draft models.SaleDraft
	if err := utils.DecodeJSON(r, &draft); err != nil {
		utils.Error(w, err)
		return
	}
	preview, err := h.service.Preview(r.Context(), draft)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, preview)
}

// Create handles POST /api/sales
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.SaleDraft
	if err := utils.DecodeJSON(r, &draft); err != nil {
		utils.Error(w, err)
		return
	}
	draft.ID = ""
	h.save(w, r, draft, http.StatusCreated)
}

// Update handles PUT /api/sales/{id}
func (h *SaleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var draft models.SaleDraft
	if err := utils.DecodeJSON(r, &draft); err != nil {
		utils.Error(w, err)
		return
	}
	draft.ID = mux.Vars(r)["id"]
	h.save(w, r, draft, http.StatusOK)
}

func (h *SaleHandler) save(w http.ResponseWriter, r *http.Request, draft models.SaleDraft, status int) {
	sales, err := h.service.Save(r.Context(), draft)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, status, sales)
}

// Delete handles DELETE /api/sales/{id}
func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, sales)
}
