package handlers

import (
	"net/http"

	"fuel-console/internal/services"
	"fuel-console/pkg/utils"
)

// PaymentHandler serves live payments and the payment comparison
type PaymentHandler struct {
	service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// List handles GET /api/payments
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.List(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}

// Record handles POST /api/payments
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req services.PaymentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}
	payments, err := h.service.Record(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, payments)
}

// Compare handles GET /api/payments/compare
// Query params: date=YYYY-MM-DD (defaults to today), shift (optional)
func (h *PaymentHandler) Compare(w http.ResponseWriter, r *http.Request) {
	cmp, err := h.service.Compare(r.Context(), r.URL.Query().Get("date"), r.URL.Query().Get("shift"))
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, cmp)
}
