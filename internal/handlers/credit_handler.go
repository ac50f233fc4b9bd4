package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"fuel-console/internal/models"
	"fuel-console/internal/services"
	"fuel-console/pkg/utils"
)

// CreditHandler serves the credit line API
type CreditHandler struct {
	service *services.CreditService
}

func NewCreditHandler(service *services.CreditService) *CreditHandler {
	return &CreditHandler{service: service}
}

// List handles GET /api/credit
func (h *CreditHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.Accounts(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, accounts)
}

// Create handles POST /api/credit
func (h *CreditHandler) Create(w http.ResponseWriter, r *http.Request) {
	var acc models.CreditAccount
	if err := utils.DecodeJSON(r, &acc); err != nil {
		utils.Error(w, err)
		return
	}
	accounts, err := h.service.CreateAccount(r.Context(), acc)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, accounts)
}

// Transaction handles POST /api/credit/transaction
func (h *CreditHandler) Transaction(w http.ResponseWriter, r *http.Request) {
	var tx models.CreditTransactionRequest
	if err := utils.DecodeJSON(r, &tx); err != nil {
		utils.Error(w, err)
		return
	}
	accounts, err := h.service.RecordTransaction(r.Context(), tx)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, accounts)
}

// Delete handles DELETE /api/credit/{id}
func (h *CreditHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, accounts)
}

// Invoice handles GET /api/credit/{id}/invoice
// Returns the PDF, or the invoice figures with format=json.
func (h *CreditHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	inv, pdf, err := h.service.Invoice(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, err)
		return
	}

	if r.URL.Query().Get("format") == "json" {
		utils.JSON(w, http.StatusOK, inv)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.pdf\"", inv.InvoiceNo))
	w.Write(pdf)
}
