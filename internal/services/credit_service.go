package services

import (
	"context"
	"net/http"
	"strings"

	"fuel-console/internal/calc"
	"fuel-console/internal/models"
	"fuel-console/pkg/apperror"
)

type CreditBackend interface {
	ListCreditAccounts(ctx context.Context) ([]models.CreditAccount, error)
	CreateCreditAccount(ctx context.Context, acc models.CreditAccount) (*models.CreditAccount, error)
	DeleteCreditAccount(ctx context.Context, id string) error
	CreateCreditTransaction(ctx context.Context, tx models.CreditTransactionRequest) error
}

type CreditService struct {
	backend  CreditBackend
	invoices *InvoiceService
	now      Clock
}

// NewCreditService wires the credit line. invoices may be nil, in which case
// bills cannot be generated.
func NewCreditService(backend CreditBackend, invoices *InvoiceService) *CreditService {
	return &CreditService{backend: backend, invoices: invoices, now: defaultClock}
}

// Accounts lists every credit account with its limit status.
func (s *CreditService) Accounts(ctx context.Context) ([]models.CreditAccountView, error) {
	accounts, err := s.backend.ListCreditAccounts(ctx)
	if err != nil {
		return nil, backendError("load credit accounts", err)
	}
	views := make([]models.CreditAccountView, 0, len(accounts))
	for _, acc := range accounts {
		views = append(views, models.CreditAccountView{CreditAccount: acc, Status: calc.CreditStatusOf(acc)})
	}
	return views, nil
}

// CleanVehicles trims vehicle numbers and drops blanks and repeats, keeping
// the first occurrence of each.
func CleanVehicles(vehicles []string) []string {
	seen := make(map[string]bool, len(vehicles))
	out := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func (s *CreditService) CreateAccount(ctx context.Context, acc models.CreditAccount) ([]models.CreditAccountView, error) {
	acc.AccountID = strings.TrimSpace(acc.AccountID)
	acc.Vehicles = CleanVehicles(acc.Vehicles)
	if acc.FuelType == "" {
		acc.FuelType = models.FuelPetrol
	}

	var v apperror.Validator
	v.Check(acc.AccountID != "", "accountId", "Account ID is required")
	v.Check(strings.TrimSpace(acc.AccountName) != "", "accountName", "Account name is required")
	v.Check(strings.TrimSpace(acc.Name) != "", "name", "Customer name is required")
	v.Check(acc.CreditLimit >= 0, "creditLimit", "Credit limit cannot be negative")
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.backend.CreateCreditAccount(ctx, acc); err != nil {
		return nil, backendError("create credit account", err)
	}
	return s.Accounts(ctx)
}

// RecordTransaction posts a credit sale or a repayment against an account.
func (s *CreditService) RecordTransaction(ctx context.Context, tx models.CreditTransactionRequest) ([]models.CreditAccountView, error) {
	if tx.Type == "" {
		tx.Type = models.CreditSale
	}

	var v apperror.Validator
	v.Check(tx.AccountID != "", "accountId", "Select an account")
	v.Check(tx.Amount > 0, "amount", "Enter a valid amount")
	v.Check(tx.Type == models.CreditSale || tx.Type == models.CreditPayment, "type", "Type must be Sale or Payment")
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.backend.CreateCreditTransaction(ctx, tx); err != nil {
		return nil, backendError("record credit transaction", err)
	}
	return s.Accounts(ctx)
}

func (s *CreditService) Delete(ctx context.Context, id string) ([]models.CreditAccountView, error) {
	if err := s.backend.DeleteCreditAccount(ctx, id); err != nil {
		return nil, backendError("delete credit account", err)
	}
	return s.Accounts(ctx)
}

// Invoice raises a GST bill for an over-limit account, matched by its
// document id or account id. Accounts within their limit get a 409.
func (s *CreditService) Invoice(ctx context.Context, id string) (*models.GSTInvoice, []byte, error) {
	if s.invoices == nil {
		return nil, nil, apperror.NewAppError(http.StatusServiceUnavailable, "Invoice generation is not configured")
	}

	accounts, err := s.backend.ListCreditAccounts(ctx)
	if err != nil {
		return nil, nil, backendError("load credit accounts", err)
	}
	for _, acc := range accounts {
		if acc.ID != id && acc.AccountID != id {
			continue
		}
		if !calc.CreditStatusOf(acc).OverLimit {
			return nil, nil, apperror.NewAppError(http.StatusConflict, "Account is within its credit limit")
		}
		return s.invoices.Generate(ctx, acc, s.now())
	}
	return nil, nil, apperror.NewNotFoundError("Credit account")
}
