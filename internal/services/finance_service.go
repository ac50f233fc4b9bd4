package services

import (
	"context"
	"strings"

	"fuel-console/internal/models"
	"fuel-console/pkg/apperror"
)

type FinanceBackend interface {
	ListFinance(ctx context.Context) ([]models.FinanceEntry, error)
	FinanceSummary(ctx context.Context) (*models.FinanceSummary, error)
	CreateFinance(ctx context.Context, entry models.FinanceEntry) (*models.FinanceEntry, error)
	UpdateFinance(ctx context.Context, id string, entry models.FinanceEntry) (*models.FinanceEntry, error)
	DeleteFinance(ctx context.Context, id string) error
}

type FinanceService struct {
	backend FinanceBackend
}

func NewFinanceService(backend FinanceBackend) *FinanceService {
	return &FinanceService{backend: backend}
}

type FinancePage struct {
	Entries []models.FinanceEntry `json:"entries"`
	Summary models.FinanceSummary `json:"summary"`
}

// Page loads the entries together with the backend's summary.
func (s *FinanceService) Page(ctx context.Context) (*FinancePage, error) {
	entries, err := s.backend.ListFinance(ctx)
	if err != nil {
		return nil, backendError("load finance entries", err)
	}
	summary, err := s.backend.FinanceSummary(ctx)
	if err != nil {
		return nil, backendError("load finance summary", err)
	}
	return &FinancePage{Entries: entries, Summary: *summary}, nil
}

func validateFinance(e models.FinanceEntry) error {
	var v apperror.Validator
	v.Check(strings.TrimSpace(e.Category) != "", "category", "Category is required")
	v.Check(strings.TrimSpace(e.Description) != "", "description", "Description is required")
	return v.Err()
}

func (s *FinanceService) Create(ctx context.Context, e models.FinanceEntry) (*FinancePage, error) {
	if e.EntryType == "" {
		e.EntryType = models.EntryJournal
	}
	if err := validateFinance(e); err != nil {
		return nil, err
	}
	if _, err := s.backend.CreateFinance(ctx, e); err != nil {
		return nil, backendError("save finance entry", err)
	}
	return s.Page(ctx)
}

func (s *FinanceService) Update(ctx context.Context, id string, e models.FinanceEntry) (*FinancePage, error) {
	if id == "" {
		return nil, apperror.NewBadRequestError("Missing entry ID")
	}
	if err := validateFinance(e); err != nil {
		return nil, err
	}
	if _, err := s.backend.UpdateFinance(ctx, id, e); err != nil {
		return nil, backendError("update finance entry", err)
	}
	return s.Page(ctx)
}

func (s *FinanceService) Delete(ctx context.Context, id string) (*FinancePage, error) {
	if err := s.backend.DeleteFinance(ctx, id); err != nil {
		return nil, backendError("delete finance entry", err)
	}
	return s.Page(ctx)
}
