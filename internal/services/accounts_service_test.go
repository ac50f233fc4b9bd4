package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fuel-console/internal/listing"
	"fuel-console/internal/models"
	"fuel-console/internal/timeutil"
	"fuel-console/pkg/apperror"
)

func TestFinanceService_CreateRequiresCategoryAndDescription(t *testing.T) {
	m := new(MockBackend)
	_, err := NewFinanceService(m).Create(context.Background(), models.FinanceEntry{Amount: 100})

	require.Error(t, err)
	assert.Len(t, apperror.GetAppError(err).Errors, 2)
	m.AssertNotCalled(t, "CreateFinance", mock.Anything, mock.Anything)
}

func TestFinanceService_CreateRefetchesWithSummary(t *testing.T) {
	m := new(MockBackend)
	m.On("CreateFinance", mock.Anything, mock.MatchedBy(func(e models.FinanceEntry) bool {
		return e.EntryType == models.EntryJournal
	})).Return(&models.FinanceEntry{}, nil)
	m.On("ListFinance", mock.Anything).Return([]models.FinanceEntry{{Category: "Rent"}}, nil)
	m.On("FinanceSummary", mock.Anything).Return(&models.FinanceSummary{Profit: 1200}, nil)

	page, err := NewFinanceService(m).Create(context.Background(), models.FinanceEntry{Category: "Rent", Description: "January"})

	require.NoError(t, err)
	assert.Len(t, page.Entries, 1)
	assert.Equal(t, 1200.0, page.Summary.Profit)
	m.AssertExpectations(t)
}

func TestPayrollService_AddEmployeeValidation(t *testing.T) {
	m := new(MockBackend)
	_, err := NewPayrollService(m).AddEmployee(context.Background(), models.Employee{Name: "Ravi"})

	require.Error(t, err)
	fields := []string{}
	for _, fe := range apperror.GetAppError(err).Errors {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"role", "salaryAmount"}, fields)
	m.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestPayrollService_StartShiftUsesHour(t *testing.T) {
	s := NewPayrollService(new(MockBackend))
	s.now = fixedClock(time.Date(2025, 1, 15, 15, 30, 0, 0, timeutil.IST))

	d := s.StartShift()

	assert.Equal(t, "2025-01-15", d.Date)
	assert.Equal(t, "B", d.Shift)
	assert.Equal(t, "15:30", d.InTime)
	assert.Equal(t, models.StatusPresent, d.Status)
}

func TestPayrollService_EndShiftStampsOutTime(t *testing.T) {
	m := new(MockBackend)
	s := NewPayrollService(m)
	s.now = fixedClock(time.Date(2025, 1, 15, 23, 5, 0, 0, timeutil.IST))

	_, err := s.EndShift(context.Background(), models.Attendance{})
	require.Error(t, err)

	m.On("CreateAttendance", mock.Anything, mock.MatchedBy(func(a models.Attendance) bool {
		return a.Employee.ID == "e1" && a.InTime == "22:00" && a.OutTime == "23:05" && a.Shift == "C" && a.Date == "2025-01-15"
	})).Return(&models.Attendance{}, nil)
	m.On("ListAttendance", mock.Anything).Return([]models.Attendance{{ID: "a1"}}, nil)

	records, err := s.EndShift(context.Background(), models.Attendance{Employee: models.EmployeeRef{ID: "e1"}, InTime: "22:00"})

	require.NoError(t, err)
	assert.Len(t, records, 1)
	m.AssertExpectations(t)
}

func TestPayrollService_PageFiltersAttendance(t *testing.T) {
	m := new(MockBackend)
	m.On("ListEmployees", mock.Anything).Return([]models.Employee{{ID: "e1", Name: "Ravi"}}, nil)
	m.On("ListAttendance", mock.Anything).Return([]models.Attendance{
		{ID: "a1", Date: "2025-01-10", Shift: "A", Status: models.StatusPresent},
		{ID: "a2", Date: "2025-01-11", Shift: "B", Status: models.StatusAbsent},
	}, nil)

	page, err := NewPayrollService(m).Page(context.Background(), listing.AttendanceQuery{Shift: "B"})

	require.NoError(t, err)
	require.Len(t, page.Attendance, 1)
	assert.Equal(t, "a2", page.Attendance[0].ID)
	assert.Len(t, page.Employees, 1)
}

func TestCleanVehicles(t *testing.T) {
	assert.Equal(t, []string{"KA01AB1234", "KA02CD5678"},
		CleanVehicles([]string{" KA01AB1234", "", "KA02CD5678", "KA01AB1234 ", "  "}))
	assert.Empty(t, CleanVehicles(nil))
}

func TestCreditService_CreateAccountValidation(t *testing.T) {
	m := new(MockBackend)
	_, err := NewCreditService(m, nil).CreateAccount(context.Background(), models.CreditAccount{AccountID: " "})

	require.Error(t, err)
	assert.Len(t, apperror.GetAppError(err).Errors, 3)
	m.AssertNotCalled(t, "CreateCreditAccount", mock.Anything, mock.Anything)
}

func TestCreditService_AccountsCarryStatus(t *testing.T) {
	m := new(MockBackend)
	m.On("ListCreditAccounts", mock.Anything).Return([]models.CreditAccount{
		{AccountID: "C1", CreditLimit: 1000, Outstanding: 1500},
		{AccountID: "C2", CreditLimit: 1000, Outstanding: 200},
	}, nil)

	views, err := NewCreditService(m, nil).Accounts(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].Status.OverLimit)
	assert.Equal(t, 500.0, views[0].Status.Excess)
	assert.False(t, views[1].Status.OverLimit)
	assert.Equal(t, 800.0, views[1].Status.Available)
}

func TestCreditService_TransactionNeedsPositiveAmount(t *testing.T) {
	m := new(MockBackend)
	_, err := NewCreditService(m, nil).RecordTransaction(context.Background(), models.CreditTransactionRequest{AccountID: "C1"})

	require.Error(t, err)
	assert.Equal(t, "amount", apperror.GetAppError(err).Errors[0].Field)
	m.AssertNotCalled(t, "CreateCreditTransaction", mock.Anything, mock.Anything)
}

type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) Put(ctx context.Context, name string, pdf []byte) (string, error) {
	args := m.Called(ctx, name, pdf)
	return args.String(0), args.Error(1)
}

func TestCreditService_InvoiceOnlyWhenOverLimit(t *testing.T) {
	m := new(MockBackend)
	m.On("ListCreditAccounts", mock.Anything).Return([]models.CreditAccount{
		{ID: "x1", AccountID: "C1", AccountName: "Fleet", Name: "Asha", CreditLimit: 1000, Outstanding: 1500},
		{ID: "x2", AccountID: "C2", CreditLimit: 1000, Outstanding: 200},
	}, nil)
	archive := new(MockArchiver)
	archive.On("Put", mock.Anything, "INV-C1-20250115100000.pdf", mock.Anything).Return("invoices/INV-C1-20250115100000.pdf", nil)

	s := NewCreditService(m, NewInvoiceService("Amar Neer Fuels", archive))
	s.now = fixedClock(morning)

	_, _, err := s.Invoice(context.Background(), "C2")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	_, _, err = s.Invoice(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	inv, pdf, err := s.Invoice(context.Background(), "x1")
	require.NoError(t, err)
	assert.Equal(t, "INV-C1-20250115100000", inv.InvoiceNo)
	assert.Equal(t, 1500.0, inv.Taxable)
	assert.Equal(t, 270.0, inv.GST)
	assert.Equal(t, 1770.0, inv.Total)
	assert.Equal(t, "invoices/INV-C1-20250115100000.pdf", inv.ArchiveKey)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	archive.AssertExpectations(t)
}

func TestInvoiceService_ArchiveFailureStillReturnsInvoice(t *testing.T) {
	archive := new(MockArchiver)
	archive.On("Put", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket missing"))

	inv, pdf, err := NewInvoiceService("", archive).Generate(context.Background(),
		models.CreditAccount{AccountID: "C1", Outstanding: 100, Vehicles: []string{"KA01"}}, morning)

	require.NoError(t, err)
	assert.Empty(t, inv.ArchiveKey)
	assert.NotEmpty(t, pdf)
}

func TestCreditService_InvoiceWithoutRenderer(t *testing.T) {
	_, _, err := NewCreditService(new(MockBackend), nil).Invoice(context.Background(), "C1")
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, apperror.GetAppError(err).Code)
}

func TestAdminService_CreateUser(t *testing.T) {
	m := new(MockBackend)
	s := NewAdminService(m)

	_, err := s.CreateUser(context.Background(), models.CreateAdminUserRequest{Username: "op"})
	require.Error(t, err)
	assert.Len(t, apperror.GetAppError(err).Errors, 2)

	m.On("CreateAdminUser", mock.Anything, models.CreateAdminUserRequest{
		Username: "op", Email: "op@example.com", Password: "secret", Role: "Attendant", PerformedBy: "Admin",
	}).Return(nil)
	m.On("ListAdminUsers", mock.Anything).Return([]models.AdminUser{{Username: "op"}}, nil)
	m.On("ListAdminLogs", mock.Anything).Return([]models.AdminLog{{Action: "Created user op"}}, nil)

	page, err := s.CreateUser(context.Background(), models.CreateAdminUserRequest{
		Username: " op ", Email: "op@example.com", Password: "secret", PerformedBy: "someone",
	})

	require.NoError(t, err)
	assert.Len(t, page.Users, 1)
	assert.Len(t, page.Logs, 1)
	assert.Equal(t, models.Roles, page.Roles)
	m.AssertExpectations(t)
}
