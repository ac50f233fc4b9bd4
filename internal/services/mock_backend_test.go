package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fuel-console/internal/models"
)

// MockBackend stands in for the remote client in every service test.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListSales(ctx context.Context) ([]models.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sale), args.Error(1)
}

func (m *MockBackend) CreateSale(ctx context.Context, sale models.Sale) (*models.Sale, error) {
	args := m.Called(ctx, sale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sale), args.Error(1)
}

func (m *MockBackend) UpdateSale(ctx context.Context, id string, sale models.Sale) (*models.Sale, error) {
	args := m.Called(ctx, id, sale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sale), args.Error(1)
}

func (m *MockBackend) DeleteSale(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) ListTanks(ctx context.Context) ([]models.TankEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TankEntry), args.Error(1)
}

func (m *MockBackend) CreateTank(ctx context.Context, entry models.TankEntry) (*models.TankEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TankEntry), args.Error(1)
}

func (m *MockBackend) UpdateTank(ctx context.Context, id string, entry models.TankEntry) (*models.TankEntry, error) {
	args := m.Called(ctx, id, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TankEntry), args.Error(1)
}

func (m *MockBackend) ListTankMasters(ctx context.Context) ([]models.TankMaster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TankMaster), args.Error(1)
}

func (m *MockBackend) CreateTankMaster(ctx context.Context, tm models.TankMaster) (*models.TankMaster, error) {
	args := m.Called(ctx, tm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TankMaster), args.Error(1)
}

func (m *MockBackend) ListFinance(ctx context.Context) ([]models.FinanceEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FinanceEntry), args.Error(1)
}

func (m *MockBackend) FinanceSummary(ctx context.Context) (*models.FinanceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FinanceSummary), args.Error(1)
}

func (m *MockBackend) CreateFinance(ctx context.Context, entry models.FinanceEntry) (*models.FinanceEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FinanceEntry), args.Error(1)
}

func (m *MockBackend) UpdateFinance(ctx context.Context, id string, entry models.FinanceEntry) (*models.FinanceEntry, error) {
	args := m.Called(ctx, id, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FinanceEntry), args.Error(1)
}

func (m *MockBackend) DeleteFinance(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Employee), args.Error(1)
}

func (m *MockBackend) CreateEmployee(ctx context.Context, emp models.Employee) (*models.Employee, error) {
	args := m.Called(ctx, emp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockBackend) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attendance), args.Error(1)
}

func (m *MockBackend) CreateAttendance(ctx context.Context, a models.Attendance) (*models.Attendance, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func (m *MockBackend) DeleteAttendance(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) ListCreditAccounts(ctx context.Context) ([]models.CreditAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CreditAccount), args.Error(1)
}

func (m *MockBackend) CreateCreditAccount(ctx context.Context, acc models.CreditAccount) (*models.CreditAccount, error) {
	args := m.Called(ctx, acc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreditAccount), args.Error(1)
}

func (m *MockBackend) DeleteCreditAccount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) CreateCreditTransaction(ctx context.Context, tx models.CreditTransactionRequest) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBackend) ListAdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdminUser), args.Error(1)
}

func (m *MockBackend) CreateAdminUser(ctx context.Context, req models.CreateAdminUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockBackend) DeleteAdminUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) ListAdminLogs(ctx context.Context) ([]models.AdminLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdminLog), args.Error(1)
}

func (m *MockBackend) GetFuelRates(ctx context.Context) (*models.FuelRates, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FuelRates), args.Error(1)
}

func (m *MockBackend) SaveFuelRates(ctx context.Context, rates models.FuelRates) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

func (m *MockBackend) ListPumps(ctx context.Context) ([]models.Pump, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pump), args.Error(1)
}

func (m *MockBackend) CreatePump(ctx context.Context, p models.Pump) (*models.Pump, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pump), args.Error(1)
}

func (m *MockBackend) DeletePump(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) ListShifts(ctx context.Context) ([]models.Shift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Shift), args.Error(1)
}

func (m *MockBackend) CreateShift(ctx context.Context, s models.Shift) (*models.Shift, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shift), args.Error(1)
}

func (m *MockBackend) UpdateShift(ctx context.Context, id string, s models.Shift) (*models.Shift, error) {
	args := m.Called(ctx, id, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shift), args.Error(1)
}

func (m *MockBackend) DeleteShift(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) ListFuelTests(ctx context.Context) ([]models.FuelTest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FuelTest), args.Error(1)
}

func (m *MockBackend) CreateFuelTest(ctx context.Context, t models.FuelTest) (*models.FuelTest, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FuelTest), args.Error(1)
}

func (m *MockBackend) FuelTestsByDate(ctx context.Context, pumpID, date string) ([]models.FuelTest, error) {
	args := m.Called(ctx, pumpID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FuelTest), args.Error(1)
}

func (m *MockBackend) ListPayments(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockBackend) CreatePayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}
