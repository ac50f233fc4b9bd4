package services

import (
	"context"
	"strings"

	"fuel-console/internal/listing"
	"fuel-console/internal/models"
	"fuel-console/internal/timeutil"
	"fuel-console/pkg/apperror"
)

type PayrollBackend interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, emp models.Employee) (*models.Employee, error)
	ListAttendance(ctx context.Context) ([]models.Attendance, error)
	CreateAttendance(ctx context.Context, a models.Attendance) (*models.Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error
}

type PayrollService struct {
	backend PayrollBackend
	now     Clock
}

func NewPayrollService(backend PayrollBackend) *PayrollService {
	return &PayrollService{backend: backend, now: defaultClock}
}

type PayrollPage struct {
	Employees  []models.Employee   `json:"employees"`
	Attendance []models.Attendance `json:"attendance"`
	Draft      models.Attendance   `json:"draft"`
}

// Page loads employees and the filtered attendance register. Draft is a new
// attendance record stamped with the current shift.
func (s *PayrollService) Page(ctx context.Context, q listing.AttendanceQuery) (*PayrollPage, error) {
	employees, err := s.backend.ListEmployees(ctx)
	if err != nil {
		return nil, backendError("load employees", err)
	}
	records, err := s.backend.ListAttendance(ctx)
	if err != nil {
		return nil, backendError("load attendance", err)
	}
	return &PayrollPage{
		Employees:  employees,
		Attendance: listing.Attendance(records, q),
		Draft:      s.StartShift(),
	}, nil
}

// StartShift returns an attendance draft for now: today's date, the shift
// letter for the current hour and the current time as in-time.
func (s *PayrollService) StartShift() models.Attendance {
	now := s.now()
	return models.Attendance{
		Date:   now.Format(timeutil.DateLayout),
		Shift:  timeutil.ShiftFor(now),
		InTime: now.Format(timeutil.ClockLayout),
		Status: models.StatusPresent,
	}
}

// AddEmployee validates and creates an employee, returning the refreshed list.
func (s *PayrollService) AddEmployee(ctx context.Context, e models.Employee) ([]models.Employee, error) {
	if e.SalaryType == "" {
		e.SalaryType = models.SalaryMonthly
	}

	var v apperror.Validator
	v.Check(strings.TrimSpace(e.Name) != "", "name", "Employee name is required")
	v.Check(strings.TrimSpace(e.Role) != "", "role", "Role is required")
	v.Check(e.SalaryAmount > 0, "salaryAmount", "Salary amount is required")
	v.Check(e.SalaryType == models.SalaryMonthly || e.SalaryType == models.SalaryShift, "salaryType", "Salary type must be Monthly or Shift")
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.backend.CreateEmployee(ctx, e); err != nil {
		return nil, backendError("add employee", err)
	}
	employees, err := s.backend.ListEmployees(ctx)
	if err != nil {
		return nil, backendError("load employees", err)
	}
	return employees, nil
}

// EndShift stamps the out-time and saves the attendance record. Fields the
// draft leaves blank are filled as StartShift would.
func (s *PayrollService) EndShift(ctx context.Context, a models.Attendance) ([]models.Attendance, error) {
	var v apperror.Validator
	v.Check(a.Employee.ID != "", "employeeId", "Select an employee first!")
	if err := v.Err(); err != nil {
		return nil, err
	}

	start := s.StartShift()
	if a.Date == "" {
		a.Date = start.Date
	}
	if a.Shift == "" {
		a.Shift = start.Shift
	}
	if a.InTime == "" {
		a.InTime = start.InTime
	}
	if a.Status == "" {
		a.Status = models.StatusPresent
	}
	a.OutTime = s.now().Format(timeutil.ClockLayout)

	if _, err := s.backend.CreateAttendance(ctx, a); err != nil {
		return nil, backendError("save attendance", err)
	}
	return s.attendance(ctx)
}

func (s *PayrollService) DeleteAttendance(ctx context.Context, id string) ([]models.Attendance, error) {
	if err := s.backend.DeleteAttendance(ctx, id); err != nil {
		return nil, backendError("delete attendance", err)
	}
	return s.attendance(ctx)
}

func (s *PayrollService) attendance(ctx context.Context) ([]models.Attendance, error) {
	records, err := s.backend.ListAttendance(ctx)
	if err != nil {
		return nil, backendError("load attendance", err)
	}
	return records, nil
}
