package models

import (
	"bytes"
	"encoding/json"
)

// Salary types.
const (
	SalaryMonthly = "Monthly"
	SalaryShift   = "Shift"
)

// Attendance statuses.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
)

type Employee struct {
	ID            string  `json:"_id,omitempty"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	SalaryType    string  `json:"salaryType"`
	SalaryAmount  float64 `json:"salaryAmount"`
	BankName      string  `json:"bankName,omitempty"`
	AccountNumber string  `json:"accountNumber,omitempty"`
	IFSCCode      string  `json:"ifscCode,omitempty"`
}

// EmployeeRef is an attendance record's employee: the backend sends either
// the bare id or the populated employee document.
type EmployeeRef struct {
	ID       string
	Employee *Employee
}

func (e *EmployeeRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*e = EmployeeRef{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*e = EmployeeRef{ID: id}
		return nil
	}
	var emp Employee
	if err := json.Unmarshal(data, &emp); err != nil {
		return err
	}
	*e = EmployeeRef{ID: emp.ID, Employee: &emp}
	return nil
}

// MarshalJSON always sends the id; the backend populates on read.
func (e EmployeeRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ID)
}

// Name returns the populated employee's name, or "" when only the id is known.
func (e EmployeeRef) Name() string {
	if e.Employee == nil {
		return ""
	}
	return e.Employee.Name
}

// Role returns the populated employee's role.
func (e EmployeeRef) Role() string {
	if e.Employee == nil {
		return ""
	}
	return e.Employee.Role
}

type Attendance struct {
	ID            string      `json:"_id,omitempty"`
	Employee      EmployeeRef `json:"employeeId"`
	Date          string      `json:"date"`
	Shift         string      `json:"shift"`
	InTime        string      `json:"inTime"`
	OutTime       string      `json:"outTime"`
	Status        string      `json:"status"`
	OvertimeHours float64     `json:"overtimeHours"`
	SalaryEarned  float64     `json:"salaryEarned,omitempty"`
}
