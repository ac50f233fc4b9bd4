package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"fuel-console/internal/listing"
	"fuel-console/internal/models"
	"fuel-console/internal/services"
	"fuel-console/pkg/utils"
)

// PayrollHandler serves employees and attendance
type PayrollHandler struct {
	service *services.PayrollService
}

func NewPayrollHandler(service *services.PayrollService) *PayrollHandler {
	return &PayrollHandler{service: service}
}

func attendanceQuery(r *http.Request) listing.AttendanceQuery {
	v := r.URL.Query()
	return listing.AttendanceQuery{
		From:   v.Get("from"),
		To:     v.Get("to"),
		Shift:  v.Get("shift"),
		Status: v.Get("status"),
		Search: v.Get("search"),
	}
}

// Page handles GET /api/attendance
func (h *PayrollHandler) Page(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Page(r.Context(), attendanceQuery(r))
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, page)
}

// StartShift handles GET /api/attendance/start
func (h *PayrollHandler) StartShift(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.service.StartShift())
}

// AddEmployee handles POST /api/payroll/employee
func (h *PayrollHandler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var emp models.Employee
	if err := utils.DecodeJSON(r, &emp); err != nil {
		utils.Error(w, err)
		return
	}
	employees, err := h.service.AddEmployee(r.Context(), emp)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, employees)
}

// EndShift handles POST /api/attendance
func (h *PayrollHandler) EndShift(w http.ResponseWriter, r *http.Request) {
	var a models.Attendance
	if err := utils.DecodeJSON(r, &a); err != nil {
		utils.Error(w, err)
		return
	}
	records, err := h.service.EndShift(r.Context(), a)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, records)
}

// DeleteAttendance handles DELETE /api/attendance/{id}
func (h *PayrollHandler) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.DeleteAttendance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, records)
}
