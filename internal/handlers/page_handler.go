package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"fuel-console/internal/dashboard"
	"fuel-console/internal/models"
	"fuel-console/internal/services"
	"fuel-console/internal/settings"
	"fuel-console/internal/timeutil"
	"fuel-console/pkg/apperror"
	"fuel-console/templates"
)

// PageServices are the view-models behind the console pages.
type PageServices struct {
	Sales    *services.SaleService
	Tanks    *services.TankService
	Masters  *services.TankMasterService
	Finance  *services.FinanceService
	Payroll  *services.PayrollService
	Credit   *services.CreditService
	Admin    *services.AdminService
	Station  *services.StationService
	Payments *services.PaymentService
	Poller   *dashboard.Poller
}

type PageHandler struct {
	pages map[string]*template.Template
	svc   PageServices
	theme *settings.ThemeStore
}

// PageView is what every page template receives.
type PageView struct {
	Title string
	Route string
	Theme string
	Error string
	Query url.Values
	Nav   []NavItem
	Data  interface{}
}

type NavItem struct {
	Route string
	Label string
}

var nav = []NavItem{
	{"/dashboard", "Home"},
	{"/dash", "Dashboard"},
	{"/saleentry", "Sale Entry"},
	{"/tanks", "Tanks"},
	{"/finance", "Accounts"},
	{"/attendance", "Attendance"},
	{"/creditline", "Credit Line"},
	{"/fuelrate", "Fuel Rates"},
	{"/pump", "Pumps"},
	{"/addtank", "Add Tank"},
	{"/testfuel", "Test Fuel"},
	{"/shift", "Shifts"},
	{"/payment", "Live Payment"},
	{"/paymentcomp", "Payment Check"},
	{"/admin", "Admin"},
}

// pageFiles maps template names to their files. Each page is parsed with
// the shared layout.
var pageFiles = []string{
	"home.html", "launcher.html", "dash.html", "saleentry.html", "tanks.html",
	"finance.html", "attendance.html", "creditline.html", "admin.html",
	"contact.html", "sign.html", "signup.html", "fuelrate.html", "pump.html",
	"addtank.html", "testfuel.html", "shift.html", "payment.html", "paymentcomp.html",
}

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"num":   func(v models.Number) string { return fmt.Sprintf("%.2f", v.Float()) },
	"date":  timeutil.DatePart,
	"pct":   func(s models.StockLevel) string { return fmt.Sprintf("%.0f", s.Percent()) },
	"split": func(s string) []string { return strings.Split(s, ",") },
	"list":  func(items ...interface{}) []interface{} { return items },
}

func NewPageHandler(svc PageServices, theme *settings.ThemeStore) *PageHandler {
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		// Parse each page with the layout from the embedded filesystem
		pages[file] = template.Must(template.New(file).Funcs(funcs).ParseFS(templates.FS, "layout.html", file))
	}
	return &PageHandler{pages: pages, svc: svc, theme: theme}
}

// render executes the page. A failed data load still renders the page with
// the error banner and the error's status.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, file, title string, data interface{}, err error) {
	view := PageView{
		Title: title,
		Route: r.URL.Path,
		Theme: h.theme.Theme(),
		Query: r.URL.Query(),
		Nav:   nav,
		Data:  data,
	}
	status := http.StatusOK
	if err != nil {
		appErr := apperror.GetAppError(err)
		view.Error = appErr.Message
		status = appErr.Code
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.pages[file].ExecuteTemplate(w, "layout", view); err != nil {
		log.Printf("[Page] Failed to render %s: %v", file, err)
	}
}

func (h *PageHandler) static(file, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, file, title, nil, nil)
	}
}

// Home serves /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.static("home.html", "Fuel Station")(w, r)
}

// Launcher serves /dashboard, the page index
func (h *PageHandler) Launcher(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "launcher.html", "Console", nav, nil)
}

// Contact serves /contact
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.static("contact.html", "Contact")(w, r)
}

// SignIn serves /sign
func (h *PageHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	h.static("sign.html", "Sign In")(w, r)
}

// SignUp serves /signup
func (h *PageHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	h.static("signup.html", "Sign Up")(w, r)
}

// Dash serves /dash with the last polled snapshot
func (h *PageHandler) Dash(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "dash.html", "Dashboard", h.svc.Poller.Snapshot(), nil)
}

// SaleEntry serves /saleentry
func (h *PageHandler) SaleEntry(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Sales.Page(r.Context(), saleQuery(r))
	h.render(w, r, "saleentry.html", "Sale Entry", page, err)
}

// Tanks serves /tanks
func (h *PageHandler) Tanks(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Tanks.Page(r.Context(), tankQuery(r))
	h.render(w, r, "tanks.html", "Tank Management", page, err)
}

// AddTank serves /addtank
func (h *PageHandler) AddTank(w http.ResponseWriter, r *http.Request) {
	masters, err := h.svc.Masters.List(r.Context())
	h.render(w, r, "addtank.html", "Add Tank", struct {
		Masters   []models.TankMaster
		FuelTypes []string
	}{masters, models.FuelTypes}, err)
}

// Finance serves /finance
func (h *PageHandler) Finance(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Finance.Page(r.Context())
	h.render(w, r, "finance.html", "Accounting & Finance", page, err)
}

// Attendance serves /attendance
func (h *PageHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Payroll.Page(r.Context(), attendanceQuery(r))
	h.render(w, r, "attendance.html", "Attendance & Payroll", page, err)
}

// CreditLine serves /creditline
func (h *PageHandler) CreditLine(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.Credit.Accounts(r.Context())
	h.render(w, r, "creditline.html", "Credit Line", struct {
		Accounts  []models.CreditAccountView
		FuelTypes []string
	}{accounts, models.FuelTypes}, err)
}

// Admin serves /admin
func (h *PageHandler) Admin(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Admin.Page(r.Context())
	h.render(w, r, "admin.html", "Admin & Roles", page, err)
}

// FuelRate serves /fuelrate
func (h *PageHandler) FuelRate(w http.ResponseWriter, r *http.Request) {
	rates, err := h.svc.Station.FuelRates(r.Context())
	h.render(w, r, "fuelrate.html", "Fuel Rates", rates, err)
}

// Pump serves /pump
func (h *PageHandler) Pump(w http.ResponseWriter, r *http.Request) {
	pumps, err := h.svc.Station.Pumps(r.Context())
	h.render(w, r, "pump.html", "Pumps", struct {
		Pumps     []models.Pump
		FuelTypes []string
	}{pumps, models.FuelTypes}, err)
}

// TestFuel serves /testfuel
func (h *PageHandler) TestFuel(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Station.FuelTests(r.Context())
	h.render(w, r, "testfuel.html", "Test Fuel", page, err)
}

// Shift serves /shift
func (h *PageHandler) Shift(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.svc.Station.Shifts(r.Context())
	h.render(w, r, "shift.html", "Shift Timing", shifts, err)
}

// Payment serves /payment
func (h *PageHandler) Payment(w http.ResponseWriter, r *http.Request) {
	payments, err := h.svc.Payments.List(r.Context())
	h.render(w, r, "payment.html", "Live Payment", payments, err)
}

// PaymentComparison serves /paymentcomp
func (h *PageHandler) PaymentComparison(w http.ResponseWriter, r *http.Request) {
	cmp, err := h.svc.Payments.Compare(r.Context(), r.URL.Query().Get("date"), r.URL.Query().Get("shift"))
	h.render(w, r, "paymentcomp.html", "Payment Comparison", cmp, err)
}
