package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fuel-console/internal/handlers"
	"fuel-console/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Page      *handlers.PageHandler
	Sale      *handlers.SaleHandler
	Tank      *handlers.TankHandler
	Finance   *handlers.FinanceHandler
	Payroll   *handlers.PayrollHandler
	Credit    *handlers.CreditHandler
	Admin     *handlers.AdminHandler
	Station   *handlers.StationHandler
	Payment   *handlers.PaymentHandler
	Dashboard *handlers.DashboardHandler
	Settings  *handlers.SettingsHandler
	Health    *handlers.HealthHandler
}

func NewRouter(hs Handlers, limiter *middleware.RateLimiter) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	// Console pages
	p := hs.Page
	r.HandleFunc("/", p.Home).Methods("GET")
	r.HandleFunc("/dashboard", p.Launcher).Methods("GET")
	r.HandleFunc("/dash", p.Dash).Methods("GET")
	r.HandleFunc("/contact", p.Contact).Methods("GET")
	r.HandleFunc("/sign", p.SignIn).Methods("GET")
	r.HandleFunc("/signup", p.SignUp).Methods("GET")
	r.HandleFunc("/saleentry", p.SaleEntry).Methods("GET")
	r.HandleFunc("/tanks", p.Tanks).Methods("GET")
	r.HandleFunc("/addtank", p.AddTank).Methods("GET")
	r.HandleFunc("/finance", p.Finance).Methods("GET")
	r.HandleFunc("/attendance", p.Attendance).Methods("GET")
	r.HandleFunc("/creditline", p.CreditLine).Methods("GET")
	r.HandleFunc("/admin", p.Admin).Methods("GET")
	r.HandleFunc("/fuelrate", p.FuelRate).Methods("GET")
	r.HandleFunc("/pump", p.Pump).Methods("GET")
	r.HandleFunc("/testfuel", p.TestFuel).Methods("GET")
	r.HandleFunc("/shift", p.Shift).Methods("GET")
	r.HandleFunc("/payment", p.Payment).Methods("GET")
	r.HandleFunc("/paymentcomp", p.PaymentComparison).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	if limiter != nil {
		api.Use(limiter.Middleware)
	}

	// Sales
	api.HandleFunc("/sales", hs.Sale.List).Methods("GET")
	api.HandleFunc("/sales", hs.Sale.Create).Methods("POST")
	api.HandleFunc("/sales/preview", hs.Sale.Preview).Methods("POST")
	api.HandleFunc("/sales/{id}", hs.Sale.Update).Methods("PUT")
	api.HandleFunc("/sales/{id}", hs.Sale.Delete).Methods("DELETE")

	// Tanks
	api.HandleFunc("/tanks", hs.Tank.List).Methods("GET")
	api.HandleFunc("/tanks", hs.Tank.Create).Methods("POST")
	api.HandleFunc("/tanks/autofill", hs.Tank.AutoFill).Methods("POST")
	api.HandleFunc("/tanks/preview", hs.Tank.Preview).Methods("POST")
	api.HandleFunc("/tanks/{id}", hs.Tank.Update).Methods("PUT")
	api.HandleFunc("/tank-master", hs.Tank.ListMasters).Methods("GET")
	api.HandleFunc("/tank-master", hs.Tank.CreateMaster).Methods("POST")

	// Accounting
	api.HandleFunc("/finance", hs.Finance.List).Methods("GET")
	api.HandleFunc("/finance", hs.Finance.Create).Methods("POST")
	api.HandleFunc("/finance/{id}", hs.Finance.Update).Methods("PUT")
	api.HandleFunc("/finance/{id}", hs.Finance.Delete).Methods("DELETE")

	// Attendance and payroll
	api.HandleFunc("/attendance", hs.Payroll.Page).Methods("GET")
	api.HandleFunc("/attendance", hs.Payroll.EndShift).Methods("POST")
	api.HandleFunc("/attendance/start", hs.Payroll.StartShift).Methods("GET")
	api.HandleFunc("/attendance/{id}", hs.Payroll.DeleteAttendance).Methods("DELETE")
	api.HandleFunc("/payroll/employee", hs.Payroll.AddEmployee).Methods("POST")

	// Credit line
	api.HandleFunc("/credit", hs.Credit.List).Methods("GET")
	api.HandleFunc("/credit", hs.Credit.Create).Methods("POST")
	api.HandleFunc("/credit/transaction", hs.Credit.Transaction).Methods("POST")
	api.HandleFunc("/credit/{id}", hs.Credit.Delete).Methods("DELETE")
	api.HandleFunc("/credit/{id}/invoice", hs.Credit.Invoice).Methods("GET")

	// Admin
	api.HandleFunc("/admin", hs.Admin.Page).Methods("GET")
	api.HandleFunc("/admin/users", hs.Admin.CreateUser).Methods("POST")
	api.HandleFunc("/admin/users/{id}", hs.Admin.DeleteUser).Methods("DELETE")

	// Station setup
	api.HandleFunc("/fuel-rates", hs.Station.GetFuelRates).Methods("GET")
	api.HandleFunc("/fuel-rates", hs.Station.SaveFuelRates).Methods("POST")
	api.HandleFunc("/pumps", hs.Station.ListPumps).Methods("GET")
	api.HandleFunc("/pumps", hs.Station.CreatePump).Methods("POST")
	api.HandleFunc("/pumps/{id}", hs.Station.DeletePump).Methods("DELETE")
	api.HandleFunc("/shifts", hs.Station.ListShifts).Methods("GET")
	api.HandleFunc("/shifts", hs.Station.CreateShift).Methods("POST")
	api.HandleFunc("/shifts/{id}", hs.Station.UpdateShift).Methods("PUT")
	api.HandleFunc("/shifts/{id}", hs.Station.DeleteShift).Methods("DELETE")
	api.HandleFunc("/fueltest", hs.Station.ListFuelTests).Methods("GET")
	api.HandleFunc("/fueltest", hs.Station.RecordFuelTest).Methods("POST")

	// Live payments
	api.HandleFunc("/payments", hs.Payment.List).Methods("GET")
	api.HandleFunc("/payments", hs.Payment.Record).Methods("POST")
	api.HandleFunc("/payments/compare", hs.Payment.Compare).Methods("GET")

	// Dashboard and settings
	api.HandleFunc("/dashboard", hs.Dashboard.Snapshot).Methods("GET")
	api.HandleFunc("/theme", hs.Settings.GetTheme).Methods("GET")
	api.HandleFunc("/theme", hs.Settings.SetTheme).Methods("PUT")
	api.HandleFunc("/theme/toggle", hs.Settings.ToggleTheme).Methods("POST")

	r.HandleFunc("/ws/dashboard", hs.Dashboard.Stream).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", hs.Health.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", hs.Health.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", hs.Health.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Wrap applies the outer middleware chain: panic recovery, request logging
// and CORS. CORS sits outside the router so preflight requests are answered
// before route matching.
func Wrap(router http.Handler, cors func(http.Handler) http.Handler) http.Handler {
	return middleware.PanicRecovery(middleware.RequestLogger(cors(router)))
}
