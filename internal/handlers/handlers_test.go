package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuel-console/internal/dashboard"
	"fuel-console/internal/health"
	"fuel-console/internal/remote"
	"fuel-console/internal/services"
	"fuel-console/internal/settings"
	"fuel-console/pkg/apperror"
)

// fakeBackend answers the REST backend's routes with canned bodies. GETs on
// unregistered paths return an empty list.
type fakeBackend struct {
	routes   map[string]string
	status   map[string]int
	received map[string]string
}

func newFakeBackend(t *testing.T) (*fakeBackend, *remote.Client) {
	t.Helper()
	fb := &fakeBackend{
		routes: map[string]string{
			"GET /api/fuel-rates":      `{"petrol":100,"diesel":90}`,
			"GET /api/finance/summary": `{"totalSales":500}`,
		},
		status:   map[string]int{},
		received: map[string]string{},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		body, _ := io.ReadAll(r.Body)
		fb.received[key] = string(body)

		if code, ok := fb.status[key]; ok {
			w.WriteHeader(code)
			w.Write([]byte(`{"message":"database down"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if resp, ok := fb.routes[key]; ok {
			w.Write([]byte(resp))
			return
		}
		if r.Method == http.MethodGet {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	return fb, remote.New(srv.URL+"/api", 5*time.Second)
}

func serve(method, route, target string, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc(route, h).Methods(method)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperror.AppError {
	t.Helper()
	var appErr apperror.AppError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&appErr))
	return appErr
}

func TestSaleHandler_ListFiltersByFuel(t *testing.T) {
	fb, client := newFakeBackend(t)
	fb.routes["GET /api/sales"] = `[
		{"_id":"1","saleId":"SALE-1","productType":"Petrol","litresSold":10,"date":"2025-01-15"},
		{"_id":"2","saleId":"SALE-2","productType":"Diesel","litresSold":"4.5","date":"2025-01-15"}
	]`
	h := NewSaleHandler(services.NewSaleService(client))

	rec := serve(http.MethodGet, "/api/sales", "/api/sales?fuelType=Diesel", "", h.List)
	require.Equal(t, http.StatusOK, rec.Code)

	var page services.SalePage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	require.Len(t, page.Sales, 1)
	assert.Equal(t, "SALE-2", page.Sales[0].SaleID)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 4.5, page.Totals.Litres)
	assert.Equal(t, 100.0, page.Rates.Petrol)
}

func TestSaleHandler_CreateValidation(t *testing.T) {
	fb, client := newFakeBackend(t)
	h := NewSaleHandler(services.NewSaleService(client))

	rec := serve(http.MethodPost, "/api/sales", "/api/sales", `{}`, h.Create)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	appErr := decodeError(t, rec)
	var fields []string
	for _, f := range appErr.Errors {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"pumpNumber", "shift"}, fields)
	assert.NotContains(t, fb.received, "POST /api/sales")
}

func TestSaleHandler_CreateForwardsComputedSale(t *testing.T) {
	fb, client := newFakeBackend(t)
	h := NewSaleHandler(services.NewSaleService(client))

	body := `{"pumpNumber":"P1","shift":"A","productType":"Petrol","openingMeter":100,"closingMeter":150,"testFuel":5,"ratePerLitre":100,"cashAmount":4500}`
	rec := serve(http.MethodPost, "/api/sales", "/api/sales", body, h.Create)
	require.Equal(t, http.StatusCreated, rec.Code)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(fb.received["POST /api/sales"]), &sent))
	assert.Equal(t, 45.0, sent["litresSold"])
	assert.Equal(t, 4500.0, sent["totalAmount"])
	assert.Equal(t, "Cash", sent["paymentMode"])
	assert.True(t, strings.HasPrefix(sent["saleId"].(string), "SALE-"))
}

func TestSaleHandler_MalformedBody(t *testing.T) {
	_, client := newFakeBackend(t)
	h := NewSaleHandler(services.NewSaleService(client))

	rec := serve(http.MethodPost, "/api/sales", "/api/sales", `{"pumpNumber":`, h.Create)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaleHandler_BackendFailureIsBadGateway(t *testing.T) {
	fb, client := newFakeBackend(t)
	fb.status["GET /api/sales"] = http.StatusInternalServerError
	h := NewSaleHandler(services.NewSaleService(client))

	rec := serve(http.MethodGet, "/api/sales", "/api/sales", "", h.List)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "database down")
}

func TestCreditHandler_Invoice(t *testing.T) {
	fb, client := newFakeBackend(t)
	fb.routes["GET /api/credit"] = `[
		{"_id":"a1","accountId":"ACC1","accountName":"Fleet","name":"Ravi","creditLimit":1000,"outstanding":1500},
		{"_id":"a2","accountId":"ACC2","accountName":"Small","name":"Asha","creditLimit":1000,"outstanding":200}
	]`
	credit := services.NewCreditService(client, services.NewInvoiceService("Test Station", nil))
	h := NewCreditHandler(credit)
	route := "/api/credit/{id}/invoice"

	t.Run("pdf download", func(t *testing.T) {
		rec := serve(http.MethodGet, route, "/api/credit/a1/invoice", "", h.Invoice)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "INV-ACC1-")
		assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
	})

	t.Run("json figures by account id", func(t *testing.T) {
		rec := serve(http.MethodGet, route, "/api/credit/ACC1/invoice?format=json", "", h.Invoice)
		require.Equal(t, http.StatusOK, rec.Code)
		var inv map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&inv))
		assert.Equal(t, 1500.0, inv["taxable"])
		assert.Equal(t, 270.0, inv["gst"])
		assert.Equal(t, 1770.0, inv["total"])
	})

	t.Run("within limit", func(t *testing.T) {
		rec := serve(http.MethodGet, route, "/api/credit/a2/invoice", "", h.Invoice)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown account", func(t *testing.T) {
		rec := serve(http.MethodGet, route, "/api/credit/nope/invoice", "", h.Invoice)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSettingsHandler_Theme(t *testing.T) {
	h := NewSettingsHandler(settings.NewThemeStore(nil, "light"))

	rec := serve(http.MethodGet, "/api/theme", "/api/theme", "", h.GetTheme)
	assert.JSONEq(t, `{"theme":"light"}`, rec.Body.String())

	rec = serve(http.MethodPut, "/api/theme", "/api/theme", `{"theme":"purple"}`, h.SetTheme)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve(http.MethodPut, "/api/theme", "/api/theme", `{"theme":"DARK"}`, h.SetTheme)
	assert.JSONEq(t, `{"theme":"dark"}`, rec.Body.String())

	rec = serve(http.MethodPost, "/api/theme/toggle", "/api/theme/toggle", "", h.ToggleTheme)
	assert.JSONEq(t, `{"theme":"light"}`, rec.Body.String())
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func TestHealthHandler_Readiness(t *testing.T) {
	ok := NewHealthHandler(health.NewHealthChecker(stubPinger{}))
	rec := serve(http.MethodGet, "/health/ready", "/health/ready", "", ok.ReadinessHealth)
	assert.Equal(t, http.StatusOK, rec.Code)

	down := NewHealthHandler(health.NewHealthChecker(stubPinger{err: errors.New("connection refused")}))
	rec = serve(http.MethodGet, "/health/ready", "/health/ready", "", down.ReadinessHealth)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")

	rec = serve(http.MethodGet, "/health", "/health", "", down.BasicHealth)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func newPageHandler(client *remote.Client) *PageHandler {
	invoices := services.NewInvoiceService("Test Station", nil)
	return NewPageHandler(PageServices{
		Sales:    services.NewSaleService(client),
		Tanks:    services.NewTankService(client),
		Masters:  services.NewTankMasterService(client),
		Finance:  services.NewFinanceService(client),
		Payroll:  services.NewPayrollService(client),
		Credit:   services.NewCreditService(client, invoices),
		Admin:    services.NewAdminService(client),
		Station:  services.NewStationService(client),
		Payments: services.NewPaymentService(client, nil),
		Poller:   dashboard.NewPoller(client, dashboard.NewHub(), time.Second),
	}, settings.NewThemeStore(nil, "dark"))
}

func TestPageHandler_RendersEveryPage(t *testing.T) {
	fb, client := newFakeBackend(t)
	fb.routes["GET /api/pumps"] = `[{"_id":"p1","pumpNo":"1","pumpName":"Front","fuels":[{"type":"Petrol"}]}]`
	fb.routes["GET /api/credit"] = `[{"_id":"a1","accountId":"ACC1","accountName":"Fleet","creditLimit":100,"outstanding":150,"vehicles":["KA01"]}]`
	h := newPageHandler(client)

	pages := []struct {
		path    string
		handler http.HandlerFunc
		want    string
	}{
		{"/", h.Home, "Fuel Station"},
		{"/dashboard", h.Launcher, "Sale Entry"},
		{"/dash", h.Dash, "Waiting for the first update"},
		{"/saleentry", h.SaleEntry, "New sale"},
		{"/tanks", h.Tanks, "Stock entry"},
		{"/finance", h.Finance, "500.00"},
		{"/attendance", h.Attendance, "Record shift"},
		{"/creditline", h.CreditLine, "/api/credit/a1/invoice"},
		{"/admin", h.Admin, "Attendant"},
		{"/contact", h.Contact, "Contact"},
		{"/sign", h.SignIn, "Sign in"},
		{"/signup", h.SignUp, "Sign up"},
		{"/fuelrate", h.FuelRate, "100.00"},
		{"/pump", h.Pump, "Front"},
		{"/addtank", h.AddTank, "Register tank"},
		{"/testfuel", h.TestFuel, "data-fuels=\"Petrol\""},
		{"/shift", h.Shift, "New shift"},
		{"/payment", h.Payment, "Record payment"},
		{"/paymentcomp", h.PaymentComparison, "Recorded in sales"},
	}
	for _, p := range pages {
		t.Run(p.path, func(t *testing.T) {
			rec := serve(http.MethodGet, p.path, p.path, "", p.handler)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), p.want)
			assert.Contains(t, rec.Body.String(), `<body class="dark">`)
		})
	}
}

func TestPageHandler_BackendErrorShowsBanner(t *testing.T) {
	fb, client := newFakeBackend(t)
	fb.status["GET /api/sales"] = http.StatusInternalServerError
	h := newPageHandler(client)

	rec := serve(http.MethodGet, "/saleentry", "/saleentry", "", h.SaleEntry)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="banner"`)
	assert.Contains(t, rec.Body.String(), "database down")
	assert.NotContains(t, rec.Body.String(), "New sale")
}
