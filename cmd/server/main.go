package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fuel-console/internal/cache"
	"fuel-console/internal/config"
	"fuel-console/internal/dashboard"
	"fuel-console/internal/handlers"
	"fuel-console/internal/health"
	h "fuel-console/internal/http"
	"fuel-console/internal/middleware"
	"fuel-console/internal/remote"
	"fuel-console/internal/services"
	"fuel-console/internal/settings"
	"fuel-console/internal/storage"
)

func main() {
	// Parse command-line flags
	port := flag.Int("port", 0, "Server port (overrides config)")
	env := flag.String("env", "", "Backend environment: development, production or alternate")
	backendURL := flag.String("backend-url", "", "Backend base URL (overrides env)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *env != "" {
		cfg.Backend.Env = *env
		// ResolveBaseURL prefers an explicit URL, so drop the configured one
		cfg.Backend.BaseURL = ""
		cfg.Backend.BaseURL = cfg.Backend.ResolveBaseURL()
	}
	if *backendURL != "" {
		cfg.Backend.BaseURL = *backendURL
	}

	// Redis is optional: theme and dashboard snapshot fall back to memory
	if err := cache.Init(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password); err != nil {
		log.Printf("[Cache] Redis unavailable, running without it: %v", err)
	} else {
		log.Printf("[Cache] Connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
	}

	ctx := context.Background()

	theme := settings.NewThemeStore(settings.RedisPersister{}, cfg.Theme.Default)
	log.Printf("[Settings] Theme: %s", theme.Load(ctx))

	client := remote.NewFromConfig(cfg.Backend)
	log.Printf("[Remote] Backend %s (%s)", client.BaseURL(), cfg.Backend.Env)

	// Invoice archiving and payment verification are both optional
	var archiver services.Archiver
	archive, err := storage.NewInvoiceArchiveFromConfig(ctx, cfg.InvoiceStorage)
	if err != nil {
		log.Printf("[Storage] Invoice archiving disabled: %v", err)
	} else if archive != nil {
		archiver = archive
	}

	var verifier services.PaymentVerifier
	if rz := services.NewRazorpayVerifier(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret); rz != nil {
		verifier = rz
		log.Println("[Payments] Razorpay verification enabled")
	}

	// Initialize services
	saleService := services.NewSaleService(client)
	tankService := services.NewTankService(client)
	tankMasterService := services.NewTankMasterService(client)
	financeService := services.NewFinanceService(client)
	payrollService := services.NewPayrollService(client)
	invoiceService := services.NewInvoiceService(cfg.Station.Name, archiver)
	creditService := services.NewCreditService(client, invoiceService)
	adminService := services.NewAdminService(client)
	stationService := services.NewStationService(client)
	paymentService := services.NewPaymentService(client, verifier)

	// Dashboard polling and push
	hub := dashboard.NewHub()
	go hub.Run()
	poller := dashboard.NewPoller(client, hub, time.Duration(cfg.Dashboard.PollSeconds)*time.Second)
	if poller.Restore(ctx) {
		log.Println("[Dashboard] Restored last snapshot from Redis")
	}
	if err := poller.Start(); err != nil {
		log.Fatalf("[Dashboard] Failed to start poller: %v", err)
	}

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)

	router := h.NewRouter(h.Handlers{
		Page: handlers.NewPageHandler(handlers.PageServices{
			Sales:    saleService,
			Tanks:    tankService,
			Masters:  tankMasterService,
			Finance:  financeService,
			Payroll:  payrollService,
			Credit:   creditService,
			Admin:    adminService,
			Station:  stationService,
			Payments: paymentService,
			Poller:   poller,
		}, theme),
		Sale:      handlers.NewSaleHandler(saleService),
		Tank:      handlers.NewTankHandler(tankService, tankMasterService),
		Finance:   handlers.NewFinanceHandler(financeService),
		Payroll:   handlers.NewPayrollHandler(payrollService),
		Credit:    handlers.NewCreditHandler(creditService),
		Admin:     handlers.NewAdminHandler(adminService),
		Station:   handlers.NewStationHandler(stationService),
		Payment:   handlers.NewPaymentHandler(paymentService),
		Dashboard: handlers.NewDashboardHandler(poller, hub),
		Settings:  handlers.NewSettingsHandler(theme),
		Health:    handlers.NewHealthHandler(health.NewHealthChecker(client)),
	}, limiter)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h.Wrap(router, middleware.NewCORS(cfg)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Fuel console running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	if err := poller.Stop(); err != nil {
		log.Printf("[Dashboard] Failed to stop poller: %v", err)
	}
	hub.Close()
	limiter.Close()
	if err := cache.Close(); err != nil {
		log.Printf("[Cache] Close failed: %v", err)
	}
	log.Println("Stopped")
}
