package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"fuel-console/internal/calc"
	"fuel-console/internal/metrics"
	"fuel-console/internal/models"
	"fuel-console/internal/timeutil"
)

// Archiver stores a rendered invoice and returns where it went.
type Archiver interface {
	Put(ctx context.Context, name string, pdf []byte) (string, error)
}

// InvoiceService renders GST bills for credit accounts.
type InvoiceService struct {
	stationName string
	archive     Archiver
}

// NewInvoiceService creates the renderer. archive may be nil.
func NewInvoiceService(stationName string, archive Archiver) *InvoiceService {
	if stationName == "" {
		stationName = "Fuel Station"
	}
	return &InvoiceService{stationName: stationName, archive: archive}
}

// Generate builds the invoice for acc and renders it. When an archive is
// configured the PDF is uploaded too; a failed upload is logged and the
// invoice still returned.
func (s *InvoiceService) Generate(ctx context.Context, acc models.CreditAccount, issuedAt time.Time) (*models.GSTInvoice, []byte, error) {
	inv := calc.BuildGSTInvoice(acc, issuedAt)

	pdf, err := s.Render(inv, acc)
	if err != nil {
		return nil, nil, fmt.Errorf("render invoice %s: %w", inv.InvoiceNo, err)
	}

	archived := "false"
	if s.archive != nil {
		key, err := s.archive.Put(ctx, inv.InvoiceNo+".pdf", pdf)
		if err != nil {
			log.Printf("[Invoice] Failed to archive %s: %v", inv.InvoiceNo, err)
		} else {
			inv.ArchiveKey = key
			archived = "true"
		}
	}
	metrics.InvoicesGenerated.WithLabelValues(archived).Inc()

	return &inv, pdf, nil
}

// Render draws the bill as an A4 PDF.
func (s *InvoiceService) Render(inv models.GSTInvoice, acc models.CreditAccount) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, s.stationName+" - Tax Invoice", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	issued := inv.IssuedAt
	if t, ok := timeutil.ParseTimestamp(inv.IssuedAt); ok {
		issued = timeutil.FormatIST(t, "02-Jan-2006 03:04 PM")
	}
	pdf.CellFormat(190, 6, fmt.Sprintf("Invoice No: %s    Date: %s", inv.InvoiceNo, issued), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Customer
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Bill To", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, "Account: "+inv.AccountID, "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, "Name: "+inv.AccountName, "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, "Customer: "+inv.Customer, "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, "Email: "+inv.Email, "RB", 1, "L", false, 0, "")
	if len(acc.Vehicles) > 0 {
		pdf.CellFormat(190, 7, "Vehicles: "+strings.Join(acc.Vehicles, ", "), "LRB", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	// Account standing
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(48, 7, "Credit Limit", "1", 0, "C", true, 0, "")
	pdf.CellFormat(47, 7, "Total Sales", "1", 0, "C", true, 0, "")
	pdf.CellFormat(47, 7, "Total Payments", "1", 0, "C", true, 0, "")
	pdf.CellFormat(48, 7, "Outstanding", "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(48, 6, rupees(acc.CreditLimit), "1", 0, "C", false, 0, "")
	pdf.CellFormat(47, 6, rupees(acc.TotalSales), "1", 0, "C", false, 0, "")
	pdf.CellFormat(47, 6, rupees(acc.TotalPayments), "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 6, rupees(acc.Outstanding), "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Tax breakup
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Amount Due", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(140, 7, "Taxable value (outstanding balance)", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, rupees(inv.Taxable), "1", 1, "R", false, 0, "")
	pdf.CellFormat(140, 7, fmt.Sprintf("GST @ %.0f%%", inv.GSTRate), "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, rupees(inv.GST), "1", 1, "R", false, 0, "")

	pdf.SetFillColor(255, 200, 200)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(140, 10, "Total Payable", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 10, rupees(inv.Total), "1", 1, "R", true, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 5, "Credit limit exceeded. Please clear the outstanding amount at the earliest.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rupees(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}
