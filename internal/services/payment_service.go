package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"

	"fuel-console/internal/calc"
	"fuel-console/internal/models"
	"fuel-console/internal/timeutil"
	"fuel-console/pkg/apperror"
)

type PaymentBackend interface {
	ListPayments(ctx context.Context) ([]models.Payment, error)
	CreatePayment(ctx context.Context, p models.Payment) (*models.Payment, error)
	ListSales(ctx context.Context) ([]models.Sale, error)
}

// GatewayPayment is what the gateway reports for a payment id.
type GatewayPayment struct {
	ID     string
	Status string
	Method string
	Amount float64
}

// PaymentVerifier looks a payment up at the gateway.
type PaymentVerifier interface {
	Fetch(paymentID string) (*GatewayPayment, error)
}

// RazorpayVerifier fetches payments from Razorpay.
type RazorpayVerifier struct {
	client *razorpay.Client
}

// NewRazorpayVerifier returns nil when either credential is missing.
func NewRazorpayVerifier(keyID, keySecret string) *RazorpayVerifier {
	if keyID == "" || keySecret == "" {
		return nil
	}
	return &RazorpayVerifier{client: razorpay.NewClient(keyID, keySecret)}
}

func (r *RazorpayVerifier) Fetch(paymentID string) (*GatewayPayment, error) {
	payment, err := r.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch razorpay payment %s: %w", paymentID, err)
	}

	gp := &GatewayPayment{ID: paymentID}
	if v, ok := payment["status"].(string); ok {
		gp.Status = v
	}
	if v, ok := payment["method"].(string); ok {
		gp.Method = v
	}
	// Razorpay amounts are in paise
	if v, ok := payment["amount"].(float64); ok {
		gp.Amount = v / 100
	}
	return gp, nil
}

type PaymentService struct {
	backend  PaymentBackend
	verifier PaymentVerifier
	now      Clock
}

// NewPaymentService wires live payments. verifier may be nil, which turns
// gateway verification off.
func NewPaymentService(backend PaymentBackend, verifier PaymentVerifier) *PaymentService {
	return &PaymentService{backend: backend, verifier: verifier, now: defaultClock}
}

// PaymentRequest is the live payment form. A gateway payment id, when
// given, is verified and overrides amount and mode.
type PaymentRequest struct {
	Amount    float64 `json:"amount"`
	Mode      string  `json:"mode"`
	PaymentID string  `json:"razorpayPaymentId,omitempty"`
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.backend.ListPayments(ctx)
	if err != nil {
		return nil, backendError("load payments", err)
	}
	return payments, nil
}

func (s *PaymentService) Record(ctx context.Context, req PaymentRequest) ([]models.Payment, error) {
	payment := models.Payment{
		Amount: req.Amount,
		Mode:   strings.ToUpper(strings.TrimSpace(req.Mode)),
	}

	if req.PaymentID != "" {
		verified, err := s.verify(req.PaymentID)
		if err != nil {
			return nil, err
		}
		payment = *verified
	}

	var v apperror.Validator
	v.Check(payment.Amount > 0, "amount", "Enter a valid amount")
	v.Check(payment.Mode == models.LiveUPI || payment.Mode == models.LiveCard, "mode", "Mode must be UPI or CARD")
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.backend.CreatePayment(ctx, payment); err != nil {
		return nil, backendError("save payment", err)
	}
	return s.List(ctx)
}

// verify accepts only captured UPI or card payments. The amount comes from
// the gateway, never from the form.
func (s *PaymentService) verify(paymentID string) (*models.Payment, error) {
	if s.verifier == nil {
		return nil, apperror.NewBadRequestError("Payment verification is not configured")
	}
	gp, err := s.verifier.Fetch(paymentID)
	if err != nil {
		log.Printf("[Payment] Verification failed for %s: %v", paymentID, err)
		return nil, apperror.NewBadGatewayError(err)
	}
	if gp.Status != "captured" {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Payment %s is %s, not captured", paymentID, gp.Status))
	}

	var mode string
	switch strings.ToLower(gp.Method) {
	case "upi":
		mode = models.LiveUPI
	case "card":
		mode = models.LiveCard
	default:
		return nil, apperror.NewBadRequestError("Unsupported payment method " + gp.Method)
	}
	return &models.Payment{Amount: gp.Amount, Mode: mode, Reference: paymentID}, nil
}

// Compare sets live payments for date against the UPI and card amounts
// recorded in sale entry. An empty date means today; an empty shift covers
// the whole day.
func (s *PaymentService) Compare(ctx context.Context, date, shift string) (*models.PaymentComparison, error) {
	if date == "" {
		date = s.now().Format(timeutil.DateLayout)
	}
	payments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.backend.ListSales(ctx)
	if err != nil {
		return nil, backendError("load sales", err)
	}
	cmp := calc.ComparePayments(payments, sales, date, shift)
	return &cmp, nil
}
