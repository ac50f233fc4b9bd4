package models

// Payment modes a sale can be settled with.
const (
	PaymentCash   = "Cash"
	PaymentUPI    = "UPI"
	PaymentCard   = "Card"
	PaymentCredit = "Credit"
)

var PaymentModes = []string{PaymentCash, PaymentUPI, PaymentCard, PaymentCredit}

// Sale is one pump reading for a shift with the payments collected against it.
type Sale struct {
	ID           string `json:"_id,omitempty"`
	SaleID       string `json:"saleId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Shift        string `json:"shift"`
	PumpNumber   string `json:"pumpNumber"`
	ProductType  string `json:"productType"`
	OpeningMeter Number `json:"openingMeter"`
	ClosingMeter Number `json:"closingMeter"`
	TestFuel     Number `json:"testFuel"`
	LitresSold   Number `json:"litresSold"`
	RatePerLitre Number `json:"ratePerLitre"`
	TotalAmount  Number `json:"totalAmount"`
	CashAmount   Number `json:"cashAmount"`
	UPIAmount    Number `json:"upiAmount"`
	CardAmount   Number `json:"cardAmount"`
	TotalPayment Number `json:"totalPayment"`
	PaymentMode  string `json:"paymentMode"`
	Attendant    string `json:"attendant,omitempty"`
	CreditParty  string `json:"creditParty,omitempty"`
	Remarks      string `json:"remarks,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// Timestamp is when the sale happened: createdAt, falling back to date.
func (s Sale) Timestamp() string {
	if s.CreatedAt != "" {
		return s.CreatedAt
	}
	return s.Date
}

// SaleDraft is the sale form. Derived fields are filled in by the service.
type SaleDraft struct {
	ID           string  `json:"_id,omitempty"`
	SaleID       string  `json:"saleId"`
	Date         string  `json:"date"`
	Shift        string  `json:"shift"`
	PumpNumber   string  `json:"pumpNumber"`
	ProductType  string  `json:"productType"`
	OpeningMeter float64 `json:"openingMeter"`
	ClosingMeter float64 `json:"closingMeter"`
	TestFuel     float64 `json:"testFuel"`
	RatePerLitre float64 `json:"ratePerLitre"`
	CashAmount   float64 `json:"cashAmount"`
	UPIAmount    float64 `json:"upiAmount"`
	CardAmount   float64 `json:"cardAmount"`
	PaymentMode  string  `json:"paymentMode"`
	Attendant    string  `json:"attendant"`
	CreditParty  string  `json:"creditParty"`
	Remarks      string  `json:"remarks"`
}

// Reconciliation compares the amount due with what was collected.
type Reconciliation struct {
	Match          bool    `json:"match"`
	Difference     float64 `json:"difference"`
	DifferenceText string  `json:"differenceText"`
}

// SalePreview is a draft with its derived fields computed.
type SalePreview struct {
	Draft          SaleDraft      `json:"draft"`
	LitresSold     float64        `json:"litresSold"`
	TotalAmount    float64        `json:"totalAmount"`
	TotalReceived  float64        `json:"totalReceived"`
	Reconciliation Reconciliation `json:"reconciliation"`
}

// SaleTotals are the grand totals shown under the sales table.
type SaleTotals struct {
	Count          int            `json:"count"`
	Litres         float64        `json:"litres"`
	TestFuel       float64        `json:"testFuel"`
	Cash           float64        `json:"cash"`
	UPI            float64        `json:"upi"`
	Card           float64        `json:"card"`
	SalesTotal     float64        `json:"salesTotal"`
	TotalReceived  float64        `json:"totalReceived"`
	Reconciliation Reconciliation `json:"reconciliation"`
}
