package models

// Credit transaction types.
const (
	CreditSale    = "Sale"
	CreditPayment = "Payment"
)

type CreditTransaction struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode,omitempty"`
}

type CreditAccount struct {
	ID            string              `json:"_id,omitempty"`
	AccountID     string              `json:"accountId"`
	AccountName   string              `json:"accountName"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	FuelType      string              `json:"fuelType"`
	Vehicles      []string            `json:"vehicles"`
	CreditLimit   float64             `json:"creditLimit"`
	ContactPerson string              `json:"contactPerson"`
	TotalSales    float64             `json:"totalSales"`
	TotalPayments float64             `json:"totalPayments"`
	Outstanding   float64             `json:"outstanding"`
	Transactions  []CreditTransaction `json:"transactions,omitempty"`
}

// CreditTransactionRequest records a sale on credit or a repayment.
type CreditTransactionRequest struct {
	AccountID   string  `json:"accountId"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode"`
}

// CreditStatus is the account's standing against its limit.
type CreditStatus struct {
	OverLimit bool    `json:"overLimit"`
	Excess    float64 `json:"excess"`
	Available float64 `json:"available"`
}

// CreditAccountView is an account as listed, with its limit status.
type CreditAccountView struct {
	CreditAccount
	Status CreditStatus `json:"status"`
}

// GSTInvoice is the bill raised on an over-limit account's outstanding.
type GSTInvoice struct {
	InvoiceNo   string  `json:"invoiceNo"`
	AccountID   string  `json:"accountId"`
	AccountName string  `json:"accountName"`
	Customer    string  `json:"customer"`
	Email       string  `json:"email,omitempty"`
	IssuedAt    string  `json:"issuedAt"`
	Taxable     float64 `json:"taxable"`
	GSTRate     float64 `json:"gstRate"`
	GST         float64 `json:"gst"`
	Total       float64 `json:"total"`
	ArchiveKey  string  `json:"archiveKey,omitempty"`
}
