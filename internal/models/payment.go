package models

// Live payment modes.
const (
	LiveUPI  = "UPI"
	LiveCard = "CARD"
)

// Payment is a UPI or card payment received at the counter.
type Payment struct {
	ID        string  `json:"_id,omitempty"`
	Amount    float64 `json:"amount"`
	Mode      string  `json:"mode"`
	Reference string  `json:"reference,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

// ModeComparison is one row of the live-vs-recorded payment comparison.
type ModeComparison struct {
	Mode       string  `json:"mode"`
	Live       float64 `json:"live"`
	Recorded   float64 `json:"recorded"`
	Difference float64 `json:"difference"`
	Match      bool    `json:"match"`
}

type PaymentComparison struct {
	Date  string         `json:"date"`
	Shift string         `json:"shift,omitempty"`
	UPI   ModeComparison `json:"upi"`
	Card  ModeComparison `json:"card"`
}
