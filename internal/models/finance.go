package models

// Finance entry types.
const (
	EntryJournal  = "Journal"
	EntryExpense  = "Expense"
	EntrySupplier = "Supplier"
	EntryCashbook = "Cashbook"
)

type FinanceEntry struct {
	ID            string  `json:"_id,omitempty"`
	EntryType     string  `json:"entryType"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Debit         float64 `json:"debit"`
	Credit        float64 `json:"credit"`
	Amount        float64 `json:"amount"`
	ModeOfPayment string  `json:"modeOfPayment,omitempty"`
	SupplierName  string  `json:"supplierName,omitempty"`
	InvoiceNo     string  `json:"invoiceNo,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

// FinanceSummary is computed by the backend over all finance entries.
type FinanceSummary struct {
	TotalSales      float64 `json:"totalSales"`
	TotalPurchase   float64 `json:"totalPurchase"`
	TotalExpense    float64 `json:"totalExpense"`
	Profit          float64 `json:"profit"`
	CashbookBalance float64 `json:"cashbookBalance"`
}
