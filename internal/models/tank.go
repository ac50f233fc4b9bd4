package models

// TankEntry is one link of a tank's stock ledger. Each entry's openingStock is
// the previous entry's closingStock.
type TankEntry struct {
	ID                 string `json:"_id,omitempty"`
	TankID             string `json:"tankId"`
	ProductType        string `json:"productType"`
	Capacity           Number `json:"capacity"`
	OpeningStock       Number `json:"openingStock"`
	QuantityReceived   Number `json:"quantityReceived"`
	SoldQuantity       Number `json:"soldQuantity"`
	LowStockAlertLevel Number `json:"lowStockAlertLevel"`
	RatePerLitre       Number `json:"ratePerLitre"`
	SupplierName       string `json:"supplierName"`
	TankerReceiptNo    string `json:"tankerReceiptNo"`
	ReceivedBy         string `json:"receivedBy"`
	Remarks            string `json:"remarks"`
	ClosingStock       Number `json:"closingStock"`
	TotalAmount        Number `json:"totalAmount"`
	DateTime           string `json:"dateTime,omitempty"`
	CreatedAt          string `json:"createdAt,omitempty"`
}

// Timestamp is the moment the entry's stock reading was taken.
func (t TankEntry) Timestamp() string {
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.CreatedAt
}

// IsLowStock reports whether closing stock has fallen to the alert level.
func (t TankEntry) IsLowStock() bool {
	return t.LowStockAlertLevel > 0 && t.ClosingStock <= t.LowStockAlertLevel
}

// TankDraft is the tank form as the operator fills it in.
type TankDraft struct {
	ID                 string   `json:"_id,omitempty"`
	TankID             string   `json:"tankId"`
	ProductType        string   `json:"productType"`
	Capacity           NumInput `json:"capacity"`
	OpeningStock       NumInput `json:"openingStock"`
	QuantityReceived   NumInput `json:"quantityReceived"`
	SoldQuantity       NumInput `json:"soldQuantity"`
	LowStockAlertLevel NumInput `json:"lowStockAlertLevel"`
	RatePerLitre       NumInput `json:"ratePerLitre"`
	SupplierName       string   `json:"supplierName"`
	TankerReceiptNo    string   `json:"tankerReceiptNo"`
	ReceivedBy         string   `json:"receivedBy"`
	Remarks            string   `json:"remarks"`
	ClosingStock       float64  `json:"closingStock"`
	TotalAmount        float64  `json:"totalAmount"`
	DateTime           string   `json:"dateTime,omitempty"`
}

// Entry converts the draft into the payload sent to the backend. Blank
// inputs are sent as 0.
func (d TankDraft) Entry() TankEntry {
	return TankEntry{
		ID:                 d.ID,
		TankID:             d.TankID,
		ProductType:        d.ProductType,
		Capacity:           Number(d.Capacity.Value()),
		OpeningStock:       Number(d.OpeningStock.Value()),
		QuantityReceived:   Number(d.QuantityReceived.Value()),
		SoldQuantity:       Number(d.SoldQuantity.Value()),
		LowStockAlertLevel: Number(d.LowStockAlertLevel.Value()),
		RatePerLitre:       Number(d.RatePerLitre.Value()),
		SupplierName:       d.SupplierName,
		TankerReceiptNo:    d.TankerReceiptNo,
		ReceivedBy:         d.ReceivedBy,
		Remarks:            d.Remarks,
		ClosingStock:       Number(d.ClosingStock),
		TotalAmount:        Number(d.TotalAmount),
		DateTime:           d.DateTime,
	}
}

// TankMaster registers a physical tank and the fuel it holds.
type TankMaster struct {
	ID        string `json:"_id,omitempty"`
	TankID    string `json:"tankId"`
	FuelType  string `json:"fuelType"`
	Capacity  Number `json:"capacity"`
	CreatedAt string `json:"createdAt,omitempty"`
}
