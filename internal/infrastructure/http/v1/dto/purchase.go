package dto

import (
	"time"

	"stokado/internal/core/id"
	"stokado/internal/core/types"
	"stokado/internal/domain/documents/purchase"
)

// PurchaseLineRequest is one line of a purchase document.
type PurchaseLineRequest struct {
	ItemID    string  `json:"itemId" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
	UnitPrice string  `json:"unitPrice" binding:"required"`
}

// PurchaseLineResponse is the API representation of a purchase line.
type PurchaseLineResponse struct {
	LineID    string  `json:"lineId"`
	LineNo    int     `json:"lineNo"`
	ItemID    string  `json:"itemId"`
	Quantity  float64 `json:"quantity"`
	UnitPrice string  `json:"unitPrice"`
	Amount    string  `json:"amount"`
}

// PurchaseResponse is the API representation of a purchase transaction.
type PurchaseResponse struct {
	DocumentResponse
	VendorID    string                 `json:"vendorId"`
	WarehouseID string                 `json:"warehouseId"`
	OrderNumber *string                `json:"orderNumber,omitempty"`
	TotalAmount string                 `json:"totalAmount"`
	TaxAmount   string                 `json:"taxAmount"`
	GrandTotal  string                 `json:"grandTotal"`
	Lines       []PurchaseLineResponse `json:"lines"`
}

// FromPurchase creates PurchaseResponse from the domain entity.
func FromPurchase(t *purchase.Transaction) PurchaseResponse {
	lines := make([]PurchaseLineResponse, len(t.Lines))
	for i, line := range t.Lines {
		lines[i] = PurchaseLineResponse{
			LineID:    line.LineID.String(),
			LineNo:    line.LineNo,
			ItemID:    line.ItemID.String(),
			Quantity:  line.Quantity.Float64(),
			UnitPrice: line.UnitPrice.String(),
			Amount:    line.Amount.String(),
		}
	}

	return PurchaseResponse{
		DocumentResponse: FromDocument(t.Document),
		VendorID:         t.VendorID.String(),
		WarehouseID:      t.WarehouseID.String(),
		OrderNumber:      t.OrderNumber,
		TotalAmount:      t.TotalAmount.String(),
		TaxAmount:        t.TaxAmount.String(),
		GrandTotal:       t.GrandTotal.String(),
		Lines:            lines,
	}
}

// CreatePurchaseRequest for creating purchase transactions. Number is
// server-assigned from the PUR sequence.
type CreatePurchaseRequest struct {
	Date        time.Time             `json:"date" binding:"required"`
	VendorID    string                `json:"vendorId" binding:"required"`
	WarehouseID string                `json:"warehouseId" binding:"required"`
	OrderNumber *string               `json:"orderNumber"`
	TaxAmount   string                `json:"taxAmount"`
	Remarks     *string               `json:"remarks"`
	Lines       []PurchaseLineRequest `json:"lines" binding:"required"`
}

// ToEntity converts the request to a domain entity.
func (r CreatePurchaseRequest) ToEntity() (*purchase.Transaction, error) {
	vendorID, err := id.Parse(r.VendorID)
	if err != nil {
		return nil, err
	}
	warehouseID, err := id.Parse(r.WarehouseID)
	if err != nil {
		return nil, err
	}

	t := purchase.NewTransaction(r.Date, vendorID, warehouseID)
	t.OrderNumber = r.OrderNumber
	t.Remarks = r.Remarks
	t.TaxAmount = types.ZeroMoney()
	if r.TaxAmount != "" {
		tax, err := types.NewMoneyFromString(r.TaxAmount)
		if err != nil {
			return nil, err
		}
		t.TaxAmount = tax
	}

	for _, line := range r.Lines {
		itemID, err := id.Parse(line.ItemID)
		if err != nil {
			return nil, err
		}
		price, err := types.NewMoneyFromString(line.UnitPrice)
		if err != nil {
			return nil, err
		}
		t.AddLine(itemID, types.NewQuantityFromFloat64(line.Quantity), price)
	}

	return t, nil
}

// UpdatePurchaseRequest rewrites a draft purchase. Lines replace existing
// lines wholesale.
type UpdatePurchaseRequest struct {
	Date        *time.Time            `json:"date"`
	VendorID    *string               `json:"vendorId"`
	WarehouseID *string               `json:"warehouseId"`
	OrderNumber *string               `json:"orderNumber"`
	TaxAmount   *string               `json:"taxAmount"`
	Remarks     *string               `json:"remarks"`
	Lines       []PurchaseLineRequest `json:"lines"`
}

// ApplyTo overlays the request onto an existing entity.
func (r UpdatePurchaseRequest) ApplyTo(t *purchase.Transaction) error {
	if r.Date != nil {
		t.Date = *r.Date
	}
	if r.VendorID != nil {
		vendorID, err := id.Parse(*r.VendorID)
		if err != nil {
			return err
		}
		t.VendorID = vendorID
	}
	if r.WarehouseID != nil {
		warehouseID, err := id.Parse(*r.WarehouseID)
		if err != nil {
			return err
		}
		t.WarehouseID = warehouseID
	}
	if r.OrderNumber != nil {
		t.OrderNumber = r.OrderNumber
	}
	if r.TaxAmount != nil {
		tax, err := types.NewMoneyFromString(*r.TaxAmount)
		if err != nil {
			return err
		}
		t.TaxAmount = tax
	}
	if r.Remarks != nil {
		t.Remarks = r.Remarks
	}

	if r.Lines != nil {
		t.Lines = t.Lines[:0]
		for _, line := range r.Lines {
			itemID, err := id.Parse(line.ItemID)
			if err != nil {
				return err
			}
			price, err := types.NewMoneyFromString(line.UnitPrice)
			if err != nil {
				return err
			}
			t.AddLine(itemID, types.NewQuantityFromFloat64(line.Quantity), price)
		}
	}

	t.RecalculateTotals()
	t.Touch()
	return nil
}
