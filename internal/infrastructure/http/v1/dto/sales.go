package dto

import (
	"time"

	"stokado/internal/core/id"
	"stokado/internal/core/types"
	"stokado/internal/domain/documents/sales"
)

// SalesLineRequest is one line of a sales document.
type SalesLineRequest struct {
	ItemID    string  `json:"itemId" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
	UnitPrice string  `json:"unitPrice" binding:"required"`
}

// SalesLineResponse is the API representation of a sales line.
type SalesLineResponse struct {
	LineID    string  `json:"lineId"`
	LineNo    int     `json:"lineNo"`
	ItemID    string  `json:"itemId"`
	Quantity  float64 `json:"quantity"`
	UnitPrice string  `json:"unitPrice"`
	Amount    string  `json:"amount"`
}

// SalesResponse is the API representation of a sales transaction.
type SalesResponse struct {
	DocumentResponse
	CustomerID  string              `json:"customerId"`
	WarehouseID string              `json:"warehouseId"`
	OrderNumber *string             `json:"orderNumber,omitempty"`
	TotalAmount string              `json:"totalAmount"`
	TaxAmount   string              `json:"taxAmount"`
	GrandTotal  string              `json:"grandTotal"`
	Lines       []SalesLineResponse `json:"lines"`
}

// FromSales creates SalesResponse from the domain entity.
func FromSales(t *sales.Transaction) SalesResponse {
	lines := make([]SalesLineResponse, len(t.Lines))
	for i, line := range t.Lines {
		lines[i] = SalesLineResponse{
			LineID:    line.LineID.String(),
			LineNo:    line.LineNo,
			ItemID:    line.ItemID.String(),
			Quantity:  line.Quantity.Float64(),
			UnitPrice: line.UnitPrice.String(),
			Amount:    line.Amount.String(),
		}
	}

	return SalesResponse{
		DocumentResponse: FromDocument(t.Document),
		CustomerID:       t.CustomerID.String(),
		WarehouseID:      t.WarehouseID.String(),
		OrderNumber:      t.OrderNumber,
		TotalAmount:      t.TotalAmount.String(),
		TaxAmount:        t.TaxAmount.String(),
		GrandTotal:       t.GrandTotal.String(),
		Lines:            lines,
	}
}

// CreateSalesRequest for creating sales transactions. Number is
// server-assigned from the SAL sequence.
type CreateSalesRequest struct {
	Date        time.Time          `json:"date" binding:"required"`
	CustomerID  string             `json:"customerId" binding:"required"`
	WarehouseID string             `json:"warehouseId" binding:"required"`
	OrderNumber *string            `json:"orderNumber"`
	TaxAmount   string             `json:"taxAmount"`
	Remarks     *string            `json:"remarks"`
	Lines       []SalesLineRequest `json:"lines" binding:"required"`
}

// ToEntity converts the request to a domain entity.
func (r CreateSalesRequest) ToEntity() (*sales.Transaction, error) {
	customerID, err := id.Parse(r.CustomerID)
	if err != nil {
		return nil, err
	}
	warehouseID, err := id.Parse(r.WarehouseID)
	if err != nil {
		return nil, err
	}

	t := sales.NewTransaction(r.Date, customerID, warehouseID)
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

// UpdateSalesRequest rewrites a draft sale. Lines replace existing lines
// wholesale.
type UpdateSalesRequest struct {
	Date        *time.Time         `json:"date"`
	CustomerID  *string            `json:"customerId"`
	WarehouseID *string            `json:"warehouseId"`
	OrderNumber *string            `json:"orderNumber"`
	TaxAmount   *string            `json:"taxAmount"`
	Remarks     *string            `json:"remarks"`
	Lines       []SalesLineRequest `json:"lines"`
}

// ApplyTo overlays the request onto an existing entity.
func (r UpdateSalesRequest) ApplyTo(t *sales.Transaction) error {
	if r.Date != nil {
		t.Date = *r.Date
	}
	if r.CustomerID != nil {
		customerID, err := id.Parse(*r.CustomerID)
		if err != nil {
			return err
		}
		t.CustomerID = customerID
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
