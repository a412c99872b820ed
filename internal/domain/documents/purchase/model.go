// Package purchase provides the purchase transaction document: goods bought
// from a vendor into a warehouse.
package purchase

import (
	"context"
	"time"

	"stokado/internal/core/apperror"
	"stokado/internal/core/entity"
	"stokado/internal/core/id"
	"stokado/internal/core/types"
)

// Prefix is the sequence prefix for purchase transaction numbers.
const Prefix = "PUR"

// Transaction represents a purchase from a vendor.
type Transaction struct {
	entity.Document

	// VendorID references the supplying vendor
	VendorID id.ID `db:"vendor_id" json:"vendorId"`

	// WarehouseID is where the goods are received
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`

	// OrderNumber is the vendor-side order reference
	OrderNumber *string `db:"order_number" json:"orderNumber,omitempty"`

	// Totals (calculated from lines)
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`
	GrandTotal  types.Money `db:"grand_total" json:"grandTotal"`

	// Tax applied on top of the total
	TaxAmount types.Money `db:"tax_amount" json:"taxAmount"`

	// Table part: purchased goods
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one purchased item.
type Line struct {
	// Line identification
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	// Item reference
	ItemID id.ID `db:"item_id" json:"itemId"`

	// Quantity and pricing
	Quantity  types.Quantity `db:"quantity" json:"quantity"`
	UnitPrice types.Money    `db:"unit_price" json:"unitPrice"`
	Amount    types.Money    `db:"amount" json:"amount"`
}

// NewTransaction creates a new draft purchase transaction.
func NewTransaction(date time.Time, vendorID, warehouseID id.ID) *Transaction {
	return &Transaction{
		Document:    entity.NewDocument(date),
		VendorID:    vendorID,
		WarehouseID: warehouseID,
		Lines:       make([]Line, 0),
	}
}

// AddLine appends a line and recalculates totals.
func (t *Transaction) AddLine(itemID id.ID, quantity types.Quantity, unitPrice types.Money) {
	line := Line{
		LineID:    id.New(),
		LineNo:    len(t.Lines) + 1,
		ItemID:    itemID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Amount:    unitPrice.Mul(types.NewMoney(quantity.Float64())),
	}
	t.Lines = append(t.Lines, line)
	t.RecalculateTotals()
}

// RecalculateTotals updates document totals from lines.
func (t *Transaction) RecalculateTotals() {
	total := types.ZeroMoney()
	for _, line := range t.Lines {
		total = total.Add(line.Amount)
	}
	t.TotalAmount = total
	t.GrandTotal = total.Add(t.TaxAmount)
}

// Validate implements entity.Validatable.
func (t *Transaction) Validate(ctx context.Context) error {
	if err := t.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(t.VendorID) {
		return apperror.NewValidation("vendor is required").
			WithDetail("field", "vendorId")
	}
	if id.IsNil(t.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}
	if len(t.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for _, line := range t.Lines {
		if id.IsNil(line.ItemID) {
			return apperror.NewValidation("item is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", line.LineNo)
		}
		if !line.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", line.LineNo)
		}
		if line.UnitPrice.IsNegative() {
			return apperror.NewValidation("unit price cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", line.LineNo)
		}
	}

	if t.TaxAmount.IsNegative() {
		return apperror.NewValidation("tax cannot be negative").
			WithDetail("field", "taxAmount")
	}

	return nil
}
