package entity

import (
	"context"
	"time"

	"stokado/internal/core/apperror"
)

// Status is the lifecycle state of a business document.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s is a known document status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Document is the base type for business documents (purchase and sales
// transactions). Number is the sequence-generated business identifier.
type Document struct {
	BaseEntity

	// Number is the document identifier (e.g. PUR-AAA0001),
	// assigned on create from the sequence generator.
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Status drives the allowed operations on the document
	Status Status `db:"status" json:"status"`

	// Remarks is free-form operator text
	Remarks *string `db:"remarks" json:"remarks,omitempty"`
}

// NewDocument creates a new draft document.
func NewDocument(date time.Time) Document {
	return Document{
		BaseEntity: NewBaseEntity(),
		Date:       date,
		Status:     StatusDraft,
	}
}

// Validate implements Validatable.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("document date is required").
			WithDetail("field", "date")
	}
	if !ValidStatus(d.Status) {
		return apperror.NewValidation("invalid document status").
			WithDetail("field", "status").
			WithDetail("value", string(d.Status))
	}
	return nil
}

// Confirm moves a draft document to confirmed.
func (d *Document) Confirm() error {
	if d.Status != StatusDraft {
		return apperror.NewInvalidStatusTransition(string(d.Status), string(StatusConfirmed))
	}
	d.Status = StatusConfirmed
	d.Touch()
	return nil
}

// Complete moves a confirmed document to completed.
func (d *Document) Complete() error {
	if d.Status != StatusConfirmed {
		return apperror.NewInvalidStatusTransition(string(d.Status), string(StatusCompleted))
	}
	d.Status = StatusCompleted
	d.Touch()
	return nil
}

// Cancel voids a draft or confirmed document. Completed documents stay.
func (d *Document) Cancel() error {
	if d.Status != StatusDraft && d.Status != StatusConfirmed {
		return apperror.NewInvalidStatusTransition(string(d.Status), string(StatusCancelled))
	}
	d.Status = StatusCancelled
	d.Touch()
	return nil
}

// IsEditable reports whether document fields may still change.
func (d *Document) IsEditable() bool {
	return d.Status == StatusDraft
}
