package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quotation status workflow
const (
	QuotationStatusPending   = "pending"
	QuotationStatusViewed    = "viewed"
	QuotationStatusQuoted    = "quoted"
	QuotationStatusCompleted = "completed"
	QuotationStatusRejected  = "rejected"
)

func IsValidQuotationStatus(status string) bool {
	switch status {
	case QuotationStatusPending, QuotationStatusViewed, QuotationStatusQuoted,
		QuotationStatusCompleted, QuotationStatusRejected:
		return true
	}
	return false
}

// Quotation is a customer-submitted custom-order request. It is created by
// the storefront, mutated (status, notes) by admin action, and never deleted.
type Quotation struct {
	ID              uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerName    string                      `json:"customerName" gorm:"not null"`
	CustomerEmail   string                      `json:"customerEmail" gorm:"not null"`
	CustomerPhone   string                      `json:"customerPhone"`
	RequestDetails  string                      `json:"requestDetails" gorm:"type:text;not null"`
	ReferenceImages datatypes.JSONSlice[string] `json:"referenceImages" gorm:"not null"`
	Status          string                      `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	AdminNotes      string                      `json:"adminNotes" gorm:"type:text"`
	CreatedAt       time.Time                   `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time                   `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Quotation) TableName() string {
	return "quotations"
}

// QuotationRequest is the storefront intake payload
type QuotationRequest struct {
	CustomerName    string   `json:"customerName" binding:"required"`
	CustomerEmail   string   `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string   `json:"customerPhone"`
	RequestDetails  string   `json:"requestDetails" binding:"required"`
	ReferenceImages []string `json:"referenceImages"`
}

type UpdateQuotationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending viewed quoted completed rejected"`
}

type UpdateQuotationNotesRequest struct {
	AdminNotes string `json:"adminNotes"`
}
