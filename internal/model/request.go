package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TxStockIn  TransactionType = "stockIn"
	TxStockOut TransactionType = "stockOut"
)

// RequestStatus is the lifecycle state of a TransactionRequest.
// pending -> approved | rejected; approved and rejected are terminal.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// CanTransitionTo reports whether the status may move to next.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s != StatusPending {
		return false
	}
	return next == StatusApproved || next == StatusRejected
}

// TransactionRequest is a staff-filed stock movement awaiting admin review.
type TransactionRequest struct {
	BaseModel
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product         Product         `json:"product" validate:"-"` // Relasi - skip validation
	Type            TransactionType `gorm:"type:varchar(10);not null" json:"transaction_type" validate:"required,oneof=stockIn stockOut"`
	ItemAmount      int             `gorm:"not null" json:"item_amount" validate:"required,gt=0"`
	TransactionDate time.Time       `gorm:"not null" json:"transaction_date" validate:"required"`
	Status          RequestStatus   `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	Note            string          `json:"note"`

	// User tracking
	CreatedByUserID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedByUser   *User     `gorm:"foreignKey:CreatedByUserID;references:ID" json:"created_by_user,omitempty"`

	// Set when an admin approves or rejects.
	ReviewedByUserID *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
}

// TableName specifies the table name for GORM
func (TransactionRequest) TableName() string {
	return "transaction_requests"
}
