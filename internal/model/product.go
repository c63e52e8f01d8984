package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	SKU         string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"type:varchar(100);index" json:"category"`
	Price       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	Stock       int             `gorm:"default:0" json:"stock_quantity" validate:"gte=0"`
	Unit        string          `gorm:"type:varchar(20)" json:"unit"`
	PictureURL  string          `gorm:"type:text" json:"picture_url"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`

	// User tracking
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`
	UpdatedByUserID *uuid.UUID `gorm:"type:uuid" json:"updated_by_user_id,omitempty"`
	CreatedByUser   *User      `gorm:"foreignKey:CreatedByUserID;references:ID" json:"created_by_user,omitempty"`
	UpdatedByUser   *User      `gorm:"foreignKey:UpdatedByUserID;references:ID" json:"updated_by_user,omitempty"`

	// Relasi
	Requests []TransactionRequest `gorm:"foreignKey:ProductID" json:"requests,omitempty"`
}
