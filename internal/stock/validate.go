// Package stock enforces the business bounds on stock transaction amounts.
package stock

import (
	"errors"

	"github.com/NasmeenI/Inventory-pro/internal/model"
)

// MaxRequestAmount caps a single stock-out request regardless of how much
// stock is on hand.
const MaxRequestAmount = 50

var (
	ErrInvalidAmount     = errors.New("stock: item amount must be a positive integer")
	ErrExceedsStock      = errors.New("stock: item amount exceeds available stock")
	ErrExceedsRequestCap = errors.New("stock: item amount exceeds the per-request cap")
)

// ValidateRequest checks a requested amount against the product's current
// stock. Checks run in a fixed order so error messages are stable: amount
// positivity, then the stock bound, then the cap. Stock-in has no upper
// bound. The effective stock-out maximum is min(productStock, MaxRequestAmount).
func ValidateRequest(txType model.TransactionType, amount, productStock int) error {
	if amount < 1 {
		return ErrInvalidAmount
	}

	if txType == model.TxStockOut {
		if amount > productStock {
			return ErrExceedsStock
		}
		if amount > MaxRequestAmount {
			return ErrExceedsRequestCap
		}
	}

	return nil
}
