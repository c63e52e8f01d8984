package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NasmeenI/Inventory-pro/internal/model"
)

func TestValidateRequest(t *testing.T) {
	cases := []struct {
		name   string
		txType model.TransactionType
		amount int
		stock  int
		want   error
	}{
		{"stockIn ok", model.TxStockIn, 10, 5, nil},
		{"stockIn has no cap", model.TxStockIn, 1000, 5, nil},
		{"stockOut within bounds", model.TxStockOut, 40, 100, nil},
		{"stockOut at cap", model.TxStockOut, 50, 100, nil},
		{"stockOut at stock", model.TxStockOut, 40, 40, nil},

		{"zero amount", model.TxStockIn, 0, 100, ErrInvalidAmount},
		{"negative amount", model.TxStockOut, -3, 100, ErrInvalidAmount},

		{"stockOut over cap", model.TxStockOut, 51, 100, ErrExceedsRequestCap},
		{"stockOut way over cap", model.TxStockOut, 500, 1000, ErrExceedsRequestCap},

		// Stock bound is checked before the cap, so with amount=60 and
		// stock=40 the stock error fires even though 60 also breaks the cap.
		{"stock bound checked first", model.TxStockOut, 60, 40, ErrExceedsStock},
		{"stockOut over stock under cap", model.TxStockOut, 30, 20, ErrExceedsStock},
		{"stockOut from empty stock", model.TxStockOut, 1, 0, ErrExceedsStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.txType, tc.amount, tc.stock)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestInvalidAmountTakesPrecedence(t *testing.T) {
	// A non-positive amount fails before any stock comparison.
	assert.ErrorIs(t, ValidateRequest(model.TxStockOut, 0, 0), ErrInvalidAmount)
	assert.ErrorIs(t, ValidateRequest(model.TxStockOut, -60, 40), ErrInvalidAmount)
}
