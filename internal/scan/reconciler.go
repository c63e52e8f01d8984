// Package scan turns raw scanned text into normalized scanned-product events
// and keeps a short most-recent-first history of accepted scans.
package scan

import (
	"sync"
	"time"

	"github.com/NasmeenI/Inventory-pro/internal/identity"
)

// HistoryCap bounds the scan history; oldest entries are evicted silently.
const HistoryCap = 10

// ScannedProduct is an accepted scan, normalized from the identity payload.
type ScannedProduct struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	ScannedAt time.Time `json:"scanned_at"`
}

// Callback receives every accepted scan. The caller decides what happens
// next (stock-in, stock-out, catalog lookup).
type Callback func(ScannedProduct)

// Reconciler validates decoded payloads and maintains the bounded history.
// The camera decoder emits scans serially, but history access is guarded
// anyway so HTTP readers can list it concurrently.
type Reconciler struct {
	mu      sync.Mutex
	history []ScannedProduct
	cb      Callback
	now     func() time.Time
}

// NewReconciler returns a reconciler that invokes cb for every accepted scan.
// cb may be nil.
func NewReconciler(cb Callback) *Reconciler {
	return &Reconciler{
		cb:  cb,
		now: time.Now,
	}
}

// Reconcile decodes raw scanned text and, when valid, records and returns the
// normalized scan. Decode failures surface as identity.ErrInvalidFormat or
// identity.ErrWrongType.
func (r *Reconciler) Reconcile(raw string) (ScannedProduct, error) {
	payload, err := identity.Decode(raw)
	if err != nil {
		return ScannedProduct{}, err
	}

	sp := ScannedProduct{
		ID:        payload.ID,
		SKU:       payload.SKU,
		Name:      payload.Name,
		ScannedAt: r.now(),
	}

	r.mu.Lock()
	r.history = append([]ScannedProduct{sp}, r.history...)
	if len(r.history) > HistoryCap {
		r.history = r.history[:HistoryCap]
	}
	r.mu.Unlock()

	if r.cb != nil {
		r.cb(sp)
	}
	return sp, nil
}

// History returns a copy of the scan history, newest at index 0.
func (r *Reconciler) History() []ScannedProduct {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ScannedProduct, len(r.history))
	copy(out, r.history)
	return out
}

// Clear drops all recorded scans.
func (r *Reconciler) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = nil
}
