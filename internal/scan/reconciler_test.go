package scan

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NasmeenI/Inventory-pro/internal/identity"
)

func encodeItem(t *testing.T, id, sku, name string) string {
	t.Helper()
	raw, err := identity.Encode(identity.Payload{ID: id, SKU: sku, Name: name})
	require.NoError(t, err)
	return raw
}

func TestReconcileAcceptsValidPayload(t *testing.T) {
	var got []ScannedProduct
	r := NewReconciler(func(sp ScannedProduct) { got = append(got, sp) })

	sp, err := r.Reconcile(encodeItem(t, "p-1", "WH-1", "Crate"))
	require.NoError(t, err)

	assert.Equal(t, "p-1", sp.ID)
	assert.Equal(t, "WH-1", sp.SKU)
	assert.Equal(t, "Crate", sp.Name)
	assert.False(t, sp.ScannedAt.IsZero())

	require.Len(t, got, 1)
	assert.Equal(t, sp, got[0])
}

func TestReconcileRejectsBadInput(t *testing.T) {
	called := false
	r := NewReconciler(func(ScannedProduct) { called = true })

	_, err := r.Reconcile("???")
	assert.ErrorIs(t, err, identity.ErrInvalidFormat)

	_, err = r.Reconcile(`{"id":"1","sku":"A","name":"Box","type":"shipping-label"}`)
	assert.ErrorIs(t, err, identity.ErrWrongType)

	assert.False(t, called, "callback must not fire for rejected scans")
	assert.Empty(t, r.History(), "rejected scans must not enter history")
}

func TestHistoryIsBoundedNewestFirst(t *testing.T) {
	r := NewReconciler(nil)
	tick := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	for i := 0; i < HistoryCap+5; i++ {
		_, err := r.Reconcile(encodeItem(t, fmt.Sprintf("p-%d", i), fmt.Sprintf("SKU-%d", i), "Item"))
		require.NoError(t, err)
	}

	hist := r.History()
	require.Len(t, hist, HistoryCap)

	// Newest at index 0; the five oldest scans were evicted.
	assert.Equal(t, fmt.Sprintf("p-%d", HistoryCap+4), hist[0].ID)
	assert.Equal(t, "p-5", hist[HistoryCap-1].ID)
	for i := 1; i < len(hist); i++ {
		assert.True(t, hist[i-1].ScannedAt.After(hist[i].ScannedAt))
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	r := NewReconciler(nil)
	_, err := r.Reconcile(encodeItem(t, "p-1", "WH-1", "Crate"))
	require.NoError(t, err)

	hist := r.History()
	hist[0].ID = "mutated"

	assert.Equal(t, "p-1", r.History()[0].ID)
}

func TestClear(t *testing.T) {
	r := NewReconciler(nil)
	_, err := r.Reconcile(encodeItem(t, "p-1", "WH-1", "Crate"))
	require.NoError(t, err)

	r.Clear()
	assert.Empty(t, r.History())
}

func TestSessionStopIsIdempotent(t *testing.T) {
	stops := 0
	s := NewSession(func() { stops++ })
	assert.True(t, s.Active())

	s.Stop()
	s.Stop()
	s.Stop()

	assert.False(t, s.Active())
	assert.Equal(t, 1, stops)
}

func TestSessionStopWithNilHook(t *testing.T) {
	s := NewSession(nil)
	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})
}
