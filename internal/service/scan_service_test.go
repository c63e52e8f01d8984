package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NasmeenI/Inventory-pro/internal/identity"
	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/internal/ws"
)

func newScanService(pRepo *MockProductRepo) ScanService {
	hub := ws.NewHub()
	go hub.Run()
	return NewScanService(pRepo, hub)
}

func TestSubmitEnrichesFromCatalog(t *testing.T) {
	pRepo := new(MockProductRepo)
	svc := newScanService(pRepo)

	productID := uuid.New()
	product := &model.Product{SKU: "WH-1", Name: "Crate", Stock: 12}
	product.ID = productID
	pRepo.On("FindByID", productID).Return(product, nil)

	raw, err := identity.Encode(identity.Payload{ID: productID.String(), SKU: "WH-1", Name: "Crate"})
	require.NoError(t, err)

	result, err := svc.Submit(raw)
	require.NoError(t, err)

	assert.Equal(t, "WH-1", result.Scan.SKU)
	require.NotNil(t, result.Product)
	assert.Equal(t, 12, result.Product.Stock)
}

func TestSubmitFallsBackToSKULookup(t *testing.T) {
	pRepo := new(MockProductRepo)
	svc := newScanService(pRepo)

	product := &model.Product{SKU: "WH-2", Name: "Pallet"}
	product.ID = uuid.New()
	pRepo.On("FindBySKU", "WH-2").Return(product, nil)

	// Non-UUID id means the primary lookup is skipped entirely.
	raw, err := identity.Encode(identity.Payload{ID: "legacy-17", SKU: "WH-2", Name: "Pallet"})
	require.NoError(t, err)

	result, err := svc.Submit(raw)
	require.NoError(t, err)
	require.NotNil(t, result.Product)
	assert.Equal(t, "WH-2", result.Product.SKU)
}

func TestSubmitAcceptsStaleCodes(t *testing.T) {
	pRepo := new(MockProductRepo)
	svc := newScanService(pRepo)

	productID := uuid.New()
	pRepo.On("FindByID", productID).Return(nil, errors.New("record not found"))
	pRepo.On("FindBySKU", "WH-3").Return(nil, errors.New("record not found"))

	raw, err := identity.Encode(identity.Payload{ID: productID.String(), SKU: "WH-3", Name: "Gone"})
	require.NoError(t, err)

	result, err := svc.Submit(raw)
	require.NoError(t, err, "a valid code for a deleted product is still a valid scan")
	assert.Nil(t, result.Product)
	assert.Equal(t, "WH-3", result.Scan.SKU)
}

func TestSubmitRejectsGarbageAndRecordsNothing(t *testing.T) {
	svc := newScanService(new(MockProductRepo))

	_, err := svc.Submit("not a payload")
	assert.ErrorIs(t, err, identity.ErrInvalidFormat)
	assert.Empty(t, svc.Recent())
}

func TestRecentAndClear(t *testing.T) {
	pRepo := new(MockProductRepo)
	svc := newScanService(pRepo)
	pRepo.On("FindBySKU", "WH-9").Return(nil, errors.New("record not found"))

	raw, err := identity.Encode(identity.Payload{ID: "x", SKU: "WH-9", Name: "Thing"})
	require.NoError(t, err)

	_, err = svc.Submit(raw)
	require.NoError(t, err)
	assert.Len(t, svc.Recent(), 1)

	svc.ClearHistory()
	assert.Empty(t, svc.Recent())
}
