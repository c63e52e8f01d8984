package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/internal/repository"
	"github.com/NasmeenI/Inventory-pro/internal/scan"
	"github.com/NasmeenI/Inventory-pro/internal/ws"
)

// ScanResult is an accepted scan, enriched from the catalog when the scanned
// product still exists there.
type ScanResult struct {
	Scan    scan.ScannedProduct `json:"scan"`
	Product *model.Product      `json:"product,omitempty"`
}

type ScanService interface {
	Submit(raw string) (*ScanResult, error)
	Recent() []scan.ScannedProduct
	ClearHistory()
}

type scanService struct {
	reconciler  *scan.Reconciler
	productRepo repository.ProductRepository
}

// NewScanService wires the reconciler's accepted-scan callback to the
// websocket hub so dashboards see scans live.
func NewScanService(pRepo repository.ProductRepository, hub *ws.Hub) ScanService {
	s := &scanService{productRepo: pRepo}
	s.reconciler = scan.NewReconciler(func(sp scan.ScannedProduct) {
		hub.Emit(ws.Event{
			Type:    "scan",
			Action:  "product_scanned",
			Data:    sp,
			Message: fmt.Sprintf("Scanned '%s' (%s)", sp.Name, sp.SKU),
		})
	})
	return s
}

func (s *scanService) Submit(raw string) (*ScanResult, error) {
	sp, err := s.reconciler.Reconcile(raw)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{Scan: sp}

	// Enrichment is best effort: a stale code for a deleted product still
	// counts as a valid scan.
	if id, err := uuid.Parse(sp.ID); err == nil {
		if product, err := s.productRepo.FindByID(id); err == nil {
			result.Product = product
		}
	}
	if result.Product == nil {
		if product, err := s.productRepo.FindBySKU(sp.SKU); err == nil {
			result.Product = product
		}
	}

	return result, nil
}

func (s *scanService) Recent() []scan.ScannedProduct {
	return s.reconciler.History()
}

func (s *scanService) ClearHistory() {
	s.reconciler.Clear()
}
