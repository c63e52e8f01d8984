package service

import (
	"github.com/shopspring/decimal"

	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/internal/repository"
)

// LowStockThreshold marks products that need restocking on the dashboard.
const LowStockThreshold = 10

type DashboardStats struct {
	TotalProducts   int64           `json:"total_products"`
	LowStockCount   int64           `json:"low_stock_count"`
	PendingRequests int64           `json:"pending_requests"`
	TotalValuation  decimal.Decimal `json:"total_valuation"`
}

type DashboardService interface {
	GetStats() (*DashboardStats, error)
	RecentActivity(limit int) ([]model.TransactionRequest, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	requestRepo repository.RequestRepository
}

func NewDashboardService(pRepo repository.ProductRepository, rRepo repository.RequestRepository) DashboardService {
	return &dashboardService{
		productRepo: pRepo,
		requestRepo: rRepo,
	}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	total, err := s.productRepo.CountAll()
	if err != nil {
		return nil, err
	}
	lowStock, err := s.productRepo.CountLowStock(LowStockThreshold)
	if err != nil {
		return nil, err
	}
	pending, err := s.requestRepo.CountByStatus(model.StatusPending)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts:   total,
		LowStockCount:   lowStock,
		PendingRequests: pending,
		TotalValuation:  InventoryValue(products),
	}, nil
}

func (s *dashboardService) RecentActivity(limit int) ([]model.TransactionRequest, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.requestRepo.FindRecent(limit)
}
