package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/NasmeenI/Inventory-pro/internal/identity"
	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/internal/policy"
	"github.com/NasmeenI/Inventory-pro/internal/repository"
	"github.com/NasmeenI/Inventory-pro/internal/ws"
	"github.com/NasmeenI/Inventory-pro/pkg/validator"
)

var (
	ErrForbidden       = errors.New("you are not allowed to perform this action")
	ErrProductNotFound = errors.New("product not found")
	ErrSKUTaken        = errors.New("SKU already exists")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrNegativeStock   = errors.New("stock quantity must not be negative")
)

type ProductService interface {
	Create(actor *policy.Actor, req *model.Product) error
	Update(actor *policy.Actor, id uuid.UUID, req *model.Product) (*model.Product, error)
	Delete(actor *policy.Actor, id uuid.UUID) error
	SetStock(actor *policy.Actor, id uuid.UUID, quantity int) (*model.Product, error)
	GetAll() ([]model.Product, error)
	GetByID(id uuid.UUID) (*model.Product, error)
	IdentityCode(id uuid.UUID) (string, error)
}

type productService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) ProductService {
	return &productService{
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *productService) Create(actor *policy.Actor, req *model.Product) error {
	if !policy.CanEditProduct(actor, req) {
		return ErrForbidden
	}

	if err := validator.FirstError(req); err != nil {
		return err
	}
	if req.Price.IsNegative() {
		return ErrNegativePrice
	}
	if req.Stock < 0 {
		return ErrNegativeStock
	}

	// Cek Duplikasi SKU
	existing, _ := s.productRepo.FindBySKU(req.SKU)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrSKUTaken
	}

	req.IsActive = true
	req.CreatedByUserID = &actor.ID
	req.UpdatedByUserID = &actor.ID

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.wsHub.Emit(ws.Event{
		Type:   "stock_update",
		Action: "product_created",
		Data: map[string]interface{}{
			"id":    req.ID,
			"sku":   req.SKU,
			"name":  req.Name,
			"stock": req.Stock,
			"price": req.Price,
		},
		Message: fmt.Sprintf("Product '%s' created", req.Name),
	})

	return nil
}

func (s *productService) Update(actor *policy.Actor, id uuid.UUID, req *model.Product) (*model.Product, error) {
	var updatedProduct *model.Product

	// Transaction block dengan locking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&existing, "id = ?", id).Error; err != nil {
			return ErrProductNotFound
		}

		if !policy.CanEditProduct(actor, &existing) {
			return ErrForbidden
		}
		if req.Price.IsNegative() {
			return ErrNegativePrice
		}
		if req.Stock < 0 {
			return ErrNegativeStock
		}

		oldStock := existing.Stock

		existing.Name = req.Name
		existing.SKU = req.SKU
		existing.Description = req.Description
		existing.Category = req.Category
		existing.Price = req.Price
		existing.Stock = req.Stock
		existing.Unit = req.Unit
		existing.PictureURL = req.PictureURL
		existing.IsActive = req.IsActive
		existing.UpdatedByUserID = &actor.ID

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		updatedProduct = &existing

		s.wsHub.Emit(ws.Event{
			Type:   "stock_update",
			Action: "product_updated",
			Data: map[string]interface{}{
				"id":        existing.ID,
				"sku":       existing.SKU,
				"name":      existing.Name,
				"old_stock": oldStock,
				"new_stock": existing.Stock,
			},
			Message: fmt.Sprintf("Product '%s' updated", existing.Name),
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updatedProduct, nil
}

func (s *productService) Delete(actor *policy.Actor, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return ErrProductNotFound
	}

	if !policy.CanDeleteProduct(actor, product) {
		return ErrForbidden
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.wsHub.Emit(ws.Event{
		Type:    "stock_update",
		Action:  "product_deleted",
		Data:    map[string]interface{}{"id": id, "sku": product.SKU},
		Message: fmt.Sprintf("Product '%s' deleted", product.Name),
	})

	return nil
}

func (s *productService) SetStock(actor *policy.Actor, id uuid.UUID, quantity int) (*model.Product, error) {
	if quantity < 0 {
		return nil, ErrNegativeStock
	}

	var updated *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&existing, "id = ?", id).Error; err != nil {
			return ErrProductNotFound
		}

		if !policy.CanEditProduct(actor, &existing) {
			return ErrForbidden
		}

		if err := s.productRepo.UpdateStock(tx, existing.ID, quantity, actor.ID); err != nil {
			return err
		}
		existing.Stock = quantity
		updated = &existing

		s.wsHub.Emit(ws.Event{
			Type:    "stock_update",
			Action:  "stock_set",
			Data:    map[string]interface{}{"id": existing.ID, "sku": existing.SKU, "new_stock": quantity},
			Message: fmt.Sprintf("Stock for '%s' set to %d", existing.Name, quantity),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *productService) GetAll() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// IdentityCode returns the scannable payload for a product, ready to be
// rendered as a QR code by the frontend.
func (s *productService) IdentityCode(id uuid.UUID) (string, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return "", ErrProductNotFound
	}
	return identity.Encode(identity.Payload{
		ID:   product.ID.String(),
		SKU:  product.SKU,
		Name: product.Name,
	})
}

// InventoryValue is price * stock summed over active products.
func InventoryValue(products []model.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total
}
