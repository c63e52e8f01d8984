package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/internal/policy"
	"github.com/NasmeenI/Inventory-pro/internal/repository"
	"github.com/NasmeenI/Inventory-pro/internal/stock"
	"github.com/NasmeenI/Inventory-pro/internal/ws"
	"github.com/NasmeenI/Inventory-pro/pkg/validator"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrRequestClosed   = errors.New("request is no longer pending")
)

type RequestService interface {
	Create(actor *policy.Actor, req *model.TransactionRequest) error
	List(actor *policy.Actor) ([]model.TransactionRequest, error)
	Get(actor *policy.Actor, id uuid.UUID) (*model.TransactionRequest, error)
	Update(actor *policy.Actor, id uuid.UUID, req *model.TransactionRequest) (*model.TransactionRequest, error)
	Delete(actor *policy.Actor, id uuid.UUID) error
	Review(actor *policy.Actor, id uuid.UUID, next model.RequestStatus) (*model.TransactionRequest, error)
}

type requestService struct {
	requestRepo repository.RequestRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub

	// inTx runs fn inside a database transaction. It exists as a field so
	// tests can substitute a pass-through runner.
	inTx func(fn func(tx *gorm.DB) error) error
}

func NewRequestService(rRepo repository.RequestRepository, pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) RequestService {
	s := &requestService{
		requestRepo: rRepo,
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
	s.inTx = func(fn func(tx *gorm.DB) error) error {
		return s.db.Transaction(fn)
	}
	return s
}

func (s *requestService) Create(actor *policy.Actor, req *model.TransactionRequest) error {
	if actor == nil {
		return ErrForbidden
	}

	// Amount positivity is checked before anything else so the failure kind
	// is stable regardless of product state.
	if req.ItemAmount < 1 {
		return stock.ErrInvalidAmount
	}
	if err := validator.FirstError(req); err != nil {
		return err
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		return ErrProductNotFound
	}

	// Business bounds: positivity, stock limit, per-request cap.
	if err := stock.ValidateRequest(req.Type, req.ItemAmount, product.Stock); err != nil {
		return err
	}

	req.Status = model.StatusPending
	req.CreatedByUserID = actor.ID
	if req.TransactionDate.IsZero() {
		req.TransactionDate = time.Now()
	}

	if err := s.requestRepo.Create(req); err != nil {
		return err
	}

	s.wsHub.Emit(ws.Event{
		Type:   "request_update",
		Action: "request_created",
		Data: map[string]interface{}{
			"id":          req.ID,
			"type":        req.Type,
			"item_amount": req.ItemAmount,
			"product_id":  req.ProductID,
			"status":      req.Status,
		},
		Message: fmt.Sprintf("New %s request for '%s' (%d %s)", req.Type, product.Name, req.ItemAmount, product.Unit),
	})

	return nil
}

// List is staff-scoped: admins get everything, staff only their own requests.
func (s *requestService) List(actor *policy.Actor) ([]model.TransactionRequest, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	if actor.Role == model.RoleAdmin {
		return s.requestRepo.FindAll()
	}
	return s.requestRepo.FindByCreator(actor.ID)
}

func (s *requestService) Get(actor *policy.Actor, id uuid.UUID) (*model.TransactionRequest, error) {
	req, err := s.requestRepo.FindByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if !policy.CanViewRequest(actor, req) {
		// Hide the record's existence from non-owners.
		return nil, ErrRequestNotFound
	}
	return req, nil
}

// Update edits a request under a row lock so a concurrent Review cannot be
// overwritten: the policy check (which requires pending) runs against the
// locked row, and a request approved in between comes back ErrRequestClosed.
func (s *requestService) Update(actor *policy.Actor, id uuid.UUID, in *model.TransactionRequest) (*model.TransactionRequest, error) {
	var updated *model.TransactionRequest

	err := s.inTx(func(tx *gorm.DB) error {
		req, err := s.requestRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return ErrRequestNotFound
		}

		if !policy.CanEditRequest(actor, req) {
			if req.Status != model.StatusPending && policy.CanViewRequest(actor, req) {
				return ErrRequestClosed
			}
			return ErrForbidden
		}

		if in.ProductID != uuid.Nil {
			req.ProductID = in.ProductID
		}
		if in.Type != "" {
			req.Type = in.Type
		}
		if in.ItemAmount != 0 {
			req.ItemAmount = in.ItemAmount
		}
		if !in.TransactionDate.IsZero() {
			req.TransactionDate = in.TransactionDate
		}
		req.Note = in.Note

		if req.ItemAmount < 1 {
			return stock.ErrInvalidAmount
		}
		if err := validator.FirstError(req); err != nil {
			return err
		}

		product, err := s.productRepo.FindByID(req.ProductID)
		if err != nil {
			return ErrProductNotFound
		}
		if err := stock.ValidateRequest(req.Type, req.ItemAmount, product.Stock); err != nil {
			return err
		}

		if err := s.requestRepo.Save(tx, req); err != nil {
			return err
		}
		updated = req
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a request under the same row lock as Update, so a request
// approved by a concurrent Review can no longer be deleted by its owner.
func (s *requestService) Delete(actor *policy.Actor, id uuid.UUID) error {
	return s.inTx(func(tx *gorm.DB) error {
		req, err := s.requestRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return ErrRequestNotFound
		}
		if !policy.CanDeleteRequest(actor, req) {
			if req.Status != model.StatusPending && policy.CanViewRequest(actor, req) {
				return ErrRequestClosed
			}
			return ErrForbidden
		}
		return s.requestRepo.Delete(tx, id)
	})
}

// Review moves a pending request to approved or rejected. Approval applies
// the stock movement atomically, re-checking a stock-out against live stock
// under a row lock so two approvals cannot oversell.
func (s *requestService) Review(actor *policy.Actor, id uuid.UUID, next model.RequestStatus) (*model.TransactionRequest, error) {
	var reviewed *model.TransactionRequest

	err := s.inTx(func(tx *gorm.DB) error {
		req, err := s.requestRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return ErrRequestNotFound
		}

		if !policy.CanReviewRequest(actor, req) {
			if req.Status != model.StatusPending {
				return ErrRequestClosed
			}
			return ErrForbidden
		}
		if !req.Status.CanTransitionTo(next) {
			return ErrRequestClosed
		}

		product, err := s.productRepo.FindByIDForUpdate(tx, req.ProductID)
		if err != nil {
			return ErrProductNotFound
		}

		if next == model.StatusApproved {
			newStock := product.Stock
			switch req.Type {
			case model.TxStockIn:
				newStock += req.ItemAmount
			case model.TxStockOut:
				// Stock may have moved since the request was filed.
				if err := stock.ValidateRequest(req.Type, req.ItemAmount, product.Stock); err != nil {
					return err
				}
				newStock -= req.ItemAmount
			}
			if err := s.productRepo.UpdateStock(tx, product.ID, newStock, actor.ID); err != nil {
				return err
			}
			product.Stock = newStock
		}

		now := time.Now()
		req.Status = next
		req.ReviewedByUserID = &actor.ID
		req.ReviewedAt = &now
		if err := s.requestRepo.Save(tx, req); err != nil {
			return err
		}

		reviewed = req

		s.wsHub.Emit(ws.Event{
			Type:   "request_update",
			Action: "request_" + string(next),
			Data: map[string]interface{}{
				"id":          req.ID,
				"type":        req.Type,
				"item_amount": req.ItemAmount,
				"product_id":  product.ID,
				"new_stock":   product.Stock,
				"status":      req.Status,
			},
			Message: fmt.Sprintf("Request for '%s' %s", product.Name, next),
		})

		return nil
	})

	if err != nil {
		return nil, err
	}
	return reviewed, nil
}
