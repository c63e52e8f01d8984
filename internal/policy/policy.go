// Package policy decides which records a user may view, edit or delete.
// Evaluation is pure and total: predicates never error and a nil actor
// degrades to false everywhere except the public product catalog.
package policy

import (
	"github.com/google/uuid"

	"github.com/NasmeenI/Inventory-pro/internal/model"
)

// Action is an operation a user may attempt on a record.
type Action string

const (
	ActionView    Action = "view"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Actor is the authenticated caller, or nil when unauthenticated.
type Actor struct {
	ID   uuid.UUID
	Role model.Role
}

// requestRule is one row of the authorization matrix for transaction
// requests: who (role), over what (own vs others' records, in which status),
// may do which actions.
type requestRule struct {
	role      model.Role
	ownerOnly bool
	statuses  []model.RequestStatus // nil means any status
	actions   []Action
}

// requestMatrix is the whole policy for TransactionRequest as data. Admins
// see everything and can act on pending requests; staff are scoped to their
// own records and lose edit/delete once a request leaves pending.
var requestMatrix = []requestRule{
	{role: model.RoleAdmin, actions: []Action{ActionView}},
	{role: model.RoleAdmin, statuses: []model.RequestStatus{model.StatusPending},
		actions: []Action{ActionEdit, ActionDelete, ActionApprove, ActionReject}},
	{role: model.RoleStaff, ownerOnly: true, actions: []Action{ActionView}},
	{role: model.RoleStaff, ownerOnly: true, statuses: []model.RequestStatus{model.StatusPending},
		actions: []Action{ActionEdit, ActionDelete}},
}

func (r requestRule) matches(actor *Actor, req *model.TransactionRequest, action Action) bool {
	if actor.Role != r.role {
		return false
	}
	if r.ownerOnly && req.CreatedByUserID != actor.ID {
		return false
	}
	if r.statuses != nil {
		ok := false
		for _, s := range r.statuses {
			if req.Status == s {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	for _, a := range r.actions {
		if a == action {
			return true
		}
	}
	return false
}

// CanRequest evaluates the matrix for a transaction request.
func CanRequest(actor *Actor, req *model.TransactionRequest, action Action) bool {
	if actor == nil || req == nil {
		return false
	}
	for _, rule := range requestMatrix {
		if rule.matches(actor, req, action) {
			return true
		}
	}
	return false
}

// CanViewRequest reports whether the actor may see the request at all.
func CanViewRequest(actor *Actor, req *model.TransactionRequest) bool {
	return CanRequest(actor, req, ActionView)
}

// CanEditRequest allows admins, and owners while the request is pending.
func CanEditRequest(actor *Actor, req *model.TransactionRequest) bool {
	return CanRequest(actor, req, ActionEdit)
}

// CanDeleteRequest mirrors CanEditRequest.
func CanDeleteRequest(actor *Actor, req *model.TransactionRequest) bool {
	return CanRequest(actor, req, ActionDelete)
}

// CanReviewRequest gates the approve/reject transition: admin only, and only
// while the request is still pending.
func CanReviewRequest(actor *Actor, req *model.TransactionRequest) bool {
	return CanRequest(actor, req, ActionApprove)
}

// CanViewProduct: the catalog is public, even unauthenticated.
func CanViewProduct(actor *Actor, p *model.Product) bool {
	return p != nil
}

// CanEditProduct: admin only.
func CanEditProduct(actor *Actor, p *model.Product) bool {
	return actor != nil && p != nil && actor.Role == model.RoleAdmin
}

// CanDeleteProduct: admin only.
func CanDeleteProduct(actor *Actor, p *model.Product) bool {
	return actor != nil && p != nil && actor.Role == model.RoleAdmin
}
