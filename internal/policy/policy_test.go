package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/NasmeenI/Inventory-pro/internal/model"
)

var (
	adminID = uuid.New()
	staffID = uuid.New()
	otherID = uuid.New()

	admin = &Actor{ID: adminID, Role: model.RoleAdmin}
	staff = &Actor{ID: staffID, Role: model.RoleStaff}
)

func request(owner uuid.UUID, status model.RequestStatus) *model.TransactionRequest {
	return &model.TransactionRequest{
		CreatedByUserID: owner,
		Status:          status,
	}
}

func TestProductPolicy(t *testing.T) {
	p := &model.Product{}

	assert.True(t, CanViewProduct(nil, p), "catalog is public")
	assert.True(t, CanViewProduct(staff, p))
	assert.True(t, CanViewProduct(admin, p))

	assert.True(t, CanEditProduct(admin, p))
	assert.True(t, CanDeleteProduct(admin, p))

	assert.False(t, CanEditProduct(staff, p))
	assert.False(t, CanDeleteProduct(staff, p))
	assert.False(t, CanEditProduct(nil, p))
	assert.False(t, CanDeleteProduct(nil, p))
}

func TestRequestVisibility(t *testing.T) {
	own := request(staffID, model.StatusPending)
	foreign := request(otherID, model.StatusPending)

	assert.True(t, CanViewRequest(admin, own))
	assert.True(t, CanViewRequest(admin, foreign))

	assert.True(t, CanViewRequest(staff, own))
	assert.False(t, CanViewRequest(staff, foreign), "staff must not see others' requests")

	assert.False(t, CanViewRequest(nil, own))
}

func TestRequestEditDeleteMatrix(t *testing.T) {
	cases := []struct {
		name    string
		actor   *Actor
		req     *model.TransactionRequest
		canEdit bool
	}{
		{"owner pending", staff, request(staffID, model.StatusPending), true},
		{"owner approved", staff, request(staffID, model.StatusApproved), false},
		{"owner rejected", staff, request(staffID, model.StatusRejected), false},
		{"staff foreign pending", staff, request(otherID, model.StatusPending), false},
		{"admin pending", admin, request(otherID, model.StatusPending), true},
		{"admin approved", admin, request(otherID, model.StatusApproved), false},
		{"admin rejected", admin, request(otherID, model.StatusRejected), false},
		{"nil actor", nil, request(otherID, model.StatusPending), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.canEdit, CanEditRequest(tc.actor, tc.req))
			assert.Equal(t, tc.canEdit, CanDeleteRequest(tc.actor, tc.req))
		})
	}
}

func TestReviewIsAdminPendingOnly(t *testing.T) {
	assert.True(t, CanReviewRequest(admin, request(otherID, model.StatusPending)))
	assert.False(t, CanReviewRequest(admin, request(otherID, model.StatusApproved)))
	assert.False(t, CanReviewRequest(admin, request(otherID, model.StatusRejected)))

	assert.False(t, CanReviewRequest(staff, request(staffID, model.StatusPending)),
		"staff may not approve even their own request")
	assert.False(t, CanReviewRequest(nil, request(otherID, model.StatusPending)))
}

func TestPolicyIsTotal(t *testing.T) {
	assert.NotPanics(t, func() {
		CanViewRequest(nil, nil)
		CanEditRequest(staff, nil)
		CanViewProduct(nil, nil)
		CanEditProduct(admin, nil)
	})
	assert.False(t, CanViewRequest(nil, nil))
	assert.False(t, CanViewProduct(nil, nil))
}
