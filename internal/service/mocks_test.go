package service

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/NasmeenI/Inventory-pro/internal/model"
)

type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(product *model.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepo) FindAll() ([]model.Product, error) {
	args := m.Called()
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepo) FindBySKU(sku string) (*model.Product, error) {
	args := m.Called(sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepo) Update(product *model.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepo) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockProductRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepo) UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int, updatedBy uuid.UUID) error {
	return m.Called(tx, id, newStock, updatedBy).Error(0)
}

func (m *MockProductRepo) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepo) CountLowStock(threshold int) (int64, error) {
	args := m.Called(threshold)
	return args.Get(0).(int64), args.Error(1)
}

type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(req *model.TransactionRequest) error {
	return m.Called(req).Error(0)
}

func (m *MockRequestRepo) FindAll() ([]model.TransactionRequest, error) {
	args := m.Called()
	return args.Get(0).([]model.TransactionRequest), args.Error(1)
}

func (m *MockRequestRepo) FindByCreator(userID uuid.UUID) ([]model.TransactionRequest, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.TransactionRequest), args.Error(1)
}

func (m *MockRequestRepo) FindByID(id uuid.UUID) (*model.TransactionRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TransactionRequest), args.Error(1)
}

func (m *MockRequestRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.TransactionRequest, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TransactionRequest), args.Error(1)
}

func (m *MockRequestRepo) Save(tx *gorm.DB, req *model.TransactionRequest) error {
	return m.Called(tx, req).Error(0)
}

func (m *MockRequestRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return m.Called(tx, id).Error(0)
}

func (m *MockRequestRepo) CountByStatus(status model.RequestStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestRepo) FindRecent(limit int) ([]model.TransactionRequest, error) {
	args := m.Called(limit)
	return args.Get(0).([]model.TransactionRequest), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) Create(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) Update(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) UpdateTokenVersion(userID uuid.UUID, version string) error {
	return m.Called(userID, version).Error(0)
}

func (m *MockUserRepo) FindAll() ([]model.User, error) {
	args := m.Called()
	return args.Get(0).([]model.User), args.Error(1)
}
