package repository

import (
	"github.com/NasmeenI/Inventory-pro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(req *model.TransactionRequest) error
	FindAll() ([]model.TransactionRequest, error)
	FindByCreator(userID uuid.UUID) ([]model.TransactionRequest, error)
	FindByID(id uuid.UUID) (*model.TransactionRequest, error)
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.TransactionRequest, error)
	Save(tx *gorm.DB, req *model.TransactionRequest) error
	Delete(tx *gorm.DB, id uuid.UUID) error
	CountByStatus(status model.RequestStatus) (int64, error)
	FindRecent(limit int) ([]model.TransactionRequest, error)
}

type requestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) RequestRepository {
	return &requestRepo{db}
}

func (r *requestRepo) Create(req *model.TransactionRequest) error {
	return r.db.Create(req).Error
}

func (r *requestRepo) FindAll() ([]model.TransactionRequest, error) {
	var requests []model.TransactionRequest
	err := r.db.Preload("Product").Preload("CreatedByUser").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepo) FindByCreator(userID uuid.UUID) ([]model.TransactionRequest, error) {
	var requests []model.TransactionRequest
	err := r.db.Preload("Product").Preload("CreatedByUser").
		Where("created_by_user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepo) FindByID(id uuid.UUID) (*model.TransactionRequest, error) {
	var req model.TransactionRequest
	err := r.db.Preload("Product").Preload("CreatedByUser").
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindByIDForUpdate loads the row under a pessimistic lock; callers must be
// inside a transaction.
func (r *requestRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.TransactionRequest, error) {
	var req model.TransactionRequest
	err := tx.Set("gorm:query_option", "FOR UPDATE").First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Save menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi
func (r *requestRepo) Save(tx *gorm.DB, req *model.TransactionRequest) error {
	return tx.Save(req).Error
}

func (r *requestRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.TransactionRequest{}, "id = ?", id).Error
}

func (r *requestRepo) CountByStatus(status model.RequestStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.TransactionRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *requestRepo) FindRecent(limit int) ([]model.TransactionRequest, error) {
	var requests []model.TransactionRequest
	err := r.db.Preload("Product").Preload("CreatedByUser").
		Order("created_at DESC").
		Limit(limit).
		Find(&requests).Error
	return requests, err
}
