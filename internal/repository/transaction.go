package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace-backend/internal/model"
)

type TransactionRepository interface {
	ExistsByRequestID(ctx context.Context, requestID string) (bool, error)
	Create(ctx context.Context, transaction *model.Transaction) error
	FindAll(ctx context.Context) ([]*model.Transaction, error)
	FindByID(ctx context.Context, id string) (*model.Transaction, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
}

type transactionRepoImpl struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepoImpl{
		db: db,
	}
}

func (r *transactionRepoImpl) ExistsByRequestID(ctx context.Context, requestID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("request_id = ?", requestID).
		Count(&count).Error

	return count > 0, err
}

func (r *transactionRepoImpl) Create(ctx context.Context, transaction *model.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *transactionRepoImpl) FindAll(ctx context.Context) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	err := r.db.WithContext(ctx).Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *transactionRepoImpl) FindByID(ctx context.Context, id string) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&transaction).Error

	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepoImpl) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
