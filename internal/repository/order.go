package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace-backend/internal/model"
)

// OrderRepository persists imported orders. Partition-scoped methods take an
// explicit partition; the plain CRUD methods operate on the active partition
// only (cancelled orders are write-once archive data).
type OrderRepository interface {
	ExistsInPartition(ctx context.Context, partition model.OrderPartition, orderID string) (bool, error)
	Save(ctx context.Context, partition model.OrderPartition, order *model.ImportedOrder) error
	FindAll(ctx context.Context) ([]*model.ImportedOrder, error)
	FindByID(ctx context.Context, id string) (*model.ImportedOrder, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) ExistsInPartition(ctx context.Context, partition model.OrderPartition, orderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table(string(partition)).
		Where("order_id = ?", orderID).
		Count(&count).Error

	return count > 0, err
}

func (r *orderRepoImpl) Save(ctx context.Context, partition model.OrderPartition, order *model.ImportedOrder) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).
		Table(string(partition)).
		Create(order).Error
}

func (r *orderRepoImpl) FindAll(ctx context.Context) ([]*model.ImportedOrder, error) {
	var orders []*model.ImportedOrder
	err := r.db.WithContext(ctx).
		Table(string(model.PartitionActive)).
		Find(&orders).Error

	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id string) (*model.ImportedOrder, error) {
	var order model.ImportedOrder
	err := r.db.WithContext(ctx).
		Table(string(model.PartitionActive)).
		Where("id = ?", id).
		First(&order).Error

	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepoImpl) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Table(string(model.PartitionActive)).
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

func (r *orderRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Table(string(model.PartitionActive)).
		Where("id = ?", id).
		Delete(&model.ImportedOrder{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsNotFound reports whether err is the storage-level absence sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
