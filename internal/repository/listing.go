package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace-backend/internal/model"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *model.ServiceListing) error
	FindAll(ctx context.Context) ([]*model.ServiceListing, error)
	FindByID(ctx context.Context, id string) (*model.ServiceListing, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type listingRepoImpl struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepoImpl{
		db: db,
	}
}

func (r *listingRepoImpl) Create(ctx context.Context, listing *model.ServiceListing) error {
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepoImpl) FindAll(ctx context.Context) ([]*model.ServiceListing, error) {
	var listings []*model.ServiceListing
	err := r.db.WithContext(ctx).Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepoImpl) FindByID(ctx context.Context, id string) (*model.ServiceListing, error) {
	var listing model.ServiceListing
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listing).Error

	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepoImpl) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.ServiceListing{}).
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

func (r *listingRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceListing{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
