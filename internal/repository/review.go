package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace-backend/internal/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindAll(ctx context.Context, limit int, orderBy string) ([]*model.Review, error)
	FindByID(ctx context.Context, id string) (*model.Review, error)
	FindByRequestID(ctx context.Context, requestID string) (*model.Review, error)
	FindByProfessionalID(ctx context.Context, professionalID string) ([]*model.Review, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type reviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepoImpl{
		db: db,
	}
}

func (r *reviewRepoImpl) Create(ctx context.Context, review *model.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(review).Error
}

// allowed sort columns for FindAll; anything else is ignored
var reviewSortColumns = map[string]bool{
	"created_at": true,
	"rating":     true,
}

func (r *reviewRepoImpl) FindAll(ctx context.Context, limit int, orderBy string) ([]*model.Review, error) {
	query := r.db.WithContext(ctx).Model(&model.Review{})

	if reviewSortColumns[orderBy] {
		query = query.Order(orderBy + " DESC")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var reviews []*model.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepoImpl) FindByID(ctx context.Context, id string) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&review).Error

	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepoImpl) FindByRequestID(ctx context.Context, requestID string) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		First(&review).Error

	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepoImpl) FindByProfessionalID(ctx context.Context, professionalID string) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Find(&reviews).Error

	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepoImpl) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Review{}).
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

func (r *reviewRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Review{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
