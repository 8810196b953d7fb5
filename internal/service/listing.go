package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
)

// ListingService manages the services professionals offer on the
// marketplace.
type ListingService interface {
	Create(ctx context.Context, req *dto.CreateListingRequest) (*model.ServiceListing, error)
	FindAll(ctx context.Context) ([]*model.ServiceListing, error)
	FindByID(ctx context.Context, id string) (*model.ServiceListing, error)
	Update(ctx context.Context, id string, req *dto.UpdateListingRequest) (*model.ServiceListing, error)
	Delete(ctx context.Context, id string) error
}

type listingServiceImpl struct {
	listingRepo repository.ListingRepository
}

func NewListingService(listingRepo repository.ListingRepository) ListingService {
	return &listingServiceImpl{
		listingRepo: listingRepo,
	}
}

func (s *listingServiceImpl) Create(ctx context.Context, req *dto.CreateListingRequest) (*model.ServiceListing, error) {
	now := time.Now().UTC()
	listing := &model.ServiceListing{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Duration:       req.Duration,
		Category:       req.Category,
		IsActive:       req.IsActive,
		Certifications: req.Certifications,
		Portfolio:      req.Portfolio,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	return listing, nil
}

func (s *listingServiceImpl) FindAll(ctx context.Context) ([]*model.ServiceListing, error) {
	return s.listingRepo.FindAll(ctx)
}

func (s *listingServiceImpl) FindByID(ctx context.Context, id string) (*model.ServiceListing, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("servicio con ID %s no encontrado", id))
		}
		return nil, err
	}
	return listing, nil
}

func (s *listingServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateListingRequest) (*model.ServiceListing, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Certifications != nil {
		updates["certifications"] = *req.Certifications
	}
	if req.Portfolio != nil {
		updates["portfolio"] = *req.Portfolio
	}

	if err := s.listingRepo.Update(ctx, id, updates); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("servicio con ID %s no encontrado", id))
		}
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *listingServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.listingRepo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperr.NotFound(fmt.Sprintf("servicio con ID %s no encontrado", id))
		}
		return err
	}
	return nil
}
