package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/client"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
)

type CategoryService interface {
	// Sync pulls the storefront category feed and upserts it locally,
	// keyed by the provider category id.
	Sync(ctx context.Context) (*dto.CategorySyncResult, error)
	FindAll(ctx context.Context) ([]*model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
}

type categoryServiceImpl struct {
	storefront   client.StorefrontClient
	categoryRepo repository.CategoryRepository
	logger       *zap.SugaredLogger
}

func NewCategoryService(
	storefront client.StorefrontClient,
	categoryRepo repository.CategoryRepository,
	logger *zap.SugaredLogger,
) CategoryService {
	return &categoryServiceImpl{
		storefront:   storefront,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *categoryServiceImpl) Sync(ctx context.Context) (*dto.CategorySyncResult, error) {
	s.logger.Info("fetching categories from storefront")

	elements, err := s.storefront.FetchCategories(ctx)
	if err != nil {
		s.logger.Errorw("category fetch failed", "error", err)
		return nil, err
	}

	stats := dto.CategorySyncStats{Total: len(elements)}
	for _, raw := range elements {
		created, err := s.upsertOne(ctx, raw)
		if err != nil {
			s.logger.Errorw("category sync failed, skipping", "error", err)
			continue
		}
		if created == nil {
			continue
		}
		if *created {
			stats.New++
		} else {
			stats.Updated++
		}
	}

	return &dto.CategorySyncResult{
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   fmt.Sprintf("se procesaron exitosamente %d categorías", stats.Total),
		Stats:     stats,
	}, nil
}

// upsertOne stores a single category element. created is nil when the
// element was skipped, true on insert and false on update.
func (s *categoryServiceImpl) upsertOne(ctx context.Context, raw []byte) (*bool, error) {
	fetched, err := client.UnwrapCategory(raw)
	if err != nil {
		return nil, err
	}

	providerID := fetched.ID.String()
	if providerID == "" {
		s.logger.Warnw("category without id, skipping")
		return nil, nil
	}

	products := make([]model.CategoryProductRef, 0, len(fetched.Products))
	for _, p := range fetched.Products {
		products = append(products, model.CategoryProductRef{ID: p.ID, Name: p.Name})
	}

	var parentID *string
	if pid := fetched.ParentID.String(); pid != "" {
		parentID = &pid
	}

	category := &model.Category{
		ProviderID:  providerID,
		Name:        fetched.Name,
		Permalink:   fetched.Permalink,
		ParentID:    parentID,
		Description: fetched.Description,
		Image:       fetched.Image,
		Products:    products,
	}

	existing, err := s.categoryRepo.FindByProviderID(ctx, providerID)
	switch {
	case err == nil:
		if err := s.categoryRepo.Update(ctx, existing.ID, category); err != nil {
			return nil, fmt.Errorf("update category %s: %w", providerID, err)
		}
		created := false
		return &created, nil
	case repository.IsNotFound(err):
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("create category %s: %w", providerID, err)
		}
		created := true
		return &created, nil
	default:
		return nil, fmt.Errorf("look up category %s: %w", providerID, err)
	}
}

func (s *categoryServiceImpl) FindAll(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *categoryServiceImpl) FindByID(ctx context.Context, id string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("categoría con ID %s no encontrada", id))
		}
		return nil, err
	}
	return category, nil
}
