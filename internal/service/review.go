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

type ReviewService interface {
	Create(ctx context.Context, req *dto.CreateReviewRequest) (*model.Review, error)
	FindAll(ctx context.Context, limit int, orderBy string) ([]*model.Review, error)
	FindByID(ctx context.Context, id string) (*model.Review, error)
	FindByRequestID(ctx context.Context, requestID string) (*model.Review, error)
	FindByProfessionalID(ctx context.Context, professionalID string) ([]*model.Review, error)
	Update(ctx context.Context, id string, req *dto.UpdateReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, id string) error
}

type reviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewServiceImpl{
		reviewRepo: reviewRepo,
	}
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperr.Validation("la calificación debe ser un número entero entre 1 y 5")
	}
	return nil
}

func (s *reviewServiceImpl) Create(ctx context.Context, req *dto.CreateReviewRequest) (*model.Review, error) {
	existing, err := s.reviewRepo.FindByRequestID(ctx, req.RequestID)
	if err != nil && !repository.IsNotFound(err) {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("ya existe una reseña para este servicio")
	}

	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	review := &model.Review{
		RequestID:      req.RequestID,
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		Rating:         req.Rating,
		Comment:        req.Comment,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *reviewServiceImpl) FindAll(ctx context.Context, limit int, orderBy string) ([]*model.Review, error) {
	return s.reviewRepo.FindAll(ctx, limit, orderBy)
}

func (s *reviewServiceImpl) FindByID(ctx context.Context, id string) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("reseña con ID %s no encontrada", id))
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewServiceImpl) FindByRequestID(ctx context.Context, requestID string) (*model.Review, error) {
	review, err := s.reviewRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("reseña para el requestId %s no encontrada", requestID))
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewServiceImpl) FindByProfessionalID(ctx context.Context, professionalID string) ([]*model.Review, error) {
	return s.reviewRepo.FindByProfessionalID(ctx, professionalID)
}

func (s *reviewServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateReviewRequest) (*model.Review, error) {
	updates := map[string]interface{}{}
	if req.Rating != nil {
		if err := validateRating(*req.Rating); err != nil {
			return nil, err
		}
		updates["rating"] = *req.Rating
	}
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}

	if len(updates) > 0 {
		if err := s.reviewRepo.Update(ctx, id, updates); err != nil {
			if repository.IsNotFound(err) {
				return nil, apperr.NotFound(fmt.Sprintf("reseña con ID %s no encontrada", id))
			}
			return nil, err
		}
	}
	return s.FindByID(ctx, id)
}

func (s *reviewServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperr.NotFound(fmt.Sprintf("reseña con ID %s no encontrada", id))
		}
		return err
	}
	return nil
}
