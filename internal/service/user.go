package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	exists, err := s.userRepo.Exists(ctx, req.UID)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, apperr.Conflict(fmt.Sprintf("el usuario con UID %s ya existe", req.UID))
	}

	user := &model.User{
		ID:             req.UID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Rut:            req.Rut,
		Specialties:    req.Specialties,
		Commune:        req.Commune,
		Description:    req.Description,
		ProfilePicture: req.ProfilePicture,
		Status:         req.Status,
		ValidUser:      req.ValidUser,
		Deleted:        req.Delete,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userServiceImpl) FindAll(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userServiceImpl) FindByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("usuario con UID %s no encontrado", id))
		}
		return nil, err
	}
	return user, nil
}

func (s *userServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*model.User, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Rut != nil {
		updates["rut"] = *req.Rut
	}
	if req.Specialties != nil {
		// map-based updates bypass the gorm serializer
		if encoded, err := json.Marshal(req.Specialties); err == nil {
			updates["specialties"] = string(encoded)
		}
	}
	if req.Commune != nil {
		updates["commune"] = *req.Commune
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ProfilePicture != nil {
		updates["profile_picture"] = *req.ProfilePicture
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ValidUser != nil {
		updates["valid_user"] = *req.ValidUser
	}
	if req.Delete != nil {
		updates["deleted"] = *req.Delete
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(ctx, id, updates); err != nil {
			if repository.IsNotFound(err) {
				return nil, apperr.NotFound(fmt.Sprintf("usuario con UID %s no encontrado", id))
			}
			return nil, err
		}
	}
	return s.FindByID(ctx, id)
}

func (s *userServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperr.NotFound(fmt.Sprintf("usuario con UID %s no encontrado", id))
		}
		return err
	}
	return nil
}
