package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
)

type TransactionService interface {
	Create(ctx context.Context, req *dto.CreateTransactionRequest) (*model.Transaction, error)
	FindAll(ctx context.Context) ([]*model.Transaction, error)
	FindByID(ctx context.Context, id string) (*model.Transaction, error)
	MarkCompleted(ctx context.Context, id string) (*model.Transaction, error)
	MarkRefunded(ctx context.Context, id string) (*model.Transaction, error)
	Update(ctx context.Context, id string, req *dto.UpdateTransactionRequest) (*model.Transaction, error)
}

type transactionServiceImpl struct {
	transactionRepo repository.TransactionRepository
}

func NewTransactionService(transactionRepo repository.TransactionRepository) TransactionService {
	return &transactionServiceImpl{
		transactionRepo: transactionRepo,
	}
}

// TotalAmount computes professional amount plus the platform fee, where the
// fee is a percentage of the professional amount. Decimal arithmetic keeps
// cents exact.
func TotalAmount(professionalAmount, platformFeePercent float64) float64 {
	amount := decimal.NewFromFloat(professionalAmount)
	fee := amount.Mul(decimal.NewFromFloat(platformFeePercent)).Div(decimal.NewFromInt(100))
	total, _ := amount.Add(fee).Round(2).Float64()
	return total
}

func (s *transactionServiceImpl) Create(ctx context.Context, req *dto.CreateTransactionRequest) (*model.Transaction, error) {
	exists, err := s.transactionRepo.ExistsByRequestID(ctx, req.RequestID)
	if err != nil {
		return nil, fmt.Errorf("check existing transaction: %w", err)
	}
	if exists {
		return nil, apperr.Conflict(fmt.Sprintf("ya existe una transacción con el requestId: %s", req.RequestID))
	}

	paymentDate := req.PaymentDate
	if paymentDate == "" {
		paymentDate = time.Now().UTC().Format(time.RFC3339)
	}

	transaction := &model.Transaction{
		RequestID:          req.RequestID,
		Amount:             TotalAmount(req.ProfessionalAmount, req.PlatformFee),
		PaymentDate:        paymentDate,
		PaymentStatus:      model.TransactionStatusPending,
		PaymentMethod:      req.PaymentMethod,
		PlatformFee:        req.PlatformFee,
		ProfessionalAmount: req.ProfessionalAmount,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return transaction, nil
}

func (s *transactionServiceImpl) FindAll(ctx context.Context) ([]*model.Transaction, error) {
	return s.transactionRepo.FindAll(ctx)
}

func (s *transactionServiceImpl) FindByID(ctx context.Context, id string) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("transacción con ID %s no encontrada", id))
		}
		return nil, err
	}
	return transaction, nil
}

func (s *transactionServiceImpl) MarkCompleted(ctx context.Context, id string) (*model.Transaction, error) {
	transaction, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch transaction.PaymentStatus {
	case model.TransactionStatusCompleted:
		return nil, apperr.Conflict("la transacción ya está completada")
	case model.TransactionStatusRefunded:
		return nil, apperr.Conflict("la transacción ya ha sido reembolsada y no se puede completar")
	}

	if err := s.transactionRepo.Update(ctx, id, map[string]interface{}{
		"payment_status": model.TransactionStatusCompleted,
	}); err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *transactionServiceImpl) MarkRefunded(ctx context.Context, id string) (*model.Transaction, error) {
	transaction, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch transaction.PaymentStatus {
	case model.TransactionStatusRefunded:
		return nil, apperr.Conflict("la transacción ya ha sido reembolsada")
	case model.TransactionStatusPending:
		return nil, apperr.Conflict("la transacción debe estar completada para ser reembolsada")
	}

	if err := s.transactionRepo.Update(ctx, id, map[string]interface{}{
		"payment_status": model.TransactionStatusRefunded,
	}); err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *transactionServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateTransactionRequest) (*model.Transaction, error) {
	updates := map[string]interface{}{}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.PaymentDate != nil {
		updates["payment_date"] = *req.PaymentDate
	}

	if len(updates) > 0 {
		if err := s.transactionRepo.Update(ctx, id, updates); err != nil {
			if repository.IsNotFound(err) {
				return nil, apperr.NotFound(fmt.Sprintf("transacción con ID %s no encontrada", id))
			}
			return nil, err
		}
	}
	return s.FindByID(ctx, id)
}
