package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
)

// WebhookService stores storefront order callbacks as received.
type WebhookService interface {
	ProcessOrderNotification(ctx context.Context, req *dto.OrderNotificationRequest) (string, error)
}

type webhookServiceImpl struct {
	notificationRepo repository.NotificationRepository
	logger           *zap.SugaredLogger
}

func NewWebhookService(notificationRepo repository.NotificationRepository, logger *zap.SugaredLogger) WebhookService {
	return &webhookServiceImpl{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (s *webhookServiceImpl) ProcessOrderNotification(ctx context.Context, req *dto.OrderNotificationRequest) (string, error) {
	notification := &model.OrderNotification{
		OrderID:        req.OrderID,
		Status:         req.Status,
		TotalAmount:    req.TotalAmount,
		AdditionalData: req.AdditionalData,
		ReceivedAt:     time.Now().UTC(),
	}

	s.logger.Infow("processing storefront order notification", "orderId", req.OrderID, "status", req.Status)

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return "", fmt.Errorf("store order notification: %w", err)
	}
	return "la data de la orden se guardó correctamente", nil
}
