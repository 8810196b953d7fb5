package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/client"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
)

// SpecialtyNames is the closed set of trade categories recognized when
// cross-referencing imported orders against stored categories. A category
// must match a line-item product AND carry one of these names to be picked.
var SpecialtyNames = map[string]bool{
	"Gasfitería":        true,
	"Electricidad":      true,
	"Cerrajería":        true,
	"Limpieza":          true,
	"Seguridad":         true,
	"Climatización":     true,
	"Carpintería":       true,
	"Albañilería":       true,
	"Pintura":           true,
	"Jardinería":        true,
	"Artefactos":        true,
	"Control de plagas": true,
}

type OrderService interface {
	// ImportByStatus pulls the status-filtered order feed and reconciles it
	// into local storage, importing each order at most once.
	ImportByStatus(ctx context.Context, status string) (*dto.ImportResult, error)
	ImportPaid(ctx context.Context) (*dto.ImportResult, error)
	FindAll(ctx context.Context) ([]*model.ImportedOrder, error)
	FindByID(ctx context.Context, id string) (*model.ImportedOrder, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*model.ImportedOrder, error)
	Delete(ctx context.Context, id string) error
}

type orderServiceImpl struct {
	storefront   client.StorefrontClient
	orderRepo    repository.OrderRepository
	categoryRepo repository.CategoryRepository
	logger       *zap.SugaredLogger
	now          func() time.Time
}

func NewOrderService(
	storefront client.StorefrontClient,
	orderRepo repository.OrderRepository,
	categoryRepo repository.CategoryRepository,
	logger *zap.SugaredLogger,
) OrderService {
	return &orderServiceImpl{
		storefront:   storefront,
		orderRepo:    orderRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *orderServiceImpl) ImportPaid(ctx context.Context) (*dto.ImportResult, error) {
	saved, err := s.importStatus(ctx, "paid")
	if err != nil {
		return nil, err
	}
	return &dto.ImportResult{
		Message:     fmt.Sprintf("se obtuvieron y almacenaron exitosamente %d pedidos", len(saved)),
		SavedOrders: saved,
	}, nil
}

func (s *orderServiceImpl) ImportByStatus(ctx context.Context, status string) (*dto.ImportResult, error) {
	saved, err := s.importStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return &dto.ImportResult{
		Message:     fmt.Sprintf("se obtuvieron y almacenaron exitosamente %d pedidos con estado %s", len(saved), status),
		SavedOrders: saved,
	}, nil
}

func (s *orderServiceImpl) importStatus(ctx context.Context, status string) ([]dto.SavedOrder, error) {
	s.logger.Infow("fetching orders from storefront", "status", status)

	elements, err := s.storefront.FetchOrdersByStatus(ctx, status)
	if err != nil {
		s.logger.Errorw("storefront fetch failed", "status", status, "error", err)
		return nil, err
	}

	s.logger.Infow("orders retrieved", "status", status, "count", len(elements))

	saved := make([]dto.SavedOrder, 0, len(elements))
	for _, raw := range elements {
		entry, err := s.reconcileOne(ctx, raw)
		if err != nil {
			// One bad order never aborts the batch.
			s.logger.Errorw("order import failed, skipping", "error", err)
			continue
		}
		if entry != nil {
			saved = append(saved, *entry)
		}
	}
	return saved, nil
}

// reconcileOne imports a single feed element. A nil entry with nil error
// means the order was deliberately skipped (no id, or already imported).
func (s *orderServiceImpl) reconcileOne(ctx context.Context, raw []byte) (*dto.SavedOrder, error) {
	order, payload, err := client.UnwrapOrder(raw)
	if err != nil {
		return nil, err
	}

	orderID := order.ID.String()
	if orderID == "" {
		s.logger.Warnw("order without id, skipping", "payload", string(payload))
		return nil, nil
	}

	partition := model.PartitionForStatus(order.Status)

	exists, err := s.orderRepo.ExistsInPartition(ctx, partition, orderID)
	if err != nil {
		return nil, fmt.Errorf("check existing order %s: %w", orderID, err)
	}
	if exists {
		s.logger.Infow("order already imported, skipping", "orderId", orderID, "partition", partition)
		return nil, nil
	}

	category, err := s.resolveCategory(ctx, order)
	if err != nil {
		// Best effort only; an unresolved category never blocks the import.
		s.logger.Warnw("category resolution failed", "orderId", orderID, "error", err)
		category = nil
	}

	placedAt, err := parseStorefrontTime(order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("order %s: parse created_at %q: %w", orderID, order.CreatedAt, err)
	}

	products := []byte("[]")
	if order.Products != nil {
		if encoded, err := json.Marshal(order.Products); err == nil {
			products = encoded
		}
	}

	record := &model.ImportedOrder{
		OrderID:       orderID,
		Status:        order.Status,
		TotalAmount:   order.Total,
		CustomerEmail: order.Customer.Email,
		CustomerName:  order.Customer.Fullname,
		CustomerPhone: order.Customer.Phone,
		Products:      products,
		PaymentMethod: order.PaymentMethod,
		PlacedAt:      placedAt.UTC(),
		ImportedAt:    s.now().UTC(),
		RawPayload:    payload,
		Category:      category,
	}

	if err := s.orderRepo.Save(ctx, partition, record); err != nil {
		return nil, fmt.Errorf("save order %s: %w", orderID, err)
	}

	s.logger.Infow("order imported", "orderId", orderID, "partition", partition)

	return &dto.SavedOrder{
		ID:      record.ID,
		OrderID: record.OrderID,
		Status:  record.Status,
	}, nil
}

// resolveCategory cross-references the first line item against the stored
// category list. Both conditions must hold: the category references the
// product AND its name is a recognized specialty. Nil means unresolved.
func (s *orderServiceImpl) resolveCategory(ctx context.Context, order *client.StorefrontOrder) (*string, error) {
	if len(order.Products) == 0 {
		return nil, nil
	}
	productID, err := order.Products[0].ID.Int64()
	if err != nil || productID == 0 {
		return nil, nil
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	for _, category := range categories {
		if !SpecialtyNames[category.Name] {
			continue
		}
		for _, ref := range category.Products {
			if ref.ID == productID {
				name := category.Name
				return &name, nil
			}
		}
	}
	return nil, nil
}

func (s *orderServiceImpl) FindAll(ctx context.Context) ([]*model.ImportedOrder, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *orderServiceImpl) FindByID(ctx context.Context, id string) (*model.ImportedOrder, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("pedido con ID %s no encontrado", id))
		}
		return nil, err
	}
	return order, nil
}

func (s *orderServiceImpl) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.ImportedOrder, error) {
	if err := s.orderRepo.Update(ctx, id, updates); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("pedido con ID %s no encontrado", id))
		}
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *orderServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperr.NotFound(fmt.Sprintf("pedido con ID %s no encontrado", id))
		}
		return err
	}
	return nil
}

// storefront timestamps show up in a couple of shapes depending on the
// provider endpoint version
var storefrontTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
}

func parseStorefrontTime(value string) (time.Time, error) {
	for _, layout := range storefrontTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
