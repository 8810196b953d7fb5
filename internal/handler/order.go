package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/service"
)

var importableStatuses = map[string]bool{
	"paid":      true,
	"pending":   true,
	"cancelled": true,
}

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// ImportPaid triggers reconciliation of the paid-order feed.
func (h *OrderHandler) ImportPaid(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.orderService.ImportPaid(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ImportByStatus triggers reconciliation for an arbitrary storefront status.
func (h *OrderHandler) ImportByStatus(c echo.Context) error {
	ctx := c.Request().Context()

	status := c.Param("estado")
	if !importableStatuses[status] {
		return apperr.Validation("estado inválido: debe ser paid, pending o cancelled")
	}

	result, err := h.orderService.ImportByStatus(ctx, status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) GetAll(c echo.Context) error {
	orders, err := h.orderService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetByID(c echo.Context) error {
	order, err := h.orderService.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Update(c echo.Context) error {
	var updates map[string]interface{}
	if err := c.Bind(&updates); err != nil {
		return apperr.Validation("cuerpo de la petición inválido")
	}

	order, err := h.orderService.Update(c.Request().Context(), c.Param("id"), updates)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.orderService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
