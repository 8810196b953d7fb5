package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"
)

type TransactionHandler struct {
	transactionService service.TransactionService
}

func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Create(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, transaction)
}

func (h *TransactionHandler) GetAll(c echo.Context) error {
	transactions, err := h.transactionService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) GetByID(c echo.Context) error {
	transaction, err := h.transactionService.FindByID(c.Request().Context(), c.Param("transactionId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) Complete(c echo.Context) error {
	transaction, err := h.transactionService.MarkCompleted(c.Request().Context(), c.Param("transactionId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) Refund(c echo.Context) error {
	transaction, err := h.transactionService.MarkRefunded(c.Request().Context(), c.Param("transactionId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) Update(c echo.Context) error {
	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("cuerpo de la petición inválido")
	}

	transaction, err := h.transactionService.Update(c.Request().Context(), c.Param("transactionId"), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transaction)
}
