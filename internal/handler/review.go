package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var req dto.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.reviewService.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) GetAll(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return apperr.Validation("limit inválido")
		}
		limit = parsed
	}

	reviews, err := h.reviewService.FindAll(c.Request().Context(), limit, c.QueryParam("orderBy"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetByID(c echo.Context) error {
	review, err := h.reviewService.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) GetByProfessional(c echo.Context) error {
	reviews, err := h.reviewService.FindByProfessionalID(c.Request().Context(), c.Param("professionalId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetByRequest(c echo.Context) error {
	review, err := h.reviewService.FindByRequestID(c.Request().Context(), c.Param("requestId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Update(c echo.Context) error {
	var req dto.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("cuerpo de la petición inválido")
	}

	review, err := h.reviewService.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	if err := h.reviewService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
