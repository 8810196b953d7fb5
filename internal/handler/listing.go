package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"
)

type ListingHandler struct {
	listingService service.ListingService
}

func NewListingHandler(listingService service.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

func (h *ListingHandler) Create(c echo.Context) error {
	var req dto.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.listingService.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) GetAll(c echo.Context) error {
	listings, err := h.listingService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) GetByID(c echo.Context) error {
	listing, err := h.listingService.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) Update(c echo.Context) error {
	var req dto.UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.listingService.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) Delete(c echo.Context) error {
	if err := h.listingService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
