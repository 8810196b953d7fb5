package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/middleware"
	"marketplace-backend/internal/service"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

func (h *EventHandler) Create(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims, ok := middleware.IdentityFromContext(c)
	if !ok {
		return apperr.Unauthenticated("missing credential")
	}

	event, err := h.eventService.Create(c.Request().Context(), &req, claims.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) GetAll(c echo.Context) error {
	events, err := h.eventService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c echo.Context) error {
	event, err := h.eventService.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Update(c echo.Context) error {
	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("cuerpo de la petición inválido")
	}

	event, err := h.eventService.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Cancel(c echo.Context) error {
	event, err := h.eventService.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.eventService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
