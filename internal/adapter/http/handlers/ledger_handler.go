package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	request "gestao_terceiros/internal/adapter/http/dto/request"
	response "gestao_terceiros/internal/adapter/http/dto/response"
	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase"
	"gestao_terceiros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEventPayload = pkg.NewDomainErrorSimple("INVALID_EVENT_INPUT", "Invalid event payload", http.StatusBadRequest)
)

// LedgerHandler exposes the event ledger, the payment calendar and the
// reports computed over them.

type LedgerHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewLedgerHandler(uc usecase.ILedgerUseCase) *LedgerHandler {
	return &LedgerHandler{usecase: uc}
}

func (h *LedgerHandler) CreateEvent(c *gin.Context) {
	var payload request.EventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.CreateEvent(c.Request.Context(), input)
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEvent(event))
}

func (h *LedgerHandler) GetEvent(c *gin.Context) {
	event, err := h.usecase.GetEvent(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvent(event))
}

func (h *LedgerHandler) UpdateEvent(c *gin.Context) {
	var payload request.EventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.UpdateEvent(c.Request.Context(), c.Param("event_id"), input)
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvent(event))
}

func (h *LedgerHandler) DeleteEvent(c *gin.Context) {
	if err := h.usecase.DeleteEvent(c.Request.Context(), c.Param("event_id")); err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LedgerHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.ListEvents(c.Request.Context(), c.Query("request_id"), c.Query("contract_id"), c.Query("supplier_id"))
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvents(events))
}

func (h *LedgerHandler) RecordForecast(c *gin.Context) {
	h.patchMoneyDate(c, h.usecase.RecordForecast)
}

func (h *LedgerHandler) RecordActual(c *gin.Context) {
	h.patchMoneyDate(c, h.usecase.RecordActual)
}

func (h *LedgerHandler) patchMoneyDate(
	c *gin.Context,
	updater func(ctx context.Context, id string, amount float64, paymentDate time.Time) (entities.Event, error),
) {
	var payload request.MoneyDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	amount, date, err := payload.Resolve()
	if err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	event, err := updater(c.Request.Context(), c.Param("event_id"), amount, date)
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvent(event))
}

func (h *LedgerHandler) RegisterDelivery(c *gin.Context) {
	var payload request.DeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.RegisterDelivery(c.Request.Context(), c.Param("event_id"), input)
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvent(event))
}

func (h *LedgerHandler) AddCalendarEntry(c *gin.Context) {
	var payload request.CalendarEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	date, err := payload.ResolveDate()
	if err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.AddCalendarEntry(c.Request.Context(), date)
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *LedgerHandler) ListCalendar(c *gin.Context) {
	entries, err := h.usecase.ListCalendar(c.Request.Context())
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *LedgerHandler) Aggregate(c *gin.Context) {
	dimension := entities.AggregateDimension(c.DefaultQuery("dimension", string(entities.DimensionNone)))

	report, err := h.usecase.Aggregate(c.Request.Context(), dimension)
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *LedgerHandler) ForecastOutlook(c *gin.Context) {
	limit, err := request.ParseDate(c.Query("until"))
	if err != nil || limit.IsZero() {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	lines, err := h.usecase.ForecastOutlook(c.Request.Context(), limit)
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, lines)
}

func (h *LedgerHandler) Indicators(c *gin.Context) {
	indicators, err := h.usecase.Indicators(c.Request.Context(), c.Param("supplier_id"))
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, indicators)
}

func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEventAmount), errors.Is(err, usecase.ErrEventWithoutOwner),
		errors.Is(err, usecase.ErrInvalidCalendarDate), errors.Is(err, usecase.ErrInvalidDimension),
		errors.Is(err, entities.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEventNotDelivered):
		return pkg.NewDomainErrorSimple("NOT_DELIVERED", "Event has no registered delivery", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
