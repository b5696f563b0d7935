package handlers

import (
	"errors"
	"net/http"

	request "gestao_terceiros/internal/adapter/http/dto/request"
	response "gestao_terceiros/internal/adapter/http/dto/response"
	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase"
	"gestao_terceiros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBulletinPayload = pkg.NewDomainErrorSimple("INVALID_BULLETIN_INPUT", "Invalid measurement bulletin payload", http.StatusBadRequest)
)

// BulletinHandler exposes the measurement bulletin: submission with
// artifact invalidation, the dual gate and the director payment
// release.

type BulletinHandler struct {
	usecase usecase.IBulletinUseCase
}

func NewBulletinHandler(uc usecase.IBulletinUseCase) *BulletinHandler {
	return &BulletinHandler{usecase: uc}
}

func (h *BulletinHandler) Submit(c *gin.Context) {
	var payload request.BulletinSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBulletinPayload.HTTPStatus, errInvalidBulletinPayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidBulletinPayload.HTTPStatus, errInvalidBulletinPayload.ToHTTPError())
		return
	}

	bm, err := h.usecase.Submit(c.Request.Context(), c.Param("request_id"), payload.ActorID, input)
	if err != nil {
		appErr := mapBulletinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulletin(bm))
}

func (h *BulletinHandler) GetByRequestID(c *gin.Context) {
	bm, err := h.usecase.GetByRequestID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapBulletinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulletin(bm))
}

func (h *BulletinHandler) Decide(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBulletinPayload.HTTPStatus, errInvalidBulletinPayload.ToHTTPError())
		return
	}

	bm, err := h.usecase.Decide(c.Request.Context(), c.Param("request_id"), payload.ActorID, entities.Decision(payload.Decision), payload.Justification)
	if err != nil {
		appErr := mapBulletinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulletin(bm))
}

func (h *BulletinHandler) ReleasePayment(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBulletinPayload.HTTPStatus, errInvalidBulletinPayload.ToHTTPError())
		return
	}

	bm, err := h.usecase.ReleasePayment(c.Request.Context(), c.Param("request_id"), payload.ActorID, entities.Decision(payload.Decision), payload.Justification)
	if err != nil {
		appErr := mapBulletinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulletin(bm))
}

func mapBulletinError(err error) *pkg.AppError {
	var transitionErr *entities.InvalidTransitionError
	switch {
	case errors.Is(err, usecase.ErrInvalidBulletinAmount), errors.Is(err, usecase.ErrMissingArtifact),
		errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, entities.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingJustification):
		return pkg.NewDomainErrorSimple("MISSING_JUSTIFICATION", "Justification is required for rejections", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorized), errors.Is(err, entities.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not authorized for this step", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Contracting request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBulletinNotFound):
		return pkg.NewDomainErrorSimple("BULLETIN_NOT_FOUND", "Measurement bulletin not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGateNotReady):
		return pkg.NewDomainErrorSimple("GATE_NOT_READY", "Payment release requires both approvals first", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONFLICT", "Bulletin was modified concurrently, retry", http.StatusConflict)
	case errors.As(err, &transitionErr), errors.Is(err, entities.ErrAlreadyFinalized):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Bulletin is not in a state that accepts this operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
