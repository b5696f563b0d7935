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
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid contracting request payload", http.StatusBadRequest)
)

// ContractingRequestHandler exposes the request lifecycle: submission,
// supply review, the dual supplier gate and the contract draft review.

type ContractingRequestHandler struct {
	usecase usecase.IRequestLifecycleUseCase
}

func NewContractingRequestHandler(uc usecase.IRequestLifecycleUseCase) *ContractingRequestHandler {
	return &ContractingRequestHandler{usecase: uc}
}

func (h *ContractingRequestHandler) Submit(c *gin.Context) {
	var payload request.SubmitContractingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContractingRequest(created))
}

func (h *ContractingRequestHandler) GetByID(c *gin.Context) {
	req, err := h.usecase.GetByID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractingRequest(req))
}

func (h *ContractingRequestHandler) ReviewBySupply(c *gin.Context) {
	var payload request.SupplyReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.ReviewBySupply(c.Request.Context(), c.Param("request_id"), payload.ReviewerID, payload.Approve, payload.Justification)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractingRequest(req))
}

func (h *ContractingRequestHandler) DecideSupplier(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.DecideSupplier(c.Request.Context(), c.Param("request_id"), payload.ActorID, entities.Decision(payload.Decision), payload.Justification)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractingRequest(req))
}

func (h *ContractingRequestHandler) AttachContractDraft(c *gin.Context) {
	var payload request.ContractDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.AttachContractDraft(c.Request.Context(), c.Param("request_id"), payload.ActorID, input)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractingRequest(req))
}

func (h *ContractingRequestHandler) ReviewContractDraft(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.ReviewContractDraft(c.Request.Context(), c.Param("request_id"), payload.ActorID, entities.Decision(payload.Decision), payload.Justification)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractingRequest(req))
}

func (h *ContractingRequestHandler) RenegotiateSchedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	start, end, err := payload.ResolveWindow()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.RenegotiateSchedule(c.Request.Context(), c.Param("request_id"), payload.ActorID, start, end)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractingRequest(req))
}

func mapLifecycleError(err error) *pkg.AppError {
	var transitionErr *entities.InvalidTransitionError
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidProjectCode),
		errors.Is(err, usecase.ErrInvalidBudget), errors.Is(err, usecase.ErrDraftNotAttached),
		errors.Is(err, entities.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingJustification):
		return pkg.NewDomainErrorSimple("MISSING_JUSTIFICATION", "Justification is required for rejections", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorized), errors.Is(err, entities.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not authorized for this step", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Contracting request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONFLICT", "Request was modified concurrently, retry", http.StatusConflict)
	case errors.As(err, &transitionErr), errors.Is(err, entities.ErrAlreadyFinalized):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Request is not in a state that accepts this operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
