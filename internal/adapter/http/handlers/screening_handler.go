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
	errInvalidScreeningPayload = pkg.NewDomainErrorSimple("INVALID_SCREENING_INPUT", "Invalid screening payload", http.StatusBadRequest)
)

// ScreeningHandler exposes candidate screening, selection and proposal
// renegotiation for a contracting request.

type ScreeningHandler struct {
	usecase usecase.IScreeningUseCase
}

func NewScreeningHandler(uc usecase.IScreeningUseCase) *ScreeningHandler {
	return &ScreeningHandler{usecase: uc}
}

func (h *ScreeningHandler) Screen(c *gin.Context) {
	var payload request.ScreenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScreeningPayload.HTTPStatus, errInvalidScreeningPayload.ToHTTPError())
		return
	}

	candidates, err := payload.ToInputs()
	if err != nil {
		c.JSON(errInvalidScreeningPayload.HTTPStatus, errInvalidScreeningPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.Screen(c.Request.Context(), c.Param("request_id"), payload.ActorID, candidates)
	if err != nil {
		appErr := mapScreeningError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractingRequest(req))
}

func (h *ScreeningHandler) DeclareNoCandidate(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScreeningPayload.HTTPStatus, errInvalidScreeningPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.DeclareNoCandidate(c.Request.Context(), c.Param("request_id"), payload.ActorID)
	if err != nil {
		appErr := mapScreeningError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractingRequest(req))
}

func (h *ScreeningHandler) SelectSupplier(c *gin.Context) {
	var payload request.SelectSupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScreeningPayload.HTTPStatus, errInvalidScreeningPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.SelectSupplier(c.Request.Context(), c.Param("request_id"), payload.ActorID, payload.SupplierID, payload.Justification)
	if err != nil {
		appErr := mapScreeningError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractingRequest(req))
}

func (h *ScreeningHandler) ListProposals(c *gin.Context) {
	proposals, err := h.usecase.ListProposals(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapScreeningError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

func (h *ScreeningHandler) RenegotiateValue(c *gin.Context) {
	var payload request.RenegotiateValueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScreeningPayload.HTTPStatus, errInvalidScreeningPayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidScreeningPayload.HTTPStatus, errInvalidScreeningPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.RenegotiateValue(c.Request.Context(), c.Param("request_id"), payload.ActorID, amount)
	if err != nil {
		appErr := mapScreeningError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapScreeningError(err error) *pkg.AppError {
	var transitionErr *entities.InvalidTransitionError
	switch {
	case errors.Is(err, usecase.ErrEmptyCandidateSet), errors.Is(err, usecase.ErrInvalidBidAmount),
		errors.Is(err, usecase.ErrInvalidRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingJustification):
		return pkg.NewDomainErrorSimple("MISSING_JUSTIFICATION", "Selection requires a justification", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownSupplier):
		return pkg.NewDomainErrorSimple("UNKNOWN_SUPPLIER", "Supplier is not in the catalog", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNotAmongCandidates):
		return pkg.NewDomainErrorSimple("NOT_SCREENED", "Supplier was not screened in", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not authorized for this step", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Contracting request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONFLICT", "Request was modified concurrently, retry", http.StatusConflict)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Request is not in a state that accepts this operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
