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
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
)

// ContractHandler exposes materialized contracts. Contracts are never
// created directly over HTTP; they materialize from approved requests.

type ContractHandler struct {
	usecase usecase.IMaterializerUseCase
}

func NewContractHandler(uc usecase.IMaterializerUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func (h *ContractHandler) GetByID(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("contract_id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) GetByRequestID(c *gin.Context) {
	contract, err := h.usecase.GetByRequestID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) SetStatus(c *gin.Context) {
	var payload request.ContractStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.SetStatus(c.Request.Context(), c.Param("contract_id"), payload.ActorID, entities.ContractStatus(payload.Status))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidContractStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not authorized for this step", http.StatusForbidden)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Contracting request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaterializationNotReady):
		return pkg.NewDomainErrorSimple("NOT_READY", "Contract preconditions not yet met", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
