package handlers

import (
	"errors"
	"net/http"

	request "gestao_terceiros/internal/adapter/http/dto/request"
	response "gestao_terceiros/internal/adapter/http/dto/response"
	"gestao_terceiros/internal/usecase"
	"gestao_terceiros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSupplierPayload = pkg.NewDomainErrorSimple("INVALID_SUPPLIER_INPUT", "Invalid supplier payload", http.StatusBadRequest)
)

// SupplierHandler exposes the third-party company catalog.

type SupplierHandler struct {
	usecase usecase.ISupplierUseCase
}

func NewSupplierHandler(uc usecase.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

func (h *SupplierHandler) Register(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplierPayload.HTTPStatus, errInvalidSupplierPayload.ToHTTPError())
		return
	}

	supplier, err := h.usecase.Register(c.Request.Context(), payload.ActorID, payload.ToEntity())
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSupplier(supplier))
}

func (h *SupplierHandler) GetByID(c *gin.Context) {
	supplier, err := h.usecase.GetByID(c.Request.Context(), c.Param("supplier_id"))
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupplier(supplier))
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSuppliers(suppliers))
}

func mapSupplierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSupplierName), errors.Is(err, usecase.ErrInvalidSupplierTax):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not authorized for this step", http.StatusForbidden)
	case errors.Is(err, usecase.ErrUnknownSupplier):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_FOUND", "Supplier not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
