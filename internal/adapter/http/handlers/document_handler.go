package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"gestao_terceiros/internal/usecase/interfaces"
	"gestao_terceiros/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidDocumentUpload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_UPLOAD", "A file is required under the 'file' form field", http.StatusBadRequest)
	errMissingDocumentRef    = pkg.NewDomainErrorSimple("MISSING_DOCUMENT_REF", "Query parameter 'ref' is required", http.StatusBadRequest)
)

// DocumentHandler stores workflow artifacts (bulletins, contract
// drafts, delivery evidence) in the object store and hands back the
// opaque reference the other endpoints expect.

type DocumentHandler struct {
	store interfaces.IDocumentStore
}

func NewDocumentHandler(store interfaces.IDocumentStore) *DocumentHandler {
	return &DocumentHandler{store: store}
}

func (h *DocumentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidDocumentUpload.HTTPStatus, errInvalidDocumentUpload.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errInvalidDocumentUpload.HTTPStatus, errInvalidDocumentUpload.ToHTTPError())
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := time.Now().UTC().Format("2006/01/02") + "/" + uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	ref, err := h.store.Upload(c.Request.Context(), objectName, file, fileHeader.Size, contentType)
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_FAILED", "Could not store the document", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ref": ref})
}

func (h *DocumentHandler) PresignedURL(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("ref"))
	if ref == "" {
		c.JSON(errMissingDocumentRef.HTTPStatus, errMissingDocumentRef.ToHTTPError())
		return
	}

	url, err := h.store.PresignedURL(c.Request.Context(), ref)
	if err != nil {
		appErr := pkg.NewDomainError("PRESIGN_FAILED", "Could not generate the document URL", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
