package handlers

import (
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
	"github.com/Shalini-Dasari/TrustMed/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxDocumentUploadBytes caps a single multipart upload request.
const maxDocumentUploadBytes = 32 << 20

// DocumentHandler handles document upload and listing requests.
type DocumentHandler struct {
	documents portssvc.DocumentSvcFacade
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documents portssvc.DocumentSvcFacade) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// UploadDocuments godoc
// @Summary Upload documents
// @Description Accepts one or more files under the "files" form field and appends each, encoded as a data URI, to the account's document list
// @Tags documents
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   files formData file true "Files to upload"
// @Success 201 {object} dto.UploadDocumentsResponse
// @Failure 400 {object} ErrorResponse "No files provided"
// @Failure 500 {object} ErrorResponse "Upload failed"
// @Router /accounts/me/documents [post]
func (h *DocumentHandler) UploadDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentUploadBytes)
	form, err := c.MultipartForm()
	if err != nil {
		logger.Error("Failed to parse multipart form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No files provided"})
		return
	}

	files := make([]dto.UploadedFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file", slog.String("file", fh.Filename), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			logger.Error("Failed to read uploaded file", slog.String("file", fh.Filename), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
			return
		}
		files = append(files, dto.UploadedFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	documents, err := h.documents.IngestDocuments(c.Request.Context(), accountID, files)
	if err != nil {
		logger.Error("Failed to ingest documents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Upload failed"})
		return
	}

	logger.Info("Documents uploaded", slog.Int64("account_id", accountID), slog.Int("count", len(files)))
	c.JSON(http.StatusCreated, dto.UploadDocumentsResponse{Added: len(files), Documents: documents})
}

// ListDocuments godoc
// @Summary List documents
// @Description Returns the account's document list in upload order
// @Tags documents
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 500 {object} ErrorResponse "Failed to list documents"
// @Router /accounts/me/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	documents, err := h.documents.ListDocuments(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to list documents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list documents"})
		return
	}

	c.JSON(http.StatusOK, dto.ListDocumentsResponse{Documents: documents})
}
