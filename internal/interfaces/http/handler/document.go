package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	documentapp "github.com/predio/backend/internal/application/document"
)

// maxDocumentBytes bounds direct document uploads
const maxDocumentBytes = 20 << 20

// DocumentHandler handles tenant document storage
type DocumentHandler struct {
	BaseHandler
	documentService *documentapp.Service
}

// NewDocumentHandler creates a DocumentHandler
func NewDocumentHandler(documentService *documentapp.Service) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// RegisterRoutes registers document routes. All are scoped to the caller's
// own namespace.
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents", h.List)
	rg.POST("/documents", h.Upload)
	rg.POST("/documents/upload-url", h.GenerateUploadURL)
	rg.DELETE("/documents/*key", h.Delete)
}

// List returns the caller's documents with download URLs
func (h *DocumentHandler) List(c *gin.Context) {
	tenantID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	documents, err := h.documentService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, documents)
}

// Upload stores a document sent as a multipart form file
func (h *DocumentHandler) Upload(c *gin.Context) {
	tenantID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file field")
		return
	}
	if fileHeader.Size > maxDocumentBytes {
		h.BadRequest(c, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentBytes))
	if err != nil {
		h.BadRequest(c, "Failed to read uploaded file")
		return
	}

	key, err := h.documentService.Upload(
		c.Request.Context(),
		tenantID,
		fileHeader.Filename,
		data,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"key": key})
}

// GenerateUploadURL issues a presigned PUT URL for direct upload
func (h *DocumentHandler) GenerateUploadURL(c *gin.Context) {
	tenantID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req struct {
		Filename    string `json:"filename" binding:"required"`
		ContentType string `json:"content_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	ticket, err := h.documentService.GenerateUploadURL(c.Request.Context(), tenantID, req.Filename, req.ContentType)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, ticket)
}

// Delete removes one of the caller's documents
func (h *DocumentHandler) Delete(c *gin.Context) {
	tenantID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	// wildcard params carry a leading slash
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}
	if key == "" {
		h.BadRequest(c, "Missing document key")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), tenantID, key); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
