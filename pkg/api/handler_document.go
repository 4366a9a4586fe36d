package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/regsentry/regsentry/ent/document"
	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/services"
)

// maxUploadBytes caps one document upload.
const maxUploadBytes = 50 << 20 // 50 MiB

// createDocumentHandler handles POST /api/documents. Multipart form with a
// "file" part plus optional "source_type" (default manual) and
// "organization" fields. Manuals get a queued audit; ingest runs in the
// background and the audit becomes claimable once the document is
// processed.
func (s *Server) createDocumentHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the upload size limit"})
		return
	}

	sourceType := document.SourceType(c.DefaultPostForm("source_type", string(document.SourceTypeManual)))
	if err := document.SourceTypeValidator(sourceType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source_type: " + string(sourceType)})
		return
	}
	organization := c.PostForm("organization")

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil || int64(len(content)) > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}

	storedPath, err := s.layout.SaveUpload(fileHeader.Filename, content)
	if err != nil {
		s.logger.Error("Failed to persist upload", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}

	sum := sha256.Sum256(content)
	doc, err := s.docs.CreateDocument(c.Request.Context(), services.CreateDocumentParams{
		ExternalID:   uuid.NewString(),
		Filename:     fileHeader.Filename,
		StoredPath:   storedPath,
		SizeBytes:    int64(len(content)),
		ContentHash:  hex.EncodeToString(sum[:]),
		SourceType:   sourceType,
		Organization: organization,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := gin.H{"document": documentResponse(doc)}

	if sourceType == document.SourceTypeManual {
		a, err := s.audits.CreateAudit(c.Request.Context(), models.CreateAuditRequest{
			DocumentID: doc.ExternalID,
		})
		if err != nil {
			mapServiceError(c, err)
			return
		}
		resp["audit"] = auditResponse(a)
	}

	// Ingest off the request path. The request context dies with the
	// response, so the background task gets its own.
	go func() {
		if err := s.pipeline.Process(context.Background(), doc, fileHeader.Filename, content); err != nil {
			s.logger.Error("Background ingest failed",
				"document_id", doc.ExternalID, "error", err)
		}
	}()

	c.JSON(http.StatusCreated, resp)
}

// listDocumentsHandler handles GET /api/documents.
func (s *Server) listDocumentsHandler(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	docs, err := s.docs.ListDocuments(c.Request.Context(), c.Query("source_type"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		out[i] = documentResponse(d)
	}
	c.JSON(http.StatusOK, gin.H{"documents": out, "count": len(out)})
}
