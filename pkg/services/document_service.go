package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/document"
)

// DocumentService manages uploaded corpus documents.
type DocumentService struct {
	client *ent.Client
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(client *ent.Client) *DocumentService {
	return &DocumentService{client: client}
}

// CreateDocumentParams carries the attributes of a stored upload.
type CreateDocumentParams struct {
	ExternalID   string
	Filename     string
	StoredPath   string
	SizeBytes    int64
	ContentHash  string
	SourceType   document.SourceType
	Organization string
}

// CreateDocument persists a new document row in status uploaded.
func (s *DocumentService) CreateDocument(ctx context.Context, params CreateDocumentParams) (*ent.Document, error) {
	if params.ExternalID == "" {
		return nil, NewValidationError("external_id", "required")
	}
	if params.Filename == "" {
		return nil, NewValidationError("filename", "required")
	}
	if params.ContentHash == "" {
		return nil, NewValidationError("content_hash", "required")
	}

	builder := s.client.Document.Create().
		SetExternalID(params.ExternalID).
		SetFilename(params.Filename).
		SetStoredPath(params.StoredPath).
		SetSizeBytes(params.SizeBytes).
		SetContentHash(params.ContentHash).
		SetSourceType(params.SourceType)
	if params.Organization != "" {
		builder.SetOrganization(params.Organization)
	}

	doc, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

// GetDocument resolves a document by numeric id or external id.
func (s *DocumentService) GetDocument(ctx context.Context, ref string) (*ent.Document, error) {
	query := s.client.Document.Query()
	if id, err := strconv.Atoi(ref); err == nil {
		query = query.Where(document.IDEQ(id))
	} else {
		query = query.Where(document.ExternalIDEQ(ref))
	}

	doc, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// UpdateStatus advances the document lifecycle.
func (s *DocumentService) UpdateStatus(ctx context.Context, documentID int, status document.Status) error {
	err := s.client.Document.UpdateOneID(documentID).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update document status: %w", err)
	}
	return nil
}

// ListDocuments returns documents newest first, optionally filtered by
// source type.
func (s *DocumentService) ListDocuments(ctx context.Context, sourceType string, limit int) ([]*ent.Document, error) {
	if limit <= 0 {
		limit = 50
	}

	query := s.client.Document.Query()
	if sourceType != "" {
		st := document.SourceType(sourceType)
		if err := document.SourceTypeValidator(st); err != nil {
			return nil, NewValidationError("source_type", err.Error())
		}
		query = query.Where(document.SourceTypeEQ(st))
	}

	docs, err := query.
		Order(ent.Desc(document.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}
