// Package store persists documents and the artifacts generated from them.
// Two backends are provided: SQLite for single-binary deployments and
// PostgreSQL for shared ones.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/o-adebayo/pdf-assistant/constants"
)

// Document is one uploaded PDF and its extracted text.
type Document struct {
	ID          uuid.UUID
	Filename    string
	FileExt     string
	FileSize    int64
	SourcePath  string
	ContentHash []byte
	Text        string
	PageCount   int
	Status      constants.DocStatus
	UploadedAt  time.Time
}

// Artifact is a generated output (summary, quiz, answer) tied to a document.
type Artifact struct {
	ID         uuid.UUID
	DocumentID uuid.UUID
	Kind       constants.ArtifactKind
	Content    string
	ModelName  string
	CreatedAt  time.Time
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*Document, error)
	GetByHash(ctx context.Context, hash []byte) (*Document, error)
	List(ctx context.Context) ([]*Document, error)
	SetText(ctx context.Context, id uuid.UUID, text string, pageCount int) error
	SetStatus(ctx context.Context, id uuid.UUID, status constants.DocStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ArtifactRepository interface {
	Create(ctx context.Context, art *Artifact) error
	ListByDocument(ctx context.Context, docID uuid.UUID, kind constants.ArtifactKind) ([]*Artifact, error)
}

// Store bundles the repositories with lifecycle control so callers can hold
// one handle regardless of backend.
type Store interface {
	Documents() DocumentRepository
	Artifacts() ArtifactRepository
	Ping(ctx context.Context) error
	Close() error
}
