package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/o-adebayo/pdf-assistant/constants"
	"github.com/o-adebayo/pdf-assistant/internal/common"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	id           TEXT PRIMARY KEY,
	filename     TEXT NOT NULL,
	file_ext     TEXT NOT NULL,
	file_size    INTEGER NOT NULL,
	source_path  TEXT NOT NULL DEFAULT '',
	content_hash BLOB NOT NULL UNIQUE,
	text         TEXT NOT NULL DEFAULT '',
	page_count   INTEGER NOT NULL DEFAULT 0,
	status       TEXT NOT NULL,
	uploaded_at  TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS artifacts (
	id          TEXT PRIMARY KEY,
	document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	kind        TEXT NOT NULL,
	content     TEXT NOT NULL,
	model_name  TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_artifacts_document ON artifacts(document_id, kind);
`

// SQLiteStore is the embedded backend. A single connection avoids writer
// contention under SQLite's locking model.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	logger.Info("opening sqlite database", "path", path)
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Documents() DocumentRepository { return &sqliteDocumentRepo{s} }
func (s *SQLiteStore) Artifacts() ArtifactRepository { return &sqliteArtifactRepo{s} }

func (s *SQLiteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLiteStore) Close() error {
	s.logger.Info("closing sqlite database")
	return s.db.Close()
}

type sqliteDocumentRepo struct{ s *SQLiteStore }

func (r *sqliteDocumentRepo) Create(ctx context.Context, doc *Document) error {
	_, err := r.s.db.ExecContext(ctx,
		`INSERT INTO documents (id, filename, file_ext, file_size, source_path, content_hash, text, page_count, status, uploaded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID.String(), doc.Filename, doc.FileExt, doc.FileSize, doc.SourcePath, doc.ContentHash,
		doc.Text, doc.PageCount, string(doc.Status), doc.UploadedAt.UTC())
	if err != nil {
		r.s.logger.Error("failed to create document", "filename", doc.Filename, "error", err)
		return err
	}
	return nil
}

func (r *sqliteDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	row := r.s.db.QueryRowContext(ctx,
		`SELECT id, filename, file_ext, file_size, source_path, content_hash, text, page_count, status, uploaded_at
		 FROM documents WHERE id = ?`, id.String())
	return scanDocument(row)
}

func (r *sqliteDocumentRepo) GetByHash(ctx context.Context, hash []byte) (*Document, error) {
	row := r.s.db.QueryRowContext(ctx,
		`SELECT id, filename, file_ext, file_size, source_path, content_hash, text, page_count, status, uploaded_at
		 FROM documents WHERE content_hash = ?`, hash)
	return scanDocument(row)
}

func (r *sqliteDocumentRepo) List(ctx context.Context) ([]*Document, error) {
	rows, err := r.s.db.QueryContext(ctx,
		`SELECT id, filename, file_ext, file_size, source_path, content_hash, text, page_count, status, uploaded_at
		 FROM documents ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *sqliteDocumentRepo) SetText(ctx context.Context, id uuid.UUID, text string, pageCount int) error {
	return r.exec(ctx, id,
		`UPDATE documents SET text = ?, page_count = ?, status = ? WHERE id = ?`,
		text, pageCount, string(constants.DocStatusReady), id.String())
}

func (r *sqliteDocumentRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.DocStatus) error {
	return r.exec(ctx, id,
		`UPDATE documents SET status = ? WHERE id = ?`, string(status), id.String())
}

func (r *sqliteDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, id, `DELETE FROM documents WHERE id = ?`, id.String())
}

func (r *sqliteDocumentRepo) exec(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	res, err := r.s.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.s.logger.Error("document write failed", "document_id", id, "error", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

type sqliteArtifactRepo struct{ s *SQLiteStore }

func (r *sqliteArtifactRepo) Create(ctx context.Context, art *Artifact) error {
	_, err := r.s.db.ExecContext(ctx,
		`INSERT INTO artifacts (id, document_id, kind, content, model_name, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		art.ID.String(), art.DocumentID.String(), string(art.Kind), art.Content,
		art.ModelName, art.CreatedAt.UTC())
	if err != nil {
		r.s.logger.Error("failed to create artifact", "document_id", art.DocumentID, "kind", art.Kind, "error", err)
	}
	return err
}

func (r *sqliteArtifactRepo) ListByDocument(ctx context.Context, docID uuid.UUID, kind constants.ArtifactKind) ([]*Artifact, error) {
	rows, err := r.s.db.QueryContext(ctx,
		`SELECT id, document_id, kind, content, model_name, created_at
		 FROM artifacts WHERE document_id = ? AND kind = ? ORDER BY created_at DESC`,
		docID.String(), string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var arts []*Artifact
	for rows.Next() {
		art, err := scanArtifact(rows)
		if err != nil {
			return nil, err
		}
		arts = append(arts, art)
	}
	return arts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*Document, error) {
	var (
		doc        Document
		id, status string
		uploadedAt time.Time
	)
	err := row.Scan(&id, &doc.Filename, &doc.FileExt, &doc.FileSize, &doc.SourcePath, &doc.ContentHash,
		&doc.Text, &doc.PageCount, &status, &uploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	doc.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse document id: %w", err)
	}
	doc.Status = constants.DocStatus(status)
	doc.UploadedAt = uploadedAt
	return &doc, nil
}

func scanArtifact(row rowScanner) (*Artifact, error) {
	var (
		art             Artifact
		id, docID, kind string
		createdAt       time.Time
	)
	err := row.Scan(&id, &docID, &kind, &art.Content, &art.ModelName, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if art.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse artifact id: %w", err)
	}
	if art.DocumentID, err = uuid.Parse(docID); err != nil {
		return nil, fmt.Errorf("parse artifact document id: %w", err)
	}
	art.Kind = constants.ArtifactKind(kind)
	art.CreatedAt = createdAt
	return &art, nil
}
