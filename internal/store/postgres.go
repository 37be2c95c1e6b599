package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/o-adebayo/pdf-assistant/constants"
	"github.com/o-adebayo/pdf-assistant/internal/common"
)

// PostgresConfig tunes the connection pool.
type PostgresConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS documents (
	id           UUID PRIMARY KEY,
	filename     TEXT NOT NULL,
	file_ext     TEXT NOT NULL,
	file_size    BIGINT NOT NULL,
	source_path  TEXT NOT NULL DEFAULT '',
	content_hash BYTEA NOT NULL UNIQUE,
	text         TEXT NOT NULL DEFAULT '',
	page_count   INT NOT NULL DEFAULT 0,
	status       TEXT NOT NULL,
	uploaded_at  TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS artifacts (
	id          UUID PRIMARY KEY,
	document_id UUID NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	kind        TEXT NOT NULL,
	content     TEXT NOT NULL,
	model_name  TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_artifacts_document ON artifacts(document_id, kind);
`

// PostgresStore is the shared-deployment backend.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func OpenPostgres(ctx context.Context, cfg PostgresConfig, logger *slog.Logger) (*PostgresStore, error) {
	logger.Info("connecting to database")
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "pdf-assistant"

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	logger.Info("successfully connected to database")
	return &PostgresStore{pool: pool, logger: logger}, nil
}

func (s *PostgresStore) Documents() DocumentRepository { return &pgDocumentRepo{s} }
func (s *PostgresStore) Artifacts() ArtifactRepository { return &pgArtifactRepo{s} }

func (s *PostgresStore) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *PostgresStore) Close() error {
	s.logger.Info("closing database connections")
	s.pool.Close()
	return nil
}

type pgDocumentRepo struct{ s *PostgresStore }

func (r *pgDocumentRepo) Create(ctx context.Context, doc *Document) error {
	_, err := r.s.pool.Exec(ctx,
		`INSERT INTO documents (id, filename, file_ext, file_size, source_path, content_hash, text, page_count, status, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		doc.ID, doc.Filename, doc.FileExt, doc.FileSize, doc.SourcePath, doc.ContentHash,
		doc.Text, doc.PageCount, string(doc.Status), doc.UploadedAt.UTC())
	if err != nil {
		r.s.logger.Error("failed to create document", "filename", doc.Filename, "error", err)
		return err
	}
	return nil
}

func (r *pgDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	return r.scanOne(r.s.pool.QueryRow(ctx,
		`SELECT id, filename, file_ext, file_size, source_path, content_hash, text, page_count, status, uploaded_at
		 FROM documents WHERE id = $1`, id))
}

func (r *pgDocumentRepo) GetByHash(ctx context.Context, hash []byte) (*Document, error) {
	return r.scanOne(r.s.pool.QueryRow(ctx,
		`SELECT id, filename, file_ext, file_size, source_path, content_hash, text, page_count, status, uploaded_at
		 FROM documents WHERE content_hash = $1`, hash))
}

func (r *pgDocumentRepo) List(ctx context.Context) ([]*Document, error) {
	rows, err := r.s.pool.Query(ctx,
		`SELECT id, filename, file_ext, file_size, source_path, content_hash, text, page_count, status, uploaded_at
		 FROM documents ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		doc, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *pgDocumentRepo) SetText(ctx context.Context, id uuid.UUID, text string, pageCount int) error {
	return r.exec(ctx, id,
		`UPDATE documents SET text = $1, page_count = $2, status = $3 WHERE id = $4`,
		text, pageCount, string(constants.DocStatusReady), id)
}

func (r *pgDocumentRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.DocStatus) error {
	return r.exec(ctx, id, `UPDATE documents SET status = $1 WHERE id = $2`, string(status), id)
}

func (r *pgDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, id, `DELETE FROM documents WHERE id = $1`, id)
}

func (r *pgDocumentRepo) exec(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	tag, err := r.s.pool.Exec(ctx, query, args...)
	if err != nil {
		r.s.logger.Error("document write failed", "document_id", id, "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgDocumentRepo) scanOne(row pgx.Row) (*Document, error) {
	var (
		doc    Document
		status string
	)
	err := row.Scan(&doc.ID, &doc.Filename, &doc.FileExt, &doc.FileSize, &doc.SourcePath, &doc.ContentHash,
		&doc.Text, &doc.PageCount, &status, &doc.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	doc.Status = constants.DocStatus(status)
	return &doc, nil
}

type pgArtifactRepo struct{ s *PostgresStore }

func (r *pgArtifactRepo) Create(ctx context.Context, art *Artifact) error {
	_, err := r.s.pool.Exec(ctx,
		`INSERT INTO artifacts (id, document_id, kind, content, model_name, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		art.ID, art.DocumentID, string(art.Kind), art.Content, art.ModelName, art.CreatedAt.UTC())
	if err != nil {
		r.s.logger.Error("failed to create artifact", "document_id", art.DocumentID, "kind", art.Kind, "error", err)
	}
	return err
}

func (r *pgArtifactRepo) ListByDocument(ctx context.Context, docID uuid.UUID, kind constants.ArtifactKind) ([]*Artifact, error) {
	rows, err := r.s.pool.Query(ctx,
		`SELECT id, document_id, kind, content, model_name, created_at
		 FROM artifacts WHERE document_id = $1 AND kind = $2 ORDER BY created_at DESC`,
		docID, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var arts []*Artifact
	for rows.Next() {
		var (
			art  Artifact
			kind string
		)
		if err := rows.Scan(&art.ID, &art.DocumentID, &kind, &art.Content, &art.ModelName, &art.CreatedAt); err != nil {
			return nil, err
		}
		art.Kind = constants.ArtifactKind(kind)
		arts = append(arts, &art)
	}
	return arts, rows.Err()
}
