// Package ingest accepts uploaded documents: validate, hash, deduplicate,
// persist to disk and database, and hand off to background extraction.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/o-adebayo/pdf-assistant/constants"
	"github.com/o-adebayo/pdf-assistant/internal/common"
	"github.com/o-adebayo/pdf-assistant/internal/store"
)

// Result describes one accepted upload. Reprocess is set when a deduplicated
// document still needs extraction and should be queued again.
type Result struct {
	Document     *store.Document
	Deduplicated bool
	Reprocess    bool
	HashHex      string
}

// Usecase owns the upload path. Extraction happens separately so uploads
// return quickly.
type Usecase struct {
	docs    store.DocumentRepository
	dataDir string
	logger  *slog.Logger
}

func NewUsecase(docs store.DocumentRepository, dataDir string, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{docs: docs, dataDir: dataDir, logger: logger}
}

// IngestUpload validates and records an uploaded file. A file whose content
// hash is already known returns the existing document instead of a new one.
func (u *Usecase) IngestUpload(ctx context.Context, filename string, data []byte) (Result, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if !constants.IsAllowedExt(ext) {
		return Result{}, common.NewAppError("UNSUPPORTED_TYPE",
			fmt.Sprintf("unsupported file extension %q", ext), common.ErrInvalidInput)
	}
	if len(data) == 0 {
		return Result{}, common.NewAppError("EMPTY_FILE", "uploaded file is empty", common.ErrInvalidInput)
	}
	if len(data) > constants.MaxUploadBytes {
		return Result{}, common.NewAppError("FILE_TOO_LARGE",
			fmt.Sprintf("file exceeds %d byte limit", constants.MaxUploadBytes), common.ErrInvalidInput)
	}

	sum := sha256.Sum256(data)
	hexHash := hex.EncodeToString(sum[:])

	if existing, err := u.docs.GetByHash(ctx, sum[:]); err == nil {
		res := Result{Document: existing, Deduplicated: true, HashHex: hexHash}
		// A re-upload of a document whose extraction failed is the retry
		// path; put it back in line instead of returning a dead row.
		if existing.Status == constants.DocStatusFailed {
			if err := u.docs.SetStatus(ctx, existing.ID, constants.DocStatusQueued); err != nil {
				return Result{}, fmt.Errorf("requeue document: %w", err)
			}
			existing.Status = constants.DocStatusQueued
			res.Reprocess = true
		}
		u.logger.Info("ingest.dedup",
			"document_id", existing.ID,
			"filename", filename,
			"reprocess", res.Reprocess,
		)
		return res, nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return Result{}, fmt.Errorf("check duplicate: %w", err)
	}

	doc := &store.Document{
		ID:          uuid.New(),
		Filename:    filepath.Base(filename),
		FileExt:     ext,
		FileSize:    int64(len(data)),
		ContentHash: sum[:],
		Status:      constants.DocStatusQueued,
		UploadedAt:  time.Now().UTC(),
	}

	path, err := u.writeFile(doc, data, hexHash)
	if err != nil {
		return Result{}, err
	}
	doc.SourcePath = path

	if err := u.docs.Create(ctx, doc); err != nil {
		_ = os.Remove(path)
		return Result{}, fmt.Errorf("record document: %w", err)
	}

	u.logger.Info("ingest.ok",
		"document_id", doc.ID,
		"filename", doc.Filename,
		"size", doc.FileSize,
		"hash", hexHash[:8],
	)
	return Result{Document: doc, HashHex: hexHash}, nil
}

// writeFile stores the upload under a collision-free name so identical
// filenames never clobber each other.
func (u *Usecase) writeFile(doc *store.Document, data []byte, hexHash string) (string, error) {
	if err := os.MkdirAll(u.dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.%s", hexHash[:8], doc.ID, doc.FileExt)
	path := filepath.Join(u.dataDir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return path, nil
}

// Remove deletes a document's stored file along with its database row.
func (u *Usecase) Remove(ctx context.Context, id uuid.UUID) error {
	doc, err := u.docs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.docs.Delete(ctx, id); err != nil {
		return err
	}
	if doc.SourcePath != "" {
		if err := os.Remove(doc.SourcePath); err != nil && !os.IsNotExist(err) {
			u.logger.Warn("ingest.remove.file_failed", "document_id", id, "error", err)
		}
	}
	u.logger.Info("ingest.remove.ok", "document_id", id)
	return nil
}
