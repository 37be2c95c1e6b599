package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/o-adebayo/pdf-assistant/constants"
	"github.com/o-adebayo/pdf-assistant/internal/extract"
	"github.com/o-adebayo/pdf-assistant/internal/store"
)

// Processor runs text extraction for a queued document.
type Processor struct {
	docs      store.DocumentRepository
	extractor extract.TextExtractor
	logger    *slog.Logger
}

func NewProcessor(docs store.DocumentRepository, extractor extract.TextExtractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{docs: docs, extractor: extractor, logger: logger}
}

// ProcessDocument extracts text for one document and advances its status.
// Already-READY documents are a no-op so re-enqueueing is harmless.
func (p *Processor) ProcessDocument(ctx context.Context, docID uuid.UUID) error {
	start := time.Now()
	doc, err := p.docs.GetByID(ctx, docID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if doc.Status == constants.DocStatusReady {
		p.logger.Info("processor.skip_ready", "document_id", docID)
		return nil
	}

	if err := p.docs.SetStatus(ctx, docID, constants.DocStatusExtracting); err != nil {
		return fmt.Errorf("mark extracting: %w", err)
	}

	data, err := os.ReadFile(doc.SourcePath)
	if err != nil {
		p.fail(ctx, docID, err)
		return fmt.Errorf("read stored file: %w", err)
	}

	res, err := p.extractor.ExtractText(ctx, data)
	if err != nil {
		p.fail(ctx, docID, err)
		return fmt.Errorf("extract text: %w", err)
	}

	if err := p.docs.SetText(ctx, docID, res.Text, res.Pages); err != nil {
		return fmt.Errorf("store text: %w", err)
	}
	p.logger.Info("processor.extract.ok",
		"document_id", docID,
		"pages", res.Pages,
		"text_len", len(res.Text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Processor) fail(ctx context.Context, docID uuid.UUID, cause error) {
	p.logger.Error("processor.extract.failed", "document_id", docID, "error", cause)
	if err := p.docs.SetStatus(ctx, docID, constants.DocStatusFailed); err != nil {
		p.logger.Error("processor.status_update_failed", "document_id", docID, "error", err)
	}
}
