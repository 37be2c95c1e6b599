// Package extract pulls plain text out of uploaded PDFs.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor implements TextExtractor for PDF bytes.
type PDFExtractor struct {
	logger *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{logger: logger}
}

// ExtractText reads the whole document's plain text. Encrypted or malformed
// PDFs fail here rather than producing partial garbage downstream.
func (e *PDFExtractor) ExtractText(ctx context.Context, data []byte) (Result, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return Result{}, fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return Result{}, fmt.Errorf("read pdf text: %w", err)
	}

	res := Result{Text: buf.String(), Pages: reader.NumPage()}
	if strings.TrimSpace(res.Text) == "" {
		return res, fmt.Errorf("pdf contains no extractable text (scanned document?)")
	}

	e.logger.Info("extract.pdf.ok",
		"bytes", len(data),
		"pages", res.Pages,
		"text_len", len(res.Text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// IsPDF checks whether a filename carries a .pdf extension (case-insensitive).
func IsPDF(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
