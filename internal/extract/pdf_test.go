package extract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-adebayo/pdf-assistant/internal/extract"
)

func TestIsPDF(t *testing.T) {
	assert.True(t, extract.IsPDF("notes.pdf"))
	assert.True(t, extract.IsPDF("REPORT.PDF"))
	assert.False(t, extract.IsPDF("notes.txt"))
	assert.False(t, extract.IsPDF("pdf"))
	assert.False(t, extract.IsPDF(""))
}

func TestExtractText_RejectsGarbage(t *testing.T) {
	e := extract.NewPDFExtractor(nil)

	_, err := e.ExtractText(context.Background(), []byte("not a pdf at all"))
	require.Error(t, err)
}

func TestExtractText_CancelledContext(t *testing.T) {
	e := extract.NewPDFExtractor(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ExtractText(ctx, []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, context.Canceled)
}
