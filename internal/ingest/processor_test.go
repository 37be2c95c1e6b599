package ingest

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-adebayo/pdf-assistant/constants"
	"github.com/o-adebayo/pdf-assistant/internal/extract"
)

type extractorFunc func(ctx context.Context, data []byte) (extract.Result, error)

func (f extractorFunc) ExtractText(ctx context.Context, data []byte) (extract.Result, error) {
	return f(ctx, data)
}

func ingestTestDoc(t *testing.T, docs *memDocs, dir string) uuid.UUID {
	t.Helper()
	u := NewUsecase(docs, dir, nil)
	res, err := u.IngestUpload(context.Background(), "doc.pdf", []byte("%PDF raw bytes"))
	require.NoError(t, err)
	return res.Document.ID
}

func TestProcessDocumentExtractsAndStoresText(t *testing.T) {
	docs := newMemDocs()
	id := ingestTestDoc(t, docs, t.TempDir())

	var gotData []byte
	p := NewProcessor(docs, extractorFunc(func(_ context.Context, data []byte) (extract.Result, error) {
		gotData = data
		return extract.Result{Text: "page one text", Pages: 3}, nil
	}), nil)

	require.NoError(t, p.ProcessDocument(context.Background(), id))
	assert.Equal(t, []byte("%PDF raw bytes"), gotData)

	doc, err := docs.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, constants.DocStatusReady, doc.Status)
	assert.Equal(t, "page one text", doc.Text)
	assert.Equal(t, 3, doc.PageCount)
}

func TestProcessDocumentExtractionFailureMarksFailed(t *testing.T) {
	docs := newMemDocs()
	id := ingestTestDoc(t, docs, t.TempDir())

	p := NewProcessor(docs, extractorFunc(func(context.Context, []byte) (extract.Result, error) {
		return extract.Result{}, errors.New("no extractable text")
	}), nil)

	err := p.ProcessDocument(context.Background(), id)
	assert.Error(t, err)

	doc, getErr := docs.GetByID(context.Background(), id)
	require.NoError(t, getErr)
	assert.Equal(t, constants.DocStatusFailed, doc.Status)
}

func TestProcessDocumentSkipsReady(t *testing.T) {
	docs := newMemDocs()
	id := ingestTestDoc(t, docs, t.TempDir())
	require.NoError(t, docs.SetText(context.Background(), id, "already done", 1))

	p := NewProcessor(docs, extractorFunc(func(context.Context, []byte) (extract.Result, error) {
		t.Fatal("extractor should not run for READY documents")
		return extract.Result{}, nil
	}), nil)

	require.NoError(t, p.ProcessDocument(context.Background(), id))
}

func TestProcessDocumentUnknownID(t *testing.T) {
	p := NewProcessor(newMemDocs(), extractorFunc(func(context.Context, []byte) (extract.Result, error) {
		return extract.Result{}, nil
	}), nil)

	err := p.ProcessDocument(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestProcessDocumentMissingFileMarksFailed(t *testing.T) {
	docs := newMemDocs()
	dir := t.TempDir()
	id := ingestTestDoc(t, docs, dir)

	// Simulate the stored file disappearing between upload and extraction.
	doc, err := docs.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NoError(t, os.Remove(doc.SourcePath))

	p := NewProcessor(docs, extractorFunc(func(context.Context, []byte) (extract.Result, error) {
		t.Fatal("extractor should not run without file data")
		return extract.Result{}, nil
	}), nil)

	assert.Error(t, p.ProcessDocument(context.Background(), id))

	doc, err = docs.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, constants.DocStatusFailed, doc.Status)
}
