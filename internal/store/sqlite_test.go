package store

import (
	"context"
	"crypto/sha256"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-adebayo/pdf-assistant/constants"
	"github.com/o-adebayo/pdf-assistant/internal/common"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestDocument(name string) *Document {
	hash := sha256.Sum256([]byte(name))
	return &Document{
		ID:          uuid.New(),
		Filename:    name,
		FileExt:     "pdf",
		FileSize:    1234,
		ContentHash: hash[:],
		Status:      constants.DocStatusQueued,
		UploadedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := newTestDocument("notes.pdf")

	require.NoError(t, s.Documents().Create(ctx, doc))

	got, err := s.Documents().GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Filename, got.Filename)
	assert.Equal(t, doc.ContentHash, got.ContentHash)
	assert.Equal(t, constants.DocStatusQueued, got.Status)

	byHash, err := s.Documents().GetByHash(ctx, doc.ContentHash)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, byHash.ID)
}

func TestDocumentNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Documents().GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSetTextMarksReady(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := newTestDocument("book.pdf")
	require.NoError(t, s.Documents().Create(ctx, doc))

	require.NoError(t, s.Documents().SetText(ctx, doc.ID, "extracted body", 12))

	got, err := s.Documents().GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "extracted body", got.Text)
	assert.Equal(t, 12, got.PageCount)
	assert.Equal(t, constants.DocStatusReady, got.Status)
}

func TestSetStatusUnknownDocument(t *testing.T) {
	s := newTestStore(t)

	err := s.Documents().SetStatus(context.Background(), uuid.New(), constants.DocStatusFailed)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListOrdersByUploadTime(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := newTestDocument("older.pdf")
	older.UploadedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	newer := newTestDocument("newer.pdf")
	require.NoError(t, s.Documents().Create(ctx, older))
	require.NoError(t, s.Documents().Create(ctx, newer))

	docs, err := s.Documents().List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "newer.pdf", docs[0].Filename)
	assert.Equal(t, "older.pdf", docs[1].Filename)
}

func TestDeleteCascadesArtifacts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := newTestDocument("quizme.pdf")
	require.NoError(t, s.Documents().Create(ctx, doc))

	art := &Artifact{
		ID:         uuid.New(),
		DocumentID: doc.ID,
		Kind:       constants.ArtifactQuiz,
		Content:    `[{"question":"q"}]`,
		ModelName:  "sonar",
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Artifacts().Create(ctx, art))

	arts, err := s.Artifacts().ListByDocument(ctx, doc.ID, constants.ArtifactQuiz)
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, "sonar", arts[0].ModelName)

	require.NoError(t, s.Documents().Delete(ctx, doc.ID))

	arts, err = s.Artifacts().ListByDocument(ctx, doc.ID, constants.ArtifactQuiz)
	require.NoError(t, err)
	assert.Empty(t, arts)
}

func TestArtifactKindFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := newTestDocument("mixed.pdf")
	require.NoError(t, s.Documents().Create(ctx, doc))

	for _, kind := range []constants.ArtifactKind{constants.ArtifactSummary, constants.ArtifactAnswer} {
		require.NoError(t, s.Artifacts().Create(ctx, &Artifact{
			ID:         uuid.New(),
			DocumentID: doc.ID,
			Kind:       kind,
			Content:    "content",
			CreatedAt:  time.Now().UTC(),
		}))
	}

	arts, err := s.Artifacts().ListByDocument(ctx, doc.ID, constants.ArtifactSummary)
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, constants.ArtifactSummary, arts[0].Kind)
}

func TestDuplicateHashRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := newTestDocument("same.pdf")
	require.NoError(t, s.Documents().Create(ctx, doc))

	dup := newTestDocument("same.pdf") // same name, same hash
	dup.ID = uuid.New()
	err := s.Documents().Create(ctx, dup)
	assert.Error(t, err)
}
