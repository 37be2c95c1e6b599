package server

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/o-adebayo/pdf-assistant/constants"
	assistantv1 "github.com/o-adebayo/pdf-assistant/gen/proto/assistant/v1"
	"github.com/o-adebayo/pdf-assistant/internal/assistant"
	"github.com/o-adebayo/pdf-assistant/internal/async"
	"github.com/o-adebayo/pdf-assistant/internal/credential"
	"github.com/o-adebayo/pdf-assistant/internal/export"
	"github.com/o-adebayo/pdf-assistant/internal/ingest"
	"github.com/o-adebayo/pdf-assistant/internal/store"
)

type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

type recordingQueue struct {
	mu   sync.Mutex
	jobs []async.Job
}

func (q *recordingQueue) Enqueue(_ context.Context, job async.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(context.Context) {}

type fixedStats struct{ stats []credential.KeyStats }

func (f fixedStats) Stats() []credential.KeyStats { return f.stats }

type testEnv struct {
	svc   *AssistantService
	store *store.SQLiteStore
	queue *recordingQueue
}

func newTestEnv(t *testing.T, complete completerFunc) *testEnv {
	t.Helper()
	st, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	if complete == nil {
		complete = func(context.Context, string) (string, error) { return "stub reply", nil }
	}

	q := &recordingQueue{}
	svc := NewAssistantService(Deps{
		Ingestor:   ingest.NewUsecase(st.Documents(), t.TempDir(), nil),
		Queue:      q,
		Docs:       st.Documents(),
		Arts:       st.Artifacts(),
		Summarizer: assistant.NewSummarizer(complete, assistant.SummarizerConfig{}, nil),
		Quizzer:    assistant.NewQuizzer(complete, assistant.QuizzerConfig{}, nil),
		Answerer:   assistant.NewAnswerer(complete, assistant.AnswererConfig{}, nil),
		Exporter:   export.NewService(st.Documents(), st.Artifacts(), nil),
		Stats: fixedStats{stats: []credential.KeyStats{
			{ID: 1, Requests: 7, Errors: 1, SuccessRate: 6.0 / 7.0},
		}},
		ModelName: "sonar",
	}, slog.Default())

	return &testEnv{svc: svc, store: st, queue: q}
}

func (e *testEnv) upload(t *testing.T, name string, data []byte) *assistantv1.UploadDocumentResponse {
	t.Helper()
	resp, err := e.svc.UploadDocument(context.Background(), &assistantv1.UploadDocumentRequest{
		Filename: name,
		Data:     data,
	})
	require.NoError(t, err)
	return resp
}

// markReady simulates the extraction worker finishing.
func (e *testEnv) markReady(t *testing.T, id string, text string) uuid.UUID {
	t.Helper()
	docID, err := uuid.Parse(id)
	require.NoError(t, err)
	require.NoError(t, e.store.Documents().SetText(context.Background(), docID, text, 2))
	return docID
}

func TestUploadDocumentQueuesExtraction(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.upload(t, "notes.pdf", []byte("%PDF fake"))
	assert.Equal(t, string(constants.DocStatusQueued), resp.Document.Status)
	assert.False(t, resp.Deduplicated)

	env.queue.mu.Lock()
	defer env.queue.mu.Unlock()
	require.Len(t, env.queue.jobs, 1)
	assert.Equal(t, resp.Document.Id, env.queue.jobs[0].DocumentID.String())
}

func TestUploadDocumentDuplicateNotQueuedTwice(t *testing.T) {
	env := newTestEnv(t, nil)

	env.upload(t, "a.pdf", []byte("same"))
	resp := env.upload(t, "b.pdf", []byte("same"))
	assert.True(t, resp.Deduplicated)

	env.queue.mu.Lock()
	defer env.queue.mu.Unlock()
	assert.Len(t, env.queue.jobs, 1)
}

func TestUploadDocumentFailedDuplicateQueuedAgain(t *testing.T) {
	env := newTestEnv(t, nil)

	first := env.upload(t, "flaky.pdf", []byte("same"))
	docID, err := uuid.Parse(first.Document.Id)
	require.NoError(t, err)
	require.NoError(t, env.store.Documents().SetStatus(context.Background(), docID, constants.DocStatusFailed))

	resp := env.upload(t, "flaky.pdf", []byte("same"))
	assert.True(t, resp.Deduplicated)
	assert.Equal(t, string(constants.DocStatusQueued), resp.Document.Status)

	env.queue.mu.Lock()
	defer env.queue.mu.Unlock()
	require.Len(t, env.queue.jobs, 2)
	assert.Equal(t, docID, env.queue.jobs[1].DocumentID)
}

func TestUploadDocumentRejectsExtension(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.svc.UploadDocument(context.Background(), &assistantv1.UploadDocumentRequest{
		Filename: "evil.exe",
		Data:     []byte("x"),
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetDocumentNotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.svc.GetDocument(context.Background(), &assistantv1.GetDocumentRequest{
		DocumentId: uuid.NewString(),
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetDocumentTextOnlyWhenRequested(t *testing.T) {
	env := newTestEnv(t, nil)
	up := env.upload(t, "doc.pdf", []byte("%PDF"))
	env.markReady(t, up.Document.Id, "the extracted text")

	resp, err := env.svc.GetDocument(context.Background(), &assistantv1.GetDocumentRequest{
		DocumentId: up.Document.Id,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Text)

	resp, err = env.svc.GetDocument(context.Background(), &assistantv1.GetDocumentRequest{
		DocumentId:  up.Document.Id,
		IncludeText: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "the extracted text", resp.Text)
}

func TestSummarizeNotReady(t *testing.T) {
	env := newTestEnv(t, nil)
	up := env.upload(t, "pending.pdf", []byte("%PDF"))

	_, err := env.svc.Summarize(context.Background(), &assistantv1.SummarizeRequest{
		DocumentId: up.Document.Id,
	})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestSummarizeStoresArtifact(t *testing.T) {
	env := newTestEnv(t, func(context.Context, string) (string, error) {
		return "## Summary\ncontents", nil
	})
	up := env.upload(t, "book.pdf", []byte("%PDF"))
	docID := env.markReady(t, up.Document.Id, "lots of document text here")

	resp, err := env.svc.Summarize(context.Background(), &assistantv1.SummarizeRequest{
		DocumentId: up.Document.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, "## Summary\ncontents", resp.Summary)
	assert.Equal(t, "sonar", resp.Model)

	arts, err := env.store.Artifacts().ListByDocument(context.Background(), docID, constants.ArtifactSummary)
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, "## Summary\ncontents", arts[0].Content)
	assert.Equal(t, "sonar", arts[0].ModelName)
}

func TestGenerateQuizReturnsQuestions(t *testing.T) {
	env := newTestEnv(t, func(context.Context, string) (string, error) {
		return `[{"question":"Q?","options":["a","b","c","d"],"answer":"a"}]`, nil
	})
	up := env.upload(t, "quiz.pdf", []byte("%PDF"))
	docID := env.markReady(t, up.Document.Id, "Photosynthesis uses Chloroplasts to capture light.")

	resp, err := env.svc.GenerateQuiz(context.Background(), &assistantv1.GenerateQuizRequest{
		DocumentId:   up.Document.Id,
		NumQuestions: 1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "a", resp.Questions[0].Answer)

	arts, err := env.store.Artifacts().ListByDocument(context.Background(), docID, constants.ArtifactQuiz)
	require.NoError(t, err)
	assert.Len(t, arts, 1)
}

func TestGenerateQuizZeroMeansDefault(t *testing.T) {
	env := newTestEnv(t, func(context.Context, string) (string, error) {
		return `[{"question":"Q1?","options":["a","b","c","d"],"answer":"a"},
			{"question":"Q2?","options":["a","b","c","d"],"answer":"b"}]`, nil
	})
	up := env.upload(t, "quiz.pdf", []byte("%PDF"))
	env.markReady(t, up.Document.Id, "Photosynthesis uses Chloroplasts to capture light.")

	resp, err := env.svc.GenerateQuiz(context.Background(), &assistantv1.GenerateQuizRequest{
		DocumentId: up.Document.Id,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)

	_, err = env.svc.GenerateQuiz(context.Background(), &assistantv1.GenerateQuizRequest{
		DocumentId:   up.Document.Id,
		NumQuestions: 51,
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAnswerRequiresQuestion(t *testing.T) {
	env := newTestEnv(t, nil)
	up := env.upload(t, "qa.pdf", []byte("%PDF"))
	env.markReady(t, up.Document.Id, "text")

	_, err := env.svc.Answer(context.Background(), &assistantv1.AnswerRequest{
		DocumentId: up.Document.Id,
		Question:   "   ",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetUsageStats(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, err := env.svc.GetUsageStats(context.Background(), &assistantv1.GetUsageStatsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Keys, 1)
	assert.Equal(t, int32(1), resp.Keys[0].KeyId)
	assert.Equal(t, uint64(7), resp.Keys[0].Requests)
	assert.InDelta(t, 6.0/7.0, resp.Keys[0].SuccessRate, 1e-9)
}

func TestExportUsageStats(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, err := env.svc.ExportUsageStats(context.Background(), &assistantv1.ExportUsageStatsRequest{})
	require.NoError(t, err)
	assert.Contains(t, resp.Filename, "usage-stats-")

	f, err := excelize.OpenReader(bytes.NewReader(resp.Xlsx))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Usage")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "key_1", rows[1][0])
	assert.Equal(t, "7", rows[1][1])
	assert.Equal(t, "85.7%", rows[1][3])
}
