package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/o-adebayo/pdf-assistant/constants"
	assistantv1 "github.com/o-adebayo/pdf-assistant/gen/proto/assistant/v1"
	"github.com/o-adebayo/pdf-assistant/internal/store"
)

// readyDocument loads a document and verifies extraction has finished.
func (s *AssistantService) readyDocument(ctx context.Context, rawID string) (*store.Document, error) {
	id, err := parseDocumentID(rawID)
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "document not found")
	}
	switch doc.Status {
	case constants.DocStatusReady:
		return doc, nil
	case constants.DocStatusFailed:
		return nil, status.Error(codes.FailedPrecondition, "text extraction failed for this document")
	default:
		return nil, status.Error(codes.FailedPrecondition, "document text is not ready yet")
	}
}

func (s *AssistantService) saveArtifact(ctx context.Context, docID uuid.UUID, kind constants.ArtifactKind, content string) {
	err := s.arts.Create(ctx, &store.Artifact{
		ID:         uuid.New(),
		DocumentID: docID,
		Kind:       kind,
		Content:    content,
		ModelName:  s.modelName,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		// The generated content was already returned to the caller.
		s.logger.Warn("artifact save failed", "document_id", docID, "kind", kind, "error", err)
	}
}

func (s *AssistantService) Summarize(ctx context.Context, req *assistantv1.SummarizeRequest) (*assistantv1.SummarizeResponse, error) {
	doc, err := s.readyDocument(ctx, req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting summary", "document_id", doc.ID, "text_len", len(doc.Text))
	summary, err := s.summarizer.Summarize(ctx, doc.Text, nil)
	if err != nil {
		s.logger.Error("summary failed", "document_id", doc.ID, "error", err)
		return nil, status.Error(codes.Unavailable, "summary generation failed")
	}

	s.saveArtifact(ctx, doc.ID, constants.ArtifactSummary, summary)
	return &assistantv1.SummarizeResponse{Summary: summary, Model: s.modelName}, nil
}

func (s *AssistantService) GenerateQuiz(ctx context.Context, req *assistantv1.GenerateQuizRequest) (*assistantv1.GenerateQuizResponse, error) {
	doc, err := s.readyDocument(ctx, req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	// Zero means "use the default count".
	n := int(req.GetNumQuestions())
	if n < 0 || n > 50 {
		return nil, status.Error(codes.InvalidArgument, "num_questions must be between 0 and 50")
	}

	questions, err := s.quizzer.Generate(ctx, doc.Text, n)
	if err != nil {
		s.logger.Error("quiz generation failed", "document_id", doc.ID, "error", err)
		return nil, status.Error(codes.Unavailable, "quiz generation failed")
	}
	if len(questions) == 0 {
		return nil, status.Error(codes.Unavailable, "could not build questions from this document")
	}

	if raw, err := json.Marshal(questions); err == nil {
		s.saveArtifact(ctx, doc.ID, constants.ArtifactQuiz, string(raw))
	}

	out := make([]*assistantv1.QuizQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, &assistantv1.QuizQuestion{
			Question: q.Question,
			Options:  q.Options,
			Answer:   q.Answer,
		})
	}
	return &assistantv1.GenerateQuizResponse{Questions: out}, nil
}

func (s *AssistantService) Answer(ctx context.Context, req *assistantv1.AnswerRequest) (*assistantv1.AnswerResponse, error) {
	question := strings.TrimSpace(req.GetQuestion())
	if question == "" {
		return nil, status.Error(codes.InvalidArgument, "question is required")
	}

	doc, err := s.readyDocument(ctx, req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	answer, contextUsed, err := s.answerer.Answer(ctx, doc.Text, question)
	if err != nil {
		s.logger.Error("answer failed", "document_id", doc.ID, "error", err)
		return nil, status.Error(codes.Unavailable, "answer generation failed")
	}

	s.saveArtifact(ctx, doc.ID, constants.ArtifactAnswer, answer)
	return &assistantv1.AnswerResponse{Answer: answer, ContextUsed: contextUsed}, nil
}

func (s *AssistantService) GetUsageStats(_ context.Context, _ *assistantv1.GetUsageStatsRequest) (*assistantv1.GetUsageStatsResponse, error) {
	stats := s.stats.Stats()
	out := make([]*assistantv1.KeyUsage, 0, len(stats))
	for _, st := range stats {
		out = append(out, &assistantv1.KeyUsage{
			KeyId:       int32(st.ID),
			Requests:    st.Requests,
			Errors:      st.Errors,
			SuccessRate: st.SuccessRate,
		})
	}
	return &assistantv1.GetUsageStatsResponse{Keys: out}, nil
}

func (s *AssistantService) ExportQuiz(ctx context.Context, req *assistantv1.ExportQuizRequest) (*assistantv1.ExportQuizResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.ExportQuizXLSX(ctx, id)
	if err != nil {
		s.logger.Error("quiz export failed", "document_id", id, "error", err)
		return nil, status.Error(codes.Internal, "quiz export failed")
	}
	return &assistantv1.ExportQuizResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("quiz-%s.xlsx", id),
	}, nil
}

func (s *AssistantService) ExportUsageStats(_ context.Context, _ *assistantv1.ExportUsageStatsRequest) (*assistantv1.ExportUsageStatsResponse, error) {
	data, err := s.exporter.ExportUsageXLSX(s.stats.Stats())
	if err != nil {
		s.logger.Error("usage export failed", "error", err)
		return nil, status.Error(codes.Internal, "usage export failed")
	}
	return &assistantv1.ExportUsageStatsResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("usage-stats-%s.xlsx", time.Now().UTC().Format("2006-01-02")),
	}, nil
}
