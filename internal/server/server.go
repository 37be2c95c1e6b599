// Package server exposes the assistant over gRPC.
package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	assistantv1 "github.com/o-adebayo/pdf-assistant/gen/proto/assistant/v1"
	"github.com/o-adebayo/pdf-assistant/internal/assistant"
	"github.com/o-adebayo/pdf-assistant/internal/async"
	"github.com/o-adebayo/pdf-assistant/internal/common"
	"github.com/o-adebayo/pdf-assistant/internal/credential"
	"github.com/o-adebayo/pdf-assistant/internal/export"
	"github.com/o-adebayo/pdf-assistant/internal/ingest"
	"github.com/o-adebayo/pdf-assistant/internal/store"
)

// StatsSource reports per-key usage counters; implemented by the dispatcher.
type StatsSource interface {
	Stats() []credential.KeyStats
}

type AssistantService struct {
	assistantv1.UnimplementedAssistantServiceServer

	ingestor   *ingest.Usecase
	queue      async.Queue
	docs       store.DocumentRepository
	arts       store.ArtifactRepository
	summarizer *assistant.Summarizer
	quizzer    *assistant.Quizzer
	answerer   *assistant.Answerer
	exporter   *export.Service
	stats      StatsSource
	modelName  string
	logger     *slog.Logger
}

type Deps struct {
	Ingestor   *ingest.Usecase
	Queue      async.Queue
	Docs       store.DocumentRepository
	Arts       store.ArtifactRepository
	Summarizer *assistant.Summarizer
	Quizzer    *assistant.Quizzer
	Answerer   *assistant.Answerer
	Exporter   *export.Service
	Stats      StatsSource
	ModelName  string
}

func NewAssistantService(d Deps, logger *slog.Logger) *AssistantService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssistantService{
		ingestor:   d.Ingestor,
		queue:      d.Queue,
		docs:       d.Docs,
		arts:       d.Arts,
		summarizer: d.Summarizer,
		quizzer:    d.Quizzer,
		answerer:   d.Answerer,
		exporter:   d.Exporter,
		stats:      d.Stats,
		modelName:  d.ModelName,
		logger:     logger,
	}
}

func parseDocumentID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	return parsed, nil
}

// storeErr maps repository errors onto gRPC codes.
func storeErr(err error, notFoundMsg string) error {
	if errors.Is(err, common.ErrNotFound) {
		return status.Error(codes.NotFound, notFoundMsg)
	}
	return status.Error(codes.Internal, "storage failure")
}

func toProtoDocument(doc *store.Document) *assistantv1.Document {
	return &assistantv1.Document{
		Id:         doc.ID.String(),
		Filename:   doc.Filename,
		FileExt:    doc.FileExt,
		FileSize:   doc.FileSize,
		PageCount:  int32(doc.PageCount),
		Status:     string(doc.Status),
		UploadedAt: doc.UploadedAt.UTC().Format(time.RFC3339),
	}
}
