package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	assistantv1 "github.com/o-adebayo/pdf-assistant/gen/proto/assistant/v1"
	"github.com/o-adebayo/pdf-assistant/internal/async"
	"github.com/o-adebayo/pdf-assistant/internal/common"
)

// UploadDocument accepts a PDF and queues it for text extraction.
func (s *AssistantService) UploadDocument(ctx context.Context, req *assistantv1.UploadDocumentRequest) (*assistantv1.UploadDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		s.logger.Error("upload request missing filename")
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}

	s.logger.Info("starting upload", "filename", filename, "size", len(req.GetData()))
	res, err := s.ingestor.IngestUpload(ctx, filename, req.GetData())
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			return nil, status.Error(codes.InvalidArgument, appErr.Message)
		}
		s.logger.Error("upload failed", "filename", filename, "error", err)
		return nil, status.Error(codes.Internal, "upload failed")
	}

	if !res.Deduplicated || res.Reprocess {
		if err := s.queue.Enqueue(ctx, async.Job{
			DocumentID:  res.Document.ID,
			SubmittedAt: time.Now(),
		}); err != nil {
			s.logger.Error("enqueue failed", "document_id", res.Document.ID, "error", err)
			return nil, status.Error(codes.Internal, "failed to queue extraction")
		}
	}

	return &assistantv1.UploadDocumentResponse{
		Document:       toProtoDocument(res.Document),
		Deduplicated:   res.Deduplicated,
		ContentHashHex: res.HashHex,
	}, nil
}

func (s *AssistantService) GetDocument(ctx context.Context, req *assistantv1.GetDocumentRequest) (*assistantv1.GetDocumentResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "document not found")
	}

	resp := &assistantv1.GetDocumentResponse{Document: toProtoDocument(doc)}
	if req.GetIncludeText() {
		resp.Text = doc.Text
	}
	return resp, nil
}

func (s *AssistantService) ListDocuments(ctx context.Context, _ *assistantv1.ListDocumentsRequest) (*assistantv1.ListDocumentsResponse, error) {
	docs, err := s.docs.List(ctx)
	if err != nil {
		s.logger.Error("list documents failed", "error", err)
		return nil, status.Error(codes.Internal, "list documents failed")
	}

	out := make([]*assistantv1.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toProtoDocument(doc))
	}
	return &assistantv1.ListDocumentsResponse{Documents: out}, nil
}

func (s *AssistantService) DeleteDocument(ctx context.Context, req *assistantv1.DeleteDocumentRequest) (*assistantv1.DeleteDocumentResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	if err := s.ingestor.Remove(ctx, id); err != nil {
		return nil, storeErr(err, "document not found")
	}
	return &assistantv1.DeleteDocumentResponse{}, nil
}
