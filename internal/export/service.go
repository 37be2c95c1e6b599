package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/o-adebayo/pdf-assistant/constants"
	"github.com/o-adebayo/pdf-assistant/internal/assistant"
	"github.com/o-adebayo/pdf-assistant/internal/credential"
	"github.com/o-adebayo/pdf-assistant/internal/store"
)

// Service is a tiny façade over the repositories that produces XLSX bytes
// for quiz and usage exports.
type Service struct {
	docs   store.DocumentRepository
	arts   store.ArtifactRepository
	logger *slog.Logger
}

func NewService(docs store.DocumentRepository, arts store.ArtifactRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, arts: arts, logger: logger}
}

// ExportQuizXLSX returns an XLSX workbook with the latest stored quiz for a
// document, one question per row.
func (s *Service) ExportQuizXLSX(ctx context.Context, docID uuid.UUID) ([]byte, error) {
	start := time.Now()

	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	arts, err := s.arts.ListByDocument(ctx, docID, constants.ArtifactQuiz)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	if len(arts) == 0 {
		return nil, fmt.Errorf("no quiz stored for document %s", docID)
	}

	var questions []assistant.Question
	if err := json.Unmarshal([]byte(arts[0].Content), &questions); err != nil {
		return nil, fmt.Errorf("decode stored quiz: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Quiz"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"#", "Question", "Option A", "Option B", "Option C", "Option D", "Answer"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for i, q := range questions {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, i+1)
		write(2, q.Question)
		for j := 0; j < 4; j++ {
			if j < len(q.Options) {
				write(3+j, q.Options[j])
			} else {
				write(3+j, "")
			}
		}
		write(7, q.Answer)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 5)
	_ = f.SetColWidth(sheet, "B", "B", 60)
	_ = f.SetColWidth(sheet, "C", "F", 30)
	_ = f.SetColWidth(sheet, "G", "G", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.quiz.ok",
		"document_id", docID.String(),
		"filename", doc.Filename,
		"questions", len(questions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportUsageXLSX returns an XLSX workbook with per-key API usage counters.
func (s *Service) ExportUsageXLSX(stats []credential.KeyStats) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Usage"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Key", "Requests", "Errors", "Success Rate"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, st := range stats {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, fmt.Sprintf("key_%d", st.ID))
		write(2, st.Requests)
		write(3, st.Errors)
		write(4, fmt.Sprintf("%.1f%%", st.SuccessRate*100))
	}

	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "D", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
