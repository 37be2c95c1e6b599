package extract

import "context"

// Result is the output of one extraction run.
type Result struct {
	Text  string
	Pages int
}

// TextExtractor is the behavior the ingest pipeline depends on.
type TextExtractor interface {
	// ExtractText pulls the plain text out of a document's raw bytes.
	ExtractText(ctx context.Context, data []byte) (Result, error)
}
