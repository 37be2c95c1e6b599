// Package textutil slices document text into model-sized pieces: bounded
// chunks for map-reduce summarization, mid-document samples for quiz
// generation, and truncated context windows for QA.
package textutil

import (
	"strings"
)

// SplitChunks splits text into chunks of at most maxChars, breaking at line
// boundaries so structure survives. A single oversized chunk is re-split at
// chapter boundaries when any are detectable, else by raw size.
func SplitChunks(text string, maxChars int) []string {
	if maxChars <= 0 || len(text) <= maxChars {
		if t := strings.TrimSpace(text); t != "" {
			return []string{t}
		}
		return nil
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if current.Len()+len(line) > maxChars && current.Len() > 0 {
			if c := strings.TrimSpace(current.String()); c != "" {
				chunks = append(chunks, c)
			}
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if c := strings.TrimSpace(current.String()); c != "" {
		chunks = append(chunks, c)
	}

	// One long unbroken line: fall back to chapter boundaries, then raw size.
	if len(chunks) == 1 && len(text) > maxChars {
		if byChapter := splitAtChapters(text, maxChars); len(byChapter) > 1 {
			return byChapter
		}
		return splitBySize(text, maxChars)
	}
	return chunks
}

// CombineChunks merges adjacent chunks so at most maxChunks remain. Used to
// keep a long document within the provider's rate budget.
func CombineChunks(chunks []string, maxChunks int) []string {
	if maxChunks <= 0 || len(chunks) <= maxChunks {
		return chunks
	}
	factor := len(chunks)/maxChunks + 1
	combined := make([]string, 0, maxChunks)
	for i := 0; i < len(chunks); i += factor {
		end := i + factor
		if end > len(chunks) {
			end = len(chunks)
		}
		combined = append(combined, strings.Join(chunks[i:end], "\n\n"))
	}
	return combined
}

// Truncate caps text at maxChars, marking the cut.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}
	return text[:maxChars] + "..."
}

func splitAtChapters(text string, maxChars int) []string {
	positions := chapterPositions(text)
	if len(positions) == 0 {
		return splitBySize(text, maxChars)
	}

	var chunks []string
	start := 0
	for _, pos := range positions {
		for pos-start > maxChars {
			chunks = append(chunks, text[start:start+maxChars])
			start += maxChars
		}
		if pos > start {
			chunks = append(chunks, text[start:pos])
			start = pos
		}
	}
	if start < len(text) {
		chunks = append(chunks, text[start:])
	}

	out := chunks[:0]
	for _, c := range chunks {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func splitBySize(text string, maxChars int) []string {
	var chunks []string
	for i := 0; i < len(text); i += maxChars {
		end := i + maxChars
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
	}
	return chunks
}

// SampleMiddle picks paragraphs from the middle and later sections of the
// document, skipping front matter (preface, acknowledgments), so quiz
// questions come from actual content. Falls back to a window starting a
// quarter of the way in when the document has few paragraphs.
func SampleMiddle(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}

	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	if len(paragraphs) <= 3 {
		start := len(text) / 4
		end := start + maxChars
		if end > len(text) {
			end = len(text)
		}
		return text[start:end]
	}

	skip := len(paragraphs) / 4
	if skip > 5 {
		skip = 5
	}
	rest := paragraphs[skip:]

	// Middle third first, every few paragraphs for variety.
	midStart := len(rest) / 3
	midEnd := 2 * len(rest) / 3
	sampled := everyNth(rest[midStart:midEnd], 3)

	if joinedLen(sampled) < maxChars/2 && midEnd < len(rest) {
		sampled = append(sampled, everyNth(rest[midEnd:], 3)...)
	}
	if joinedLen(sampled) < maxChars/2 && len(rest) >= 3 {
		sampled = append(rest[:3:3], sampled...)
	}

	out := strings.Join(sampled, "\n\n")
	return Truncate(out, maxChars)
}

func everyNth(ps []string, n int) []string {
	if n < 1 {
		n = 1
	}
	var out []string
	for i := 0; i < len(ps); i += n {
		out = append(out, ps[i])
	}
	return out
}

func joinedLen(ps []string) int {
	n := 0
	for _, p := range ps {
		n += len(p) + 2
	}
	return n
}
