package textutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-adebayo/pdf-assistant/internal/textutil"
)

func TestSplitChunks_ShortTextIsOneChunk(t *testing.T) {
	chunks := textutil.SplitChunks("hello world", 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello world", chunks[0])
}

func TestSplitChunks_EmptyText(t *testing.T) {
	assert.Empty(t, textutil.SplitChunks("   \n  ", 100))
}

func TestSplitChunks_BreaksAtLines(t *testing.T) {
	text := strings.Repeat("aaaa aaaa\n", 30) // 300 chars
	chunks := textutil.SplitChunks(text, 100)

	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 100)
	}
	// Nothing lost apart from whitespace trimming.
	joined := strings.Join(chunks, "\n")
	assert.Equal(t, strings.Count(text, "aaaa"), strings.Count(joined, "aaaa"))
}

func TestSplitChunks_SingleLongLineFallsBackToSize(t *testing.T) {
	text := strings.Repeat("x", 250)
	chunks := textutil.SplitChunks(text, 100)
	require.Len(t, chunks, 3)
	assert.Equal(t, 100, len(chunks[0]))
	assert.Equal(t, 50, len(chunks[2]))
}

func TestCombineChunks(t *testing.T) {
	chunks := []string{"a", "b", "c", "d", "e", "f", "g"}
	combined := textutil.CombineChunks(chunks, 3)
	assert.LessOrEqual(t, len(combined), 3)
	assert.Equal(t, "a\n\nb\n\nc", combined[0])

	// Already under the cap: untouched.
	assert.Equal(t, chunks, textutil.CombineChunks(chunks, 10))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", textutil.Truncate("abc", 10))
	assert.Equal(t, "abcde...", textutil.Truncate("abcdefgh", 5))
}

func TestDetectChapters(t *testing.T) {
	text := "Preface\n\nChapter 1: Getting Started\nsome content\nChapter 2: Advanced Topics\nmore\nSection 3: Appendix\n"
	chapters := textutil.DetectChapters(text)

	require.Len(t, chapters, 3)
	assert.Equal(t, 1, chapters[0].Number)
	assert.Equal(t, "Getting Started", chapters[0].Title)
	assert.Equal(t, 2, chapters[1].Number)
	assert.Equal(t, "Advanced Topics", chapters[1].Title)
	assert.Equal(t, 3, chapters[2].Number)
}

func TestDetectChapters_NumberedHeadings(t *testing.T) {
	chapters := textutil.DetectChapters("1. Introduction\nbody text here\n2. Methods\n")
	require.Len(t, chapters, 2)
	assert.Equal(t, "Introduction", chapters[0].Title)
}

func TestChapterText(t *testing.T) {
	text := "Chapter 1: One\nalpha\nbeta\nChapter 2: Two\ngamma\n"
	chapters := textutil.DetectChapters(text)
	require.Len(t, chapters, 2)

	body := textutil.ChapterText(text, chapters[0])
	assert.Contains(t, body, "alpha")
	assert.Contains(t, body, "beta")
	assert.NotContains(t, body, "gamma")

	last := textutil.ChapterText(text, chapters[1])
	assert.Contains(t, last, "gamma")
}

func TestSampleMiddle_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "short", textutil.SampleMiddle("short", 100))
}

func TestSampleMiddle_SkipsFrontMatter(t *testing.T) {
	var b strings.Builder
	b.WriteString("Preface thanks to everyone\n\nAcknowledgments more thanks\n\n")
	for i := 0; i < 40; i++ {
		b.WriteString("Content paragraph with substance number ")
		b.WriteString(strings.Repeat("w", 50))
		b.WriteString("\n\n")
	}
	sampled := textutil.SampleMiddle(b.String(), 800)

	assert.LessOrEqual(t, len(sampled), 803) // maxChars plus the cut marker
	assert.NotContains(t, sampled, "Preface")
}
