package textutil

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Chapter is one detected heading and where it sits in the document.
type Chapter struct {
	Number int
	Title  string
	Line   int
}

var chapterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^chapter\s+(\d+)[:\s]+(.+)$`),
	regexp.MustCompile(`(?i)^section\s+(\d+)[:\s]+(.+)$`),
	regexp.MustCompile(`^(\d+)[.\s]\s*([A-Z][^.]*)$`),
}

// DetectChapters scans for common heading shapes ("Chapter 3: Title",
// "Section 2: Title", "4. Title") and returns them ordered by number.
func DetectChapters(text string) []Chapter {
	var chapters []Chapter
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, re := range chapterPatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			chapters = append(chapters, Chapter{
				Number: n,
				Title:  strings.TrimSpace(m[2]),
				Line:   i,
			})
			break
		}
	}
	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].Number < chapters[j].Number
	})
	return chapters
}

// chapterPositions returns sorted byte offsets of chapter headings.
func chapterPositions(text string) []int {
	var positions []int
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			for _, re := range chapterPatterns {
				if re.MatchString(trimmed) {
					positions = append(positions, offset)
					break
				}
			}
		}
		offset += len(line)
	}
	sort.Ints(positions)
	return positions
}

// ChapterText extracts the body of one detected chapter: from its heading
// line up to the next heading, or the end of the document.
func ChapterText(text string, ch Chapter) string {
	lines := strings.Split(text, "\n")
	if ch.Line < 0 || ch.Line >= len(lines) {
		return ""
	}
	end := len(lines)
	for i := ch.Line + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		for _, re := range chapterPatterns {
			if re.MatchString(trimmed) {
				end = i
				break
			}
		}
		if end == i {
			break
		}
	}
	return strings.Join(lines[ch.Line:end], "\n")
}
