package assistant

import (
	"fmt"
	"strings"
)

func buildChunkSummaryPrompt(chunk string, num, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This is chunk %d of %d from a larger document. Provide a comprehensive summary of this section.\n\n", num, total)
	b.WriteString("IMPORTANT: Skip author information, preface, and acknowledgments; focus only on the actual content.\n\n")
	b.WriteString("Structure your summary like this:\n\n")
	fmt.Fprintf(&b, "## Section %d: [Section or Chapter Title]\n", num)
	b.WriteString("- **Main Topics**: [main topics covered]\n")
	b.WriteString("- **Key Concepts**: [important concepts, definitions, or theories]\n")
	b.WriteString("- **Key Points**: [3-5 most important points]\n\n")
	b.WriteString("Text to summarize:\n")
	b.WriteString(chunk)
	return b.String()
}

func buildCombinePrompt(summaries []string) string {
	var b strings.Builder
	b.WriteString("Combine and organize the following summaries into one comprehensive, well-structured summary. ")
	b.WriteString("Remove duplicate information, organize by chapters or major sections, create a coherent flow, ")
	b.WriteString("and add an overall summary at the end with the main themes and key takeaways.\n\n")
	b.WriteString("Summaries to combine:\n")
	b.WriteString(strings.Join(summaries, "\n\n"))
	return b.String()
}

func buildQuizPrompt(text string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple choice questions based on the following text.\n\n", n)
	b.WriteString("Requirements: focus exclusively on the main educational content; avoid questions about the author, ")
	b.WriteString("preface, or publication details; distribute questions across the material; mix definition, concept, ")
	b.WriteString("application, and comparison questions at different difficulty levels.\n\n")
	b.WriteString("For each question provide a clear question, four answer options, and the correct answer.\n\n")
	b.WriteString("Format your response as a JSON array with this structure:\n")
	b.WriteString(`[{"question": "Question text here?", "options": ["Option A", "Option B", "Option C", "Option D"], "answer": "Correct option text"}]` + "\n\n")
	b.WriteString("Text to base questions on:\n")
	b.WriteString(text)
	return b.String()
}

func buildAnswerPrompt(context, question string) string {
	var b strings.Builder
	b.WriteString("Based on the following context, answer the question accurately and concisely. ")
	b.WriteString("If the answer cannot be found in the context, say \"The answer cannot be found in the provided context.\"\n\n")
	b.WriteString("Context:\n")
	b.WriteString(context)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\nProvide a clear, direct answer based only on the information in the context.")
	return b.String()
}
