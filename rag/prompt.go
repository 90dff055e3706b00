package rag

import (
	"fmt"
	"strings"

	"github.com/minutemind/minutemind/core"
)

const (
	// maxSnippetLen bounds each retrieved document's contribution to the
	// assembled context; longer documents are truncated with an ellipsis
	// marker.
	maxSnippetLen = 2000

	// noContextFallback is used when retrieval found no documents.
	noContextFallback = "No relevant context found for the question."
)

// AssembleContext builds the prompt context from ranked matches. Each
// document is truncated to maxSnippetLen characters and labeled with its
// rank and origin metadata; snippets are joined by blank lines.
func AssembleContext(matches core.QueryResult) string {
	if matches.Len() == 0 {
		return noContextFallback
	}

	parts := make([]string, 0, matches.Len())
	for i, doc := range matches.Documents {
		snippet := doc
		if runes := []rune(snippet); len(runes) > maxSnippetLen {
			snippet = string(runes[:maxSnippetLen]) + "..."
		}

		var meta core.ChunkMetadata
		if i < len(matches.Metadatas) {
			meta = matches.Metadatas[i]
		}
		parts = append(parts, fmt.Sprintf(
			"[chunk %d | title=%q meeting_id=%d chunk_index=%d]\n%s",
			i, meta.Title, meta.MeetingID, meta.ChunkIndex, snippet))
	}
	return strings.Join(parts, "\n\n")
}

// BuildPrompt constructs the instruction prompt for the completion service
// from the assembled context and the original question.
func BuildPrompt(contextText, question string) string {
	var b strings.Builder
	b.WriteString("You are given extracted meeting transcript chunks and a user question.\n\n")
	b.WriteString("Context:\n")
	b.WriteString(contextText)
	b.WriteString("\n\nQuestion:\n")
	b.WriteString(question)
	b.WriteString("\n\nProvide a concise answer based on the context. ")
	b.WriteString("Include action items, decisions, and references to chunk indices where relevant. ")
	b.WriteString("If the context is insufficient, say so.")
	return b.String()
}
