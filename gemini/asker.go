// Package gemini provides Google Gemini implementations of docent services.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docent"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// FileSource is the citation attached to answers grounded in an uploaded file.
const FileSource = "Uploaded File"

// maxHistoryTurns bounds how much of the conversation is sent with a question.
const maxHistoryTurns = 4

// Ensure Asker implements docent.Asker at compile time.
var _ docent.Asker = (*Asker)(nil)

// Asker implements docent.Asker by calling Gemini directly.
// It has no index of its own: answers are grounded in the conversation and
// the uploaded file only.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model means DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Ask answers the question using the recent history and file context.
func (a *Asker) Ask(ctx context.Context, q *docent.Question) (*docent.Answer, error) {
	if q == nil || q.Query == "" {
		return nil, docent.Errorf(docent.EINVALID, "question required")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model, BuildContents(q), BuildConfig())
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, docent.Errorf(docent.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return nil, docent.Errorf(docent.EINTERNAL, "gemini returned an empty answer")
	}

	var sources []string
	if q.FileContext != "" {
		sources = []string{FileSource}
	}
	return &docent.Answer{Text: text, Sources: sources}, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about software documentation. " +
					"Answer based only on the conversation and the uploaded file provided. " +
					"If the answer is not there, say so. " +
					"Format code snippets as Markdown code blocks with a language identifier.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildContents turns the question into Gemini contents: the most recent
// history turns followed by the user prompt.
func BuildContents(q *docent.Question) []*genai.Content {
	history := q.History
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, t := range history {
		role := genai.RoleUser
		if t.Role == docent.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Content, genai.Role(role)))
	}
	contents = append(contents, genai.NewContentFromText(BuildUserPrompt(q), genai.RoleUser))
	return contents
}

// BuildUserPrompt builds the user prompt containing file context and question.
func BuildUserPrompt(q *docent.Question) string {
	var sb strings.Builder
	if q.FileContext != "" {
		sb.WriteString("<file>\n")
		sb.WriteString(q.FileContext)
		sb.WriteString("\n</file>\n\n")
	}
	fmt.Fprintf(&sb, "Question: %s", q.Query)
	return sb.String()
}
