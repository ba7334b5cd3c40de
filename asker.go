package docent

import "context"

// Turn is a prior message as sent to the question answering service.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Question is a request to the question answering service.
type Question struct {
	Query   string
	History []Turn

	// FileContext is text extracted from a document uploaded in this turn.
	// It grounds the answer in addition to the service's own index.
	FileContext string
}

// Answer is a grounded response with the locators it was drawn from.
type Answer struct {
	Text    string
	Sources []string
}

// Asker provides natural language question answering over documentation.
type Asker interface {
	// Ask answers the question in the context of the conversation history.
	Ask(ctx context.Context, q *Question) (*Answer, error)
}

// HistoryTurns converts stored messages into question history.
// A user message that only carried a file is represented by its file name.
func HistoryTurns(msgs []*Message) []Turn {
	turns := make([]Turn, 0, len(msgs))
	for _, m := range msgs {
		content := m.Content
		if content == "" && m.Attachment != nil {
			content = "[attached " + m.Attachment.Name + "]"
		}
		if content == "" {
			continue
		}
		turns = append(turns, Turn{Role: m.Role, Content: content})
	}
	return turns
}
