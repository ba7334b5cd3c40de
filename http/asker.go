package http

import (
	"context"

	"github.com/fwojciec/docent"
)

// Ensure Client implements docent.Asker at compile time.
var _ docent.Asker = (*Client)(nil)

// roleAI is the service's name for assistant turns.
const roleAI = "ai"

type chatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Query       string     `json:"query"`
	History     []chatTurn `json:"history"`
	FileContext string     `json:"file_context,omitempty"`
}

type chatResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// Ask sends the question and history to the service's chat endpoint.
func (c *Client) Ask(ctx context.Context, q *docent.Question) (*docent.Answer, error) {
	if q == nil || q.Query == "" {
		return nil, docent.Errorf(docent.EINVALID, "question required")
	}

	req := chatRequest{
		Query:       q.Query,
		History:     make([]chatTurn, 0, len(q.History)),
		FileContext: q.FileContext,
	}
	for _, t := range q.History {
		role := string(docent.RoleUser)
		if t.Role == docent.RoleAssistant {
			role = roleAI
		}
		req.History = append(req.History, chatTurn{Role: role, Content: t.Content})
	}

	var resp chatResponse
	if err := c.postJSON(ctx, "/chat", req, &resp); err != nil {
		return nil, err
	}
	if resp.Answer == "" {
		return nil, docent.Errorf(docent.EINTERNAL, "knowledge service returned an empty answer")
	}

	return &docent.Answer{Text: resp.Answer, Sources: resp.Sources}, nil
}
