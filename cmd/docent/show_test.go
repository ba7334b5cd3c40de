package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docent"
	main "github.com/fwojciec/docent/cmd/docent"
	"github.com/fwojciec/docent/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	sessions := &mock.SessionService{
		FindSessionByIDFn: func(ctx context.Context, id string) (*docent.Session, error) {
			return &docent.Session{ID: id, Title: "guide.pdf"}, nil
		},
		FindMessagesFn: func(ctx context.Context, id string) ([]*docent.Message, error) {
			return []*docent.Message{
				{Role: docent.RoleUser, Attachment: &docent.Attachment{Name: "guide.pdf"}},
				{Role: docent.RoleAssistant, Content: "It explains setup.", Sources: []string{"Uploaded File"}},
			}, nil
		},
	}

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Sessions: sessions}

	err := (&main.ShowCmd{ID: "s1"}).Run(deps)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "# guide.pdf")
	assert.Contains(t, out, "You: [guide.pdf]")
	assert.Contains(t, out, "It explains setup.")
	assert.Contains(t, out, "1. Uploaded File")
}
