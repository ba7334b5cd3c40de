package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docent"
	"github.com/fwojciec/docent/chat"
	main "github.com/fwojciec/docent/cmd/docent"
	"github.com/fwojciec/docent/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySessions is a mock session store that keeps messages in a slice.
func memorySessions() *mock.SessionService {
	var msgs []*docent.Message
	return &mock.SessionService{
		CreateSessionFn: func(ctx context.Context, s *docent.Session) error { return nil },
		AppendMessageFn: func(ctx context.Context, m *docent.Message) error {
			m.Position = len(msgs)
			msgs = append(msgs, m)
			return nil
		},
		FindMessagesFn: func(ctx context.Context, id string) ([]*docent.Message, error) {
			return msgs, nil
		},
	}
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints answer with sources and session hint", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(ctx context.Context, q *docent.Question) (*docent.Answer, error) {
				return &docent.Answer{Text: "useState is a React Hook.", Sources: []string{"https://react.dev/hooks"}}, nil
			},
		}
		orch := chat.NewOrchestrator(memorySessions(), nil, nil, asker, nil)
		orch.NewID = func() string { return "sess-1" }

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdout:       stdout,
			Stderr:       &bytes.Buffer{},
			Orchestrator: orch,
		}

		err := (&main.AskCmd{Text: "What is useState?"}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "useState is a React Hook.")
		assert.Contains(t, out, "Sources:")
		assert.Contains(t, out, "1. https://react.dev/hooks")
		assert.Contains(t, out, "docent ask --session sess-1")
	})

	t.Run("reports unknown conversation", func(t *testing.T) {
		t.Parallel()

		sessions := &mock.SessionService{
			FindMessagesFn: func(ctx context.Context, id string) ([]*docent.Message, error) {
				return []*docent.Message{}, nil
			},
			AppendMessageFn: func(ctx context.Context, m *docent.Message) error {
				return docent.Errorf(docent.ENOTFOUND, "session not found")
			},
		}
		orch := chat.NewOrchestrator(sessions, nil, nil, nil, nil)

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdout:       &bytes.Buffer{},
			Stderr:       stderr,
			Orchestrator: orch,
		}

		err := (&main.AskCmd{Session: "nope", Text: "hi"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), `conversation "nope" not found`)
	})

	t.Run("reports unreadable file", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.AskCmd{File: "/does/not/exist.pdf"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "cannot read")
	})
}
