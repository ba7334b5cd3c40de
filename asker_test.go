package docent_test

import (
	"testing"

	"github.com/fwojciec/docent"
	"github.com/stretchr/testify/assert"
)

func TestHistoryTurns(t *testing.T) {
	t.Parallel()

	t.Run("keeps order and roles", func(t *testing.T) {
		t.Parallel()

		turns := docent.HistoryTurns([]*docent.Message{
			{Role: docent.RoleUser, Content: "What is HTMX?"},
			{Role: docent.RoleAssistant, Content: "A library.", Sources: []string{"https://htmx.org"}},
		})

		assert.Equal(t, []docent.Turn{
			{Role: docent.RoleUser, Content: "What is HTMX?"},
			{Role: docent.RoleAssistant, Content: "A library."},
		}, turns)
	})

	t.Run("names file-only messages by attachment", func(t *testing.T) {
		t.Parallel()

		turns := docent.HistoryTurns([]*docent.Message{
			{Role: docent.RoleUser, Attachment: &docent.Attachment{Name: "notes.pdf"}},
		})

		assert.Equal(t, []docent.Turn{{Role: docent.RoleUser, Content: "[attached notes.pdf]"}}, turns)
	})

	t.Run("empty history yields empty turns", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docent.HistoryTurns(nil))
	})
}
