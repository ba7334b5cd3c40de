package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/docent"
	main "github.com/fwojciec/docent/cmd/docent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knowledgeService fakes the remote crawl and chat endpoints.
func knowledgeService(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /crawl", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"new_units": 3})
	})
	mux.HandleFunc("POST /chat", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query string `json:"query"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"answer":  "Answer to: " + body.Query,
			"sources": []string{"https://htmx.org/docs"},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	m.GeminiAPIKey = ""
	return m
}

func TestMain_Run_HelpShowsCommands(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	err := newMain(t).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	for _, cmd := range []string{"ask", "list", "show", "delete"} {
		assert.Contains(t, stdout.String(), cmd)
	}
}

func TestMain_Run_NoArgsReturnsError(t *testing.T) {
	t.Parallel()

	err := newMain(t).Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_ListEmpty(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	err := newMain(t).Run(context.Background(), []string{"list"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No conversations found")
}

func TestMain_Run_Conversation(t *testing.T) {
	t.Parallel()

	srv := knowledgeService(t)
	m := newMain(t)
	ctx := context.Background()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(ctx, []string{"ask", "Learn https://htmx.org", "--url", srv.URL}, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Answer to: Learn https://htmx.org")
	assert.Contains(t, stdout.String(), "1. https://htmx.org/docs")

	idx := strings.Index(stdout.String(), "--session ")
	require.NotEqual(t, -1, idx)
	id := strings.TrimSpace(stdout.String()[idx+len("--session "):])

	stdout.Reset()
	err = newMainAt(m.DBPath).Run(ctx, []string{"ask", "--session", id, "What is hx-get?", "--url", srv.URL}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Answer to: What is hx-get?")
	assert.NotContains(t, stdout.String(), "Continue with")

	stdout.Reset()
	err = newMainAt(m.DBPath).Run(ctx, []string{"list"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), id)
	assert.Contains(t, stdout.String(), "Learn https://htmx.org")

	stdout.Reset()
	err = newMainAt(m.DBPath).Run(ctx, []string{"show", id}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "You: Learn https://htmx.org")
	assert.Contains(t, out, "You: What is hx-get?")
	assert.Equal(t, 2, strings.Count(out, "Assistant:"))

	stdout.Reset()
	err = newMainAt(m.DBPath).Run(ctx, []string{"delete", id, "--force"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Deleted conversation")
}

func TestMain_Run_AskWithLocalExtraction(t *testing.T) {
	t.Parallel()

	srv := knowledgeService(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hx-boost upgrades links."), 0o644))

	stdout := &bytes.Buffer{}
	err := newMain(t).Run(context.Background(),
		[]string{"ask", "--file", path, "--extract", "local", "--url", srv.URL, "What does it say?"},
		stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Answer to: What does it say?")
}

func TestMain_Run_GeminiBackendRequiresKey(t *testing.T) {
	t.Parallel()

	stderr := &bytes.Buffer{}
	err := newMain(t).Run(context.Background(), []string{"ask", "hi", "--backend", "gemini"}, &bytes.Buffer{}, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestMain_Run_ShowUnknownConversation(t *testing.T) {
	t.Parallel()

	stderr := &bytes.Buffer{}
	err := newMain(t).Run(context.Background(), []string{"show", "missing"}, &bytes.Buffer{}, stderr)

	require.Error(t, err)
	assert.Equal(t, docent.ENOTFOUND, docent.ErrorCode(err))
	assert.Contains(t, stderr.String(), "not found")
}

func newMainAt(dbPath string) *main.Main {
	m := main.NewMain()
	m.DBPath = dbPath
	m.GeminiAPIKey = ""
	return m
}
