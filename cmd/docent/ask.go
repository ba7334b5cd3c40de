package main

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/fwojciec/docent"
	"github.com/fwojciec/docent/chat"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	var file *docent.File
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot read %s\n", c.File)
			return fmt.Errorf("failed to read file: %w", err)
		}
		name := filepath.Base(c.File)
		file = &docent.File{
			Name:        name,
			ContentType: mime.TypeByExtension(filepath.Ext(name)),
			Data:        data,
		}
	}

	result, err := deps.Orchestrator.HandleTurn(deps.Ctx, chat.TurnRequest{
		SessionID:     c.Session,
		Text:          c.Text,
		File:          file,
		ReferenceMode: c.Reference,
		Depth:         c.Depth,
		Progress: func(line string) {
			fmt.Fprintln(deps.Stderr, line)
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			fmt.Fprintln(deps.Stderr, "error: canceled")
		case docent.ErrorCode(err) == docent.ENOTFOUND:
			fmt.Fprintf(deps.Stderr, "error: conversation %q not found. Use 'docent list' to see conversations.\n", c.Session)
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", docent.ErrorMessage(err))
		}
		return err
	}

	if n := len(result.Messages); n > 0 {
		renderAnswer(deps.Stdout, result.Messages[n-1])
	}
	if result.Created {
		fmt.Fprintf(deps.Stdout, "\nContinue with: docent ask --session %s\n", result.SessionID)
	}
	return nil
}
