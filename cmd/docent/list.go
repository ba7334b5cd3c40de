package main

import (
	"fmt"

	"github.com/fwojciec/docent"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	sessions, err := deps.Sessions.FindSessions(deps.Ctx, docent.SessionFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docent.ErrorMessage(err))
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversations found. Use 'docent ask' to start one.")
		return nil
	}

	for _, s := range sessions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04"), s.Title)
	}

	return nil
}
