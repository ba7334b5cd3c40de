package main

import (
	"fmt"

	"github.com/fwojciec/docent"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	session, err := deps.Sessions.FindSessionByID(deps.Ctx, c.ID)
	if docent.ErrorCode(err) == docent.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: conversation %q not found. Use 'docent list' to see conversations.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docent.ErrorMessage(err))
		return err
	}

	msgs, err := deps.Sessions.FindMessages(deps.Ctx, session.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n", session.Title)
	for _, msg := range msgs {
		fmt.Fprintln(deps.Stdout)
		renderMessage(deps.Stdout, msg)
	}
	return nil
}
