package main

import (
	"fmt"

	"github.com/fwojciec/docent"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docent.Errorf(docent.EINVALID, "use --force to confirm deletion")
	}

	err := deps.Sessions.DeleteSession(deps.Ctx, c.ID)
	if docent.ErrorCode(err) == docent.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: conversation %q not found. Use 'docent list' to see conversations.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted conversation %s\n", c.ID)
	return nil
}
