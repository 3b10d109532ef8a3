package main

import (
	"fmt"

	"github.com/pagemark/pagemark"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	extraction, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, extraction.Content)
	return nil
}
