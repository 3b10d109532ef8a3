package main

import (
	"fmt"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/batch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pagemark.ExtractionFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'pagemark extract --save' to create one.")
		return nil
	}

	for _, e := range extractions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %.2f  %s\n",
			e.ID, e.ExtractedAt.Format("2006-01-02 15:04"), e.Score, batch.TruncateURL(e.SourceURL, 60))
	}

	return nil
}
