package main

import (
	"fmt"

	"github.com/pagemark/pagemark"
)

// Run executes the keywords command. The output can be edited and passed
// back via 'pagemark extract --keyword-file'.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	for _, kw := range pagemark.DefaultFilterKeywords() {
		fmt.Fprintln(deps.Stdout, kw)
	}
	return nil
}
