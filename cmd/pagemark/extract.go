package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pagemark/pagemark"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, sourceURL, err := c.readSource(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	cfg := pagemark.Config{
		Mode:                     pagemark.Mode(c.Mode),
		SourceURL:                sourceURL,
		Selection:                c.Selection,
		DisableBoundaryDetection: c.NoFilter,
	}
	if c.KeywordFile != "" {
		data, err := os.ReadFile(c.KeywordFile)
		if err != nil {
			return fmt.Errorf("reading keyword file: %w", err)
		}
		cfg.FilterKeywords = string(data)
	}

	result, err := deps.Engine.Extract(html, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if result.Fallback != "" {
		fmt.Fprintf(deps.Stderr, "warning: low-confidence extraction (%s fallback)\n", result.Fallback)
	}

	output := result.Text
	if c.JSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		output = string(data) + "\n"
	}

	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(output), 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	} else {
		fmt.Fprint(deps.Stdout, output)
	}

	if c.Save {
		extraction := &pagemark.Extraction{
			SourceURL: sourceURL,
			Title:     result.Context.Title,
			Content:   result.Text,
			Score:     result.Score,
			Engine:    c.Engine,
			Mode:      c.Mode,
		}
		if err := deps.Extractions.CreateExtraction(deps.Ctx, extraction); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved extraction %s\n", extraction.ID)
	}

	return nil
}

// readSource resolves the extract input: a URL via the fetcher, "-" via
// stdin, anything else as a file path.
func (c *ExtractCmd) readSource(deps *Dependencies) (html, sourceURL string, err error) {
	switch {
	case isURL(c.Source):
		html, err = deps.Fetcher.Fetch(deps.Ctx, c.Source)
		if err != nil {
			return "", "", err
		}
		return html, c.Source, nil

	case c.Source == "-":
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), c.URL, nil

	default:
		data, err := os.ReadFile(c.Source)
		if err != nil {
			return "", "", err
		}
		return string(data), c.URL, nil
	}
}

// isURL reports whether the source argument is a fetchable URL.
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
