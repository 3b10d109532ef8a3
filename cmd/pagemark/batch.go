package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/batch"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := c.collectURLs(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to extract.")
		return nil
	}

	deps.Runner.Config = pagemark.Config{Mode: pagemark.Mode(c.Mode)}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Extracting %d URLs...\n", event.Total)
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] ok      %s\n", event.Completed, event.Total, batch.TruncateURL(event.URL, 60))
		case batch.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "[%d/%d] skip    %s\n", event.Completed, event.Total, batch.TruncateURL(event.URL, 60))
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "[%d/%d] failed  %s: %v\n", event.Completed, event.Total, batch.TruncateURL(event.URL, 60), event.Error)
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d extracted, %d skipped, %d failed, %s",
		result.Extracted, result.Skipped, result.Failed, batch.FormatBytes(result.Bytes))
	if c.CountTokens {
		fmt.Fprintf(deps.Stdout, ", %s", batch.FormatTokens(result.Tokens))
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}

// collectURLs gathers URLs from arguments, a file, and sitemap discovery.
func (c *BatchCmd) collectURLs(deps *Dependencies) ([]string, error) {
	urls := append([]string(nil), c.URLs...)

	if c.FromFile != "" {
		f, err := os.Open(c.FromFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			urls = append(urls, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if c.Sitemap != "" {
		filter, err := c.urlFilter()
		if err != nil {
			return nil, err
		}
		discovered, err := deps.Runner.DiscoverURLs(deps.Ctx, c.Sitemap, filter)
		if err != nil {
			return nil, fmt.Errorf("sitemap discovery: %w", err)
		}
		urls = append(urls, discovered...)
	}

	return urls, nil
}

// urlFilter compiles the --filter patterns into a URLFilter.
func (c *BatchCmd) urlFilter() (*pagemark.URLFilter, error) {
	if len(c.Filter) == 0 {
		return nil, nil
	}
	var filter pagemark.URLFilter
	for _, pattern := range c.Filter {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, pagemark.Errorf(pagemark.EINVALID, "invalid filter pattern %q: %v", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	return &filter, nil
}
