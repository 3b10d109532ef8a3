package slog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/mock"
	pmslog "github.com/pagemark/pagemark/slog"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetches at debug level", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
			CloseFn: func() error { return nil },
		}
		logger, buf := testLogger()
		fetcher := pmslog.NewFetcher(next, logger)

		html, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "msg=fetch")
		assert.Contains(t, out, "url=https://example.com")
		assert.Contains(t, out, "bytes=13")

		require.NoError(t, fetcher.Close())
	})

	t.Run("logs failures and propagates the error", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", pagemark.Errorf(pagemark.EINTERNAL, "connection refused")
			},
		}
		logger, buf := testLogger()
		fetcher := pmslog.NewFetcher(next, logger)

		_, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)

		out := buf.String()
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "msg=\"fetch failed\"")
	})
}
