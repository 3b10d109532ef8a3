package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/pagemark"
	pmhttp "github.com/pagemark/pagemark/http"
)

func urlset(urls ...string) string {
	body := `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`
	for _, u := range urls {
		body += "<url><loc>" + u + "</loc></url>"
	}
	return body + "</urlset>"
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemaps listed in robots.txt", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nSitemap: %s/sitemap.xml\n", server.URL)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(server.URL+"/a", server.URL+"/b"))
		})

		svc := pmhttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/a", server.URL + "/b"}, urls)
	})

	t.Run("falls back to /sitemap.xml without robots.txt", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				return
			}
			fmt.Fprint(w, urlset(server.URL+"/page"))
		})

		svc := pmhttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/page"}, urls)
	})

	t.Run("recurses into sitemap indexes and dedups", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", server.URL)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?><sitemapindex>
<sitemap><loc>%s/sitemap-1.xml</loc></sitemap>
<sitemap><loc>%s/sitemap-2.xml</loc></sitemap>
<sitemap><loc>%s/sitemap-1.xml</loc></sitemap>
</sitemapindex>`, server.URL, server.URL, server.URL)
		})
		mux.HandleFunc("/sitemap-1.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(server.URL+"/a", server.URL+"/shared"))
		})
		mux.HandleFunc("/sitemap-2.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(server.URL+"/b", server.URL+"/shared"))
		})

		svc := pmhttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{
			server.URL + "/a",
			server.URL + "/shared",
			server.URL + "/b",
		}, urls)
	})

	t.Run("base URL path restricts results to that subtree", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", server.URL)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(
				server.URL+"/docs/intro",
				server.URL+"/docs/guide",
				server.URL+"/documentation/other",
				server.URL+"/blog/post",
			))
		})

		svc := pmhttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL+"/docs", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{
			server.URL + "/docs/intro",
			server.URL + "/docs/guide",
		}, urls)
	})

	t.Run("applies the URL filter last", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", server.URL)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(server.URL+"/keep", server.URL+"/drop.pdf"))
		})

		filter := &pagemark.URLFilter{
			Exclude: []*regexp.Regexp{regexp.MustCompile(`\.pdf$`)},
		}
		svc := pmhttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL, filter)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/keep"}, urls)
	})

	t.Run("filter excluding everything yields an empty non-nil slice", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", server.URL)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(server.URL+"/a"))
		})

		filter := &pagemark.URLFilter{
			Exclude: []*regexp.Regexp{regexp.MustCompile(`.`)},
		}
		svc := pmhttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL, filter)
		require.NoError(t, err)
		require.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("site without sitemaps yields an empty non-nil slice", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(http.NotFound))
		defer server.Close()

		svc := pmhttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL, nil)
		require.NoError(t, err)
		require.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("invalid base URL is an error", func(t *testing.T) {
		t.Parallel()

		svc := pmhttp.NewSitemapService(nil)
		_, err := svc.DiscoverURLs(context.Background(), "://bad", nil)
		assert.Error(t, err)
	})
}
