package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"brandtracker-api/internal/model"
	"brandtracker-api/pkg/metrics"
)

// maxTextLength bounds candidate text before storage.
const maxTextLength = 1000

const userAgent = "BrandTracker/1.0"

var stripPolicy = bluemonday.StrictPolicy()

// orQuery joins keywords into the OR search expression every platform accepts.
func orQuery(keywords []string) string {
	return strings.Join(keywords, " OR ")
}

// truncate cuts s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// stripHTML removes markup and collapses whitespace.
func stripHTML(s string) string {
	return strings.Join(strings.Fields(stripPolicy.Sanitize(s)), " ")
}

// extractDomain pulls a bare hostname out of a URL for use as an author.
func extractDomain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "Unknown"
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// getJSON performs a GET with the shared User-Agent and decodes the body.
func getJSON(ctx context.Context, client *http.Client, rawURL string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// absorb records a scraper failure and stands in for an empty result.
func absorb(src model.Source) {
	metrics.ScrapeErrors.WithLabelValues(string(src)).Inc()
}
