package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"brandtracker-api/internal/model"
	pkgLog "brandtracker-api/pkg/log"
)

const (
	wikimediaAPI   = "https://en.wikipedia.org/w/api.php"
	wikimediaLimit = 10
	wikimediaReach = 5000
)

type wikimediaScraper struct {
	l      pkgLog.Logger
	client *http.Client
	clock  func() time.Time
}

func newWikimedia(l pkgLog.Logger, client *http.Client) *wikimediaScraper {
	return &wikimediaScraper{l: l, client: client, clock: time.Now}
}

func (s *wikimediaScraper) Source() model.Source { return model.SourceWikimedia }

type wikimediaResponse struct {
	Query struct {
		Search []struct {
			Title     string `json:"title"`
			PageID    int    `json:"pageid"`
			Snippet   string `json:"snippet"`
			Timestamp string `json:"timestamp"`
		} `json:"search"`
	} `json:"query"`
}

func (s *wikimediaScraper) Fetch(ctx context.Context, b model.Brand) []model.MentionCandidate {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "search")
	params.Set("srsearch", orQuery(b.Keywords))
	params.Set("srlimit", fmt.Sprint(wikimediaLimit))
	params.Set("srprop", "snippet|timestamp")

	var resp wikimediaResponse
	if err := getJSON(ctx, s.client, wikimediaAPI+"?"+params.Encode(), nil, &resp); err != nil {
		s.l.Warnf(ctx, "internal.scraper.wikimedia.Fetch.getJSON: %v", err)
		absorb(s.Source())
		return nil
	}

	candidates := make([]model.MentionCandidate, 0, len(resp.Query.Search))
	for _, result := range resp.Query.Search {
		publishedAt := s.clock()
		if result.Timestamp != "" {
			if t, err := time.Parse(time.RFC3339, result.Timestamp); err == nil {
				publishedAt = t
			}
		}

		candidates = append(candidates, model.MentionCandidate{
			Source:      model.SourceWikimedia,
			Type:        model.TypePage,
			Text:        stripHTML(result.Snippet),
			URL:         "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(result.Title, " ", "_"),
			Title:       result.Title,
			Author:      "Wikipedia Contributors",
			PublishedAt: publishedAt,
			Reach:       wikimediaReach,
			Metadata: map[string]any{
				"pageId": result.PageID,
			},
			IdentityKey: fmt.Sprintf("wiki-%d", result.PageID),
		})
	}
	return candidates
}
