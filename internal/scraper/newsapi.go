package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"brandtracker-api/internal/model"
	pkgLog "brandtracker-api/pkg/log"
)

const (
	newsAPIBase   = "https://newsapi.org/v2"
	newsAPIWindow = 7 * 24 * time.Hour
	newsAPIReach  = 1000
)

type newsAPIScraper struct {
	l      pkgLog.Logger
	client *http.Client
	apiKey string
	clock  func() time.Time
}

func newNewsAPI(l pkgLog.Logger, client *http.Client, apiKey string) *newsAPIScraper {
	return &newsAPIScraper{l: l, client: client, apiKey: apiKey, clock: time.Now}
}

func (s *newsAPIScraper) Source() model.Source { return model.SourceNewsAPI }

type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		Author      string `json:"author"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

func (s *newsAPIScraper) Fetch(ctx context.Context, b model.Brand) []model.MentionCandidate {
	if s.apiKey == "" {
		s.l.Debugf(ctx, "internal.scraper.newsapi.Fetch: api key not configured, skipping")
		return nil
	}

	params := url.Values{}
	params.Set("q", orQuery(b.Keywords))
	params.Set("apiKey", s.apiKey)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", "100")
	params.Set("from", s.clock().Add(-newsAPIWindow).Format(time.RFC3339))

	var resp newsAPIResponse
	if err := getJSON(ctx, s.client, newsAPIBase+"/everything?"+params.Encode(), nil, &resp); err != nil {
		s.l.Warnf(ctx, "internal.scraper.newsapi.Fetch.getJSON: %v", err)
		absorb(s.Source())
		return nil
	}
	if resp.Status == "error" {
		s.l.Warnf(ctx, "internal.scraper.newsapi.Fetch: api error: %s", resp.Message)
		absorb(s.Source())
		return nil
	}

	candidates := make([]model.MentionCandidate, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		author := a.Author
		if author == "" {
			author = a.Source.Name
		}
		publishedAt, _ := time.Parse(time.RFC3339, a.PublishedAt)

		candidates = append(candidates, model.MentionCandidate{
			Source:      model.SourceNewsAPI,
			Type:        model.TypeArticle,
			Text:        fmt.Sprintf("%s. %s", a.Title, a.Description),
			URL:         a.URL,
			Title:       a.Title,
			Author:      author,
			PublishedAt: publishedAt,
			Reach:       newsAPIReach,
			Metadata: map[string]any{
				"sourceName": a.Source.Name,
				"urlToImage": a.URLToImage,
			},
			IdentityKey: a.URL,
		})
	}
	return candidates
}
