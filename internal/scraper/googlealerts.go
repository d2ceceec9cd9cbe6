package scraper

import (
	"context"
	"net/url"

	"github.com/mmcdole/gofeed"

	"brandtracker-api/internal/model"
	pkgLog "brandtracker-api/pkg/log"
)

const googleAlertsReach = 1000

type googleAlertsScraper struct {
	l      pkgLog.Logger
	parser *gofeed.Parser
}

func newGoogleAlerts(l pkgLog.Logger, parser *gofeed.Parser) *googleAlertsScraper {
	return &googleAlertsScraper{l: l, parser: parser}
}

func (s *googleAlertsScraper) Source() model.Source { return model.SourceGoogleAlerts }

func (s *googleAlertsScraper) Fetch(ctx context.Context, b model.Brand) []model.MentionCandidate {
	if len(b.GoogleAlertFeeds) == 0 {
		return nil
	}

	var candidates []model.MentionCandidate
	for _, feedURL := range b.GoogleAlertFeeds {
		feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			s.l.Warnf(ctx, "internal.scraper.googlealerts.Fetch.ParseURL: %s: %v", feedURL, err)
			absorb(s.Source())
			continue
		}

		for _, item := range feed.Items {
			actualURL := unwrapAlertURL(item.Link)
			text := stripHTML(item.Content)
			if text == "" {
				text = stripHTML(item.Description)
			}
			if text == "" {
				text = item.Title
			}

			candidates = append(candidates, model.MentionCandidate{
				Source:      model.SourceGoogleAlerts,
				Type:        model.TypeArticle,
				Text:        truncate(text, maxTextLength),
				URL:         actualURL,
				Title:       item.Title,
				Author:      extractDomain(actualURL),
				PublishedAt: feedTime(item),
				Reach:       googleAlertsReach,
				IdentityKey: actualURL,
			})
		}
	}
	return candidates
}

// unwrapAlertURL extracts the destination from Google's redirect wrapper.
// Alert items link through google.com/url?url=<target>; the target is what
// identifies the underlying article.
func unwrapAlertURL(wrapped string) string {
	u, err := url.Parse(wrapped)
	if err != nil {
		return wrapped
	}
	if actual := u.Query().Get("url"); actual != "" {
		return actual
	}
	return wrapped
}
