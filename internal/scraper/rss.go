package scraper

import (
	"context"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"brandtracker-api/internal/model"
	pkgLog "brandtracker-api/pkg/log"
)

const rssReach = 500

// defaultFeeds is the fixed registry of tech and business feeds scanned for
// keyword matches.
var defaultFeeds = []string{
	"https://feeds.bbci.co.uk/news/technology/rss.xml",
	"https://techcrunch.com/feed/",
	"https://www.theverge.com/rss/index.xml",

	"https://feeds.bbci.co.uk/news/business/rss.xml",
	"https://www.cnbc.com/id/100003114/device/rss/rss.html",

	"https://economictimes.indiatimes.com/rssfeedstopstories.cms",
	"https://economictimes.indiatimes.com/industry/rssfeeds/13352306.cms",
	"https://www.moneycontrol.com/rss/latestnews.xml",

	"https://economictimes.indiatimes.com/industry/auto/rssfeeds/13352101.cms",
}

type rssScraper struct {
	l      pkgLog.Logger
	parser *gofeed.Parser
	feeds  []string
}

func newRSS(l pkgLog.Logger, parser *gofeed.Parser) *rssScraper {
	return &rssScraper{l: l, parser: parser, feeds: defaultFeeds}
}

func (s *rssScraper) Source() model.Source { return model.SourceRSS }

func (s *rssScraper) Fetch(ctx context.Context, b model.Brand) []model.MentionCandidate {
	var candidates []model.MentionCandidate

	for _, feedURL := range s.feeds {
		feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			// One dead feed must not cost the others.
			s.l.Warnf(ctx, "internal.scraper.rss.Fetch.ParseURL: %s: %v", feedURL, err)
			absorb(s.Source())
			continue
		}

		for _, item := range feed.Items {
			if !matchesAny(item.Title+" "+item.Description, b.Keywords) {
				continue
			}

			text := item.Description
			if text == "" {
				text = item.Title
			}
			author := feed.Title
			if item.Author != nil && item.Author.Name != "" {
				author = item.Author.Name
			}
			candidates = append(candidates, model.MentionCandidate{
				Source:      model.SourceRSS,
				Type:        model.TypeArticle,
				Text:        stripHTML(text),
				URL:         item.Link,
				Title:       item.Title,
				Author:      author,
				PublishedAt: feedTime(item),
				Reach:       rssReach,
				Metadata: map[string]any{
					"feedTitle":  feed.Title,
					"categories": item.Categories,
				},
				IdentityKey: item.Link,
			})
		}
	}
	return candidates
}

// matchesAny reports whether any keyword appears in the text,
// case-insensitively.
func matchesAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

func feedTime(item *gofeed.Item) (t time.Time) {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return
}
