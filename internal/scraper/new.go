package scraper

import (
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"brandtracker-api/config"
	"brandtracker-api/internal/model"
	pkgLog "brandtracker-api/pkg/log"
)

// requestTimeout bounds every outbound platform call.
const requestTimeout = 15 * time.Second

// Registry maps each source to its scraper.
type Registry map[model.Source]Scraper

// New builds scrapers for all known sources. Scrapers whose credentials are
// missing stay in the registry and return empty results.
func New(l pkgLog.Logger, cfg config.SourcesConfig) Registry {
	client := &http.Client{Timeout: requestTimeout}
	feeds := gofeed.NewParser()
	feeds.Client = client
	feeds.UserAgent = userAgent

	scrapers := []Scraper{
		newNewsAPI(l, client, cfg.NewsAPIKey),
		newReddit(l, client, cfg.RedditClientID, cfg.RedditClientSecret),
		newRSS(l, feeds),
		newYouTube(l, client, cfg.YouTubeAPIKey),
		newGoogleAlerts(l, feeds),
		newWikimedia(l, client),
	}

	reg := make(Registry, len(scrapers))
	for _, s := range scrapers {
		reg[s.Source()] = s
	}
	return reg
}
