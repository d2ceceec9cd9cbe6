package model

import (
	"fmt"
	"time"
)

// Brand represents a tracked entity: the brand, product or topic being
// monitored. Brands are created and edited through the HTTP API; the
// collection pipeline only reads them.
type Brand struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	LogoURL          string        `json:"logoUrl"`
	Keywords         []string      `json:"keywords"`
	IsActive         bool          `json:"isActive"`
	Sources          BrandSources  `json:"sources"`
	GoogleAlertFeeds []string      `json:"googleAlertFeeds"`
	Settings         BrandSettings `json:"settings"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// BrandSources flags which scrapers are enabled for a brand.
type BrandSources struct {
	NewsAPI      bool `json:"newsapi"`
	Reddit       bool `json:"reddit"`
	RSS          bool `json:"rss"`
	YouTube      bool `json:"youtube"`
	GoogleAlerts bool `json:"googleAlerts"`
	Wikimedia    bool `json:"wikimedia"`
}

// BrandSettings carries per-brand pipeline tunables.
type BrandSettings struct {
	SpikeThreshold         int `json:"spikeThreshold"`
	CollectIntervalMinutes int `json:"collectInterval"`
}

// Default brand settings.
const (
	DefaultSpikeThreshold         = 40
	DefaultCollectIntervalMinutes = 15
)

// Validate enforces the settings bounds from the data model.
func (s BrandSettings) Validate() error {
	if s.SpikeThreshold < 10 || s.SpikeThreshold > 100 {
		return fmt.Errorf("spike threshold must be between 10 and 100, got %d", s.SpikeThreshold)
	}
	if s.CollectIntervalMinutes < 5 || s.CollectIntervalMinutes > 60 {
		return fmt.Errorf("collect interval must be between 5 and 60 minutes, got %d", s.CollectIntervalMinutes)
	}
	return nil
}

// Enabled reports whether the given source is switched on for the brand.
func (s BrandSources) Enabled(src Source) bool {
	switch src {
	case SourceNewsAPI:
		return s.NewsAPI
	case SourceReddit:
		return s.Reddit
	case SourceRSS:
		return s.RSS
	case SourceYouTube:
		return s.YouTube
	case SourceGoogleAlerts:
		return s.GoogleAlerts
	case SourceWikimedia:
		return s.Wikimedia
	default:
		return false
	}
}
