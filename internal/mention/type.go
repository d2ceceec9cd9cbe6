package mention

import (
	"time"

	"brandtracker-api/internal/model"
	"brandtracker-api/pkg/paginator"
)

// ListInput filters the mention listing.
type ListInput struct {
	BrandID   string
	Source    string
	Sentiment string
	paginator.PaginateQuery
}

// ListOutput is one page of mentions.
type ListOutput struct {
	Mentions  []model.Mention
	Paginator paginator.Paginator
}

// RecentOptions bounds a recent-window query.
type RecentOptions struct {
	Window time.Duration
	Limit  int
}

// SentimentStat is one sentiment bucket of the stats aggregation.
type SentimentStat struct {
	Sentiment model.Sentiment `json:"sentiment"`
	Count     int             `json:"count"`
	AvgScore  float64         `json:"avgScore"`
}

// SourceStat is one source bucket of the stats aggregation.
type SourceStat struct {
	Source model.Source `json:"source"`
	Count  int          `json:"count"`
}

// StatsOutput aggregates mention counts for a brand.
type StatsOutput struct {
	Total     int64           `json:"total"`
	Sentiment []SentimentStat `json:"sentiment"`
	Sources   []SourceStat    `json:"sources"`
}

// TrendBucket is one hour-and-sentiment cell of the trends aggregation.
// Hour is formatted "2006-01-02 15:00" in UTC.
type TrendBucket struct {
	Hour      string          `json:"hour"`
	Sentiment model.Sentiment `json:"sentiment"`
	Count     int             `json:"count"`
}
