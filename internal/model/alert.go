package model

import "time"

// AlertType classifies what triggered an alert.
type AlertType string

// Alert types. The spike detector produces only AlertSpike and
// AlertNegativeSurge; the remaining types are reserved for future detectors.
const (
	AlertSpike          AlertType = "spike"
	AlertNegativeSurge  AlertType = "negative_surge"
	AlertTrendingTopic  AlertType = "trending_topic"
	AlertHighEngagement AlertType = "high_engagement"
)

// AlertSeverity grades an alert.
type AlertSeverity string

// Alert severities.
const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// Alert records statistically unusual activity for a brand. Created only by
// the spike detector; the read flag and deletion belong to the HTTP API.
type Alert struct {
	ID          string         `json:"id"`
	BrandID     string         `json:"brandId"`
	Type        AlertType      `json:"type"`
	Severity    AlertSeverity  `json:"severity"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	IsRead      bool           `json:"isRead"`
	TriggeredAt time.Time      `json:"triggeredAt"`
	CreatedAt   time.Time      `json:"createdAt"`
}
