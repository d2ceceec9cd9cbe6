package model

import "time"

// Source identifies the external platform a mention came from.
type Source string

// Known mention sources.
const (
	SourceNewsAPI      Source = "newsapi"
	SourceReddit       Source = "reddit"
	SourceRSS          Source = "rss"
	SourceYouTube      Source = "youtube"
	SourceGoogleAlerts Source = "google-alerts"
	SourceWikimedia    Source = "wikimedia"
)

// AllSources lists every known source in fan-out order.
var AllSources = []Source{
	SourceNewsAPI,
	SourceReddit,
	SourceRSS,
	SourceYouTube,
	SourceGoogleAlerts,
	SourceWikimedia,
}

// MentionType classifies the kind of content behind a mention.
type MentionType string

// Known mention types.
const (
	TypeArticle MentionType = "article"
	TypePost    MentionType = "post"
	TypeComment MentionType = "comment"
	TypeVideo   MentionType = "video"
	TypePage    MentionType = "page"
)

// Sentiment is the assigned sentiment label.
type Sentiment string

// Sentiment labels.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Engagement holds per-platform interaction counters.
type Engagement struct {
	Likes    int `json:"likes"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
	Replies  int `json:"replies"`
}

// MentionCandidate is the transient shape scrapers produce before
// normalization. IdentityKey must be derived from source-stable fields
// (canonical URL, platform post id) so that two fetches of the same
// underlying item always carry the same key; it is the sole dedup input.
type MentionCandidate struct {
	Source      Source
	Type        MentionType
	Text        string
	URL         string
	Title       string
	Author      string
	PublishedAt time.Time
	Reach       int
	Engagement  Engagement
	Metadata    map[string]any
	IdentityKey string

	// ContentHash is filled by the normalizer from IdentityKey.
	ContentHash string
}

// Mention is one normalized, deduplicated, sentiment-scored item observed
// from a source. Created once by ingestion; only topic and keywords are
// mutated afterwards, by the clusterer.
type Mention struct {
	ID      string `json:"id"`
	BrandID string `json:"brandId"`

	Source Source      `json:"source"`
	Type   MentionType `json:"type"`
	Text   string      `json:"text"`
	URL    string      `json:"url"`
	Title  string      `json:"title,omitempty"`
	Author string      `json:"author,omitempty"`

	Sentiment      Sentiment `json:"sentiment"`
	SentimentScore float64   `json:"sentimentScore"`

	Topic    string   `json:"topic,omitempty"`
	Keywords []string `json:"keywords,omitempty"`

	Reach      int        `json:"reach"`
	Engagement Engagement `json:"engagement"`

	Metadata map[string]any `json:"metadata,omitempty"`

	PublishedAt time.Time `json:"publishedAt"`
	CollectedAt time.Time `json:"collectedAt"`

	ContentHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
