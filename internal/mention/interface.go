package mention

import (
	"context"

	"brandtracker-api/internal/model"
)

// UseCase bundles mention ingestion and read operations.
type UseCase interface {
	// Ingest normalizes, scores and persists one candidate. A candidate whose
	// content hash is already stored is reported as a duplicate via
	// ErrDuplicateMention so callers can count it without treating it as a
	// failure.
	Ingest(ctx context.Context, brandID string, cand model.MentionCandidate) (model.Mention, error)

	List(ctx context.Context, ip ListInput) (ListOutput, error)
	Stats(ctx context.Context, brandID string) (StatsOutput, error)
	Trends(ctx context.Context, brandID, period string) ([]TrendBucket, error)

	// ListRecent returns mentions for a brand newer than the given window,
	// newest first, capped at limit. Used by the clusterer and spike detector.
	ListRecent(ctx context.Context, brandID string, opts RecentOptions) ([]model.Mention, error)

	// AssignTopic writes the clusterer's verdict back onto stored mentions.
	AssignTopic(ctx context.Context, ids []string, topic string, keywords []string) error
}
