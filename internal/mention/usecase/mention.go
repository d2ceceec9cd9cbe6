package usecase

import (
	"context"
	"time"

	"brandtracker-api/internal/mention"
	"brandtracker-api/internal/mention/repository"
	"brandtracker-api/internal/model"
	"brandtracker-api/pkg/metrics"
	"brandtracker-api/pkg/paginator"
)

func (uc *usecase) Ingest(ctx context.Context, brandID string, cand model.MentionCandidate) (model.Mention, error) {
	if brandID == "" {
		return model.Mention{}, mention.ErrBrandRequired
	}
	if cand.Text == "" || cand.ContentHash == "" {
		return model.Mention{}, mention.ErrEmptyCandidate
	}

	exists, err := uc.repo.ExistsByHash(ctx, brandID, cand.ContentHash)
	if err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.Ingest.ExistsByHash: %v", err)
		return model.Mention{}, err
	}
	if exists {
		metrics.MentionsDuplicate.Inc()
		return model.Mention{}, mention.ErrDuplicateMention
	}

	res := uc.analyzer.Score(cand.Text)

	metadata := cand.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["sentimentConfidence"] = res.Confidence

	m := model.Mention{
		BrandID:        brandID,
		Source:         cand.Source,
		Type:           cand.Type,
		Text:           cand.Text,
		URL:            cand.URL,
		Title:          cand.Title,
		Author:         cand.Author,
		Sentiment:      model.Sentiment(res.Label),
		SentimentScore: res.Score,
		Reach:          cand.Reach,
		Engagement:     cand.Engagement,
		Metadata:       metadata,
		PublishedAt:    cand.PublishedAt,
		CollectedAt:    time.Now(),
		ContentHash:    cand.ContentHash,
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{Mention: m})
	if err != nil {
		// Two sweeps can race past the hash pre-check; the unique index is
		// the authority and folds the loser into the duplicate outcome.
		if err == repository.ErrDuplicate {
			metrics.MentionsDuplicate.Inc()
			return model.Mention{}, mention.ErrDuplicateMention
		}
		uc.l.Errorf(ctx, "internal.mention.usecase.Ingest.Create: %v", err)
		return model.Mention{}, err
	}

	metrics.MentionsPersisted.WithLabelValues(string(created.Source)).Inc()
	return created, nil
}

func (uc *usecase) List(ctx context.Context, ip mention.ListInput) (mention.ListOutput, error) {
	ip.Adjust()

	mentions, total, err := uc.repo.List(ctx, repository.ListOptions{
		BrandID:   ip.BrandID,
		Source:    ip.Source,
		Sentiment: ip.Sentiment,
		Limit:     ip.Limit,
		Skip:      ip.Skip,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.List.List: %v", err)
		return mention.ListOutput{}, err
	}

	return mention.ListOutput{
		Mentions:  mentions,
		Paginator: paginator.New(ip.PaginateQuery, total),
	}, nil
}

func (uc *usecase) Stats(ctx context.Context, brandID string) (mention.StatsOutput, error) {
	if brandID == "" {
		return mention.StatsOutput{}, mention.ErrBrandRequired
	}

	out, err := uc.repo.Stats(ctx, brandID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.Stats.Stats: %v", err)
		return mention.StatsOutput{}, err
	}
	return out, nil
}

func (uc *usecase) Trends(ctx context.Context, brandID, period string) ([]mention.TrendBucket, error) {
	if brandID == "" {
		return nil, mention.ErrBrandRequired
	}

	window := 24 * time.Hour
	if period == "7d" {
		window = 7 * 24 * time.Hour
	}

	buckets, err := uc.repo.Trends(ctx, brandID, time.Now().Add(-window))
	if err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.Trends.Trends: %v", err)
		return nil, err
	}
	return buckets, nil
}

func (uc *usecase) ListRecent(ctx context.Context, brandID string, opts mention.RecentOptions) ([]model.Mention, error) {
	if brandID == "" {
		return nil, mention.ErrBrandRequired
	}

	mentions, err := uc.repo.ListRecent(ctx, brandID, time.Now().Add(-opts.Window), opts.Limit)
	if err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.ListRecent.ListRecent: %v", err)
		return nil, err
	}
	return mentions, nil
}

func (uc *usecase) AssignTopic(ctx context.Context, ids []string, topic string, keywords []string) error {
	if err := uc.repo.UpdateTopic(ctx, ids, topic, keywords); err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.AssignTopic.UpdateTopic: %v", err)
		return err
	}
	return nil
}
