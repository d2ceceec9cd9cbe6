package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"brandtracker-api/internal/alert/repository"
	"brandtracker-api/internal/mention"
	"brandtracker-api/internal/model"
	"brandtracker-api/internal/realtime"
	"brandtracker-api/pkg/metrics"
)

func (uc *usecase) Detect(ctx context.Context, b model.Brand) (*model.Alert, error) {
	mentions, err := uc.mentionUC.ListRecent(ctx, b.ID, mention.RecentOptions{
		Window: uc.cfg.Window,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Detect.ListRecent: %v", err)
		return nil, err
	}

	if len(mentions) < uc.cfg.MinMentions {
		return nil, nil
	}

	if a := uc.volumeSpike(b, mentions); a != nil {
		return uc.raise(ctx, a)
	}
	if a := uc.negativeSurge(b, mentions); a != nil {
		return uc.raise(ctx, a)
	}
	return nil, nil
}

// volumeSpike checks whether the latest hourly mention count is a statistical
// outlier: above mean plus SigmaFactor standard deviations and above
// MeanFactor times the mean. Both gates must hold so that a flat history with
// near-zero deviation does not alert on trivial increases.
func (uc *usecase) volumeSpike(b model.Brand, mentions []model.Mention) *model.Alert {
	counts := hourlyCounts(mentions)
	if len(counts) < 2 {
		return nil
	}

	mean, stddev := meanStddev(counts)
	latest := float64(counts[len(counts)-1])
	threshold := mean + uc.cfg.SigmaFactor*stddev

	if latest <= threshold || latest <= mean*uc.cfg.MeanFactor {
		return nil
	}

	return &model.Alert{
		BrandID:  b.ID,
		Type:     model.AlertSpike,
		Severity: model.SeverityHigh,
		Title:    "Conversation Spike Detected",
		Message: fmt.Sprintf("Unusual activity: %d mentions in the last hour (average: %d)",
			int(latest), int(math.Round(mean))),
		Metadata: map[string]any{
			"currentCount":    int(latest),
			"averageCount":    int(math.Round(mean)),
			"threshold":       int(math.Round(threshold)),
			"percentIncrease": int(math.Round((latest - mean) / mean * 100)),
		},
		TriggeredAt: uc.clock(),
	}
}

// negativeSurge checks whether negative sentiment dominates the most recent
// mentions. The input is newest first, so the sample is a prefix.
func (uc *usecase) negativeSurge(b model.Brand, mentions []model.Mention) *model.Alert {
	sample := mentions
	if len(sample) > uc.cfg.SurgeSampleSize {
		sample = sample[:uc.cfg.SurgeSampleSize]
	}
	if len(sample) <= uc.cfg.SurgeMinSample {
		return nil
	}

	negative := 0
	for _, m := range sample {
		if m.Sentiment == model.SentimentNegative {
			negative++
		}
	}
	ratio := float64(negative) / float64(len(sample))
	if ratio <= uc.cfg.SurgeNegativeRatio {
		return nil
	}

	return &model.Alert{
		BrandID:  b.ID,
		Type:     model.AlertNegativeSurge,
		Severity: model.SeverityHigh,
		Title:    "Negative Sentiment Surge",
		Message:  fmt.Sprintf("%d%% of recent mentions are negative", int(math.Round(ratio*100))),
		Metadata: map[string]any{
			"negativeRatio": math.Round(ratio*100) / 100,
			"negativeCount": negative,
			"totalMentions": len(sample),
		},
		TriggeredAt: uc.clock(),
	}
}

func (uc *usecase) raise(ctx context.Context, a *model.Alert) (*model.Alert, error) {
	created, err := uc.repo.Create(ctx, repository.CreateOptions{Alert: *a})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Detect.Create: %v", err)
		return nil, err
	}

	metrics.AlertsRaised.WithLabelValues(string(created.Type)).Inc()
	uc.publisher.Publish(ctx, created.BrandID, realtime.EventNewAlert, created)
	uc.l.Infof(ctx, "internal.alert.usecase.Detect: %s alert raised for brand %s", created.Type, created.BrandID)

	return &created, nil
}

// hourlyCounts buckets mentions by the hour they were collected and returns
// the counts in chronological order.
func hourlyCounts(mentions []model.Mention) []int {
	buckets := make(map[time.Time]int)
	for _, m := range mentions {
		buckets[m.CreatedAt.Truncate(time.Hour)]++
	}

	hours := make([]time.Time, 0, len(buckets))
	for h := range buckets {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Before(hours[j]) })

	counts := make([]int, len(hours))
	for i, h := range hours {
		counts[i] = buckets[h]
	}
	return counts
}

func meanStddev(counts []int) (float64, float64) {
	sum := 0
	for _, c := range counts {
		sum += c
	}
	mean := float64(sum) / float64(len(counts))

	var sq float64
	for _, c := range counts {
		d := float64(c) - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(counts)))
}
