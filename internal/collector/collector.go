package collector

import (
	"context"
	"sync"

	"brandtracker-api/internal/mention"
	"brandtracker-api/internal/model"
	"brandtracker-api/internal/realtime"
	"brandtracker-api/internal/scraper"
	"brandtracker-api/pkg/clustering"
	"brandtracker-api/pkg/metrics"
)

func (uc *usecase) RunOneSweep(ctx context.Context) {
	start := uc.clock()

	brands, err := uc.brandRepo.ListActive(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.collector.RunOneSweep.ListActive: %v", err)
		return
	}
	if len(brands) == 0 {
		uc.l.Infof(ctx, "internal.collector.RunOneSweep: no active brands, nothing to collect")
		return
	}

	uc.l.Infof(ctx, "internal.collector.RunOneSweep: collecting for %d brand(s)", len(brands))

	for _, b := range brands {
		uc.collectBrand(ctx, b)
	}

	metrics.SweepDuration.Observe(uc.clock().Sub(start).Seconds())
	uc.l.Infof(ctx, "internal.collector.RunOneSweep: sweep complete in %s", uc.clock().Sub(start))
}

func (uc *usecase) collectBrand(ctx context.Context, b model.Brand) {
	candidates := uc.fanOut(ctx, b)
	uc.l.Infof(ctx, "internal.collector.collectBrand: brand %s: %d candidates found", b.Name, len(candidates))

	newCount, duplicateCount := 0, 0
	for _, cand := range candidates {
		normalized, err := scraper.Normalize(cand, uc.clock())
		if err != nil {
			uc.l.Warnf(ctx, "internal.collector.collectBrand.Normalize: %v", err)
			continue
		}

		created, err := uc.mentionUC.Ingest(ctx, b.ID, normalized)
		switch err {
		case nil:
			newCount++
			uc.publisher.Publish(ctx, b.ID, realtime.EventNewMention, created)
		case mention.ErrDuplicateMention:
			duplicateCount++
		default:
			// A single bad row is not worth failing the brand for.
			uc.l.Warnf(ctx, "internal.collector.collectBrand.Ingest: %v", err)
		}
	}

	uc.l.Infof(ctx, "internal.collector.collectBrand: brand %s: saved %d new, %d duplicates",
		b.Name, newCount, duplicateCount)

	if newCount == 0 {
		return
	}

	uc.updateTopics(ctx, b)

	if _, err := uc.alertUC.Detect(ctx, b); err != nil {
		uc.l.Warnf(ctx, "internal.collector.collectBrand.Detect: %v", err)
	}
}

// fanOut runs every enabled scraper concurrently and merges their results.
// A panicking scraper is confined to its goroutine and counted as a scrape
// error, contributing nothing.
func (uc *usecase) fanOut(ctx context.Context, b model.Brand) []model.MentionCandidate {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []model.MentionCandidate
	)

	for _, src := range model.AllSources {
		s, ok := uc.scrapers[src]
		if !ok || !b.Sources.Enabled(src) {
			continue
		}

		wg.Add(1)
		go func(s scraper.Scraper) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					uc.l.Errorf(ctx, "internal.collector.fanOut: scraper %s panicked: %v", s.Source(), r)
					metrics.ScrapeErrors.WithLabelValues(string(s.Source())).Inc()
				}
			}()

			found := s.Fetch(ctx, b)
			uc.l.Infof(ctx, "internal.collector.fanOut: %s: %d mentions", s.Source(), len(found))

			mu.Lock()
			results = append(results, found...)
			mu.Unlock()
		}(s)
	}

	wg.Wait()
	return results
}

// updateTopics reclusters the brand's recent mentions and writes the topic
// assignments back. Failures are logged and swallowed: stale topics are
// preferable to a broken sweep.
func (uc *usecase) updateTopics(ctx context.Context, b model.Brand) {
	recent, err := uc.mentionUC.ListRecent(ctx, b.ID, mention.RecentOptions{
		Window: uc.cfg.ClusterWindow,
		Limit:  uc.cfg.ClusterSampleCap,
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.collector.updateTopics.ListRecent: %v", err)
		return
	}
	if len(recent) < uc.cfg.ClusterMinSample {
		return
	}

	docs := make([]clustering.Document, len(recent))
	for i, m := range recent {
		docs[i] = clustering.Document{
			ID:        m.ID,
			Text:      m.Text,
			Sentiment: string(m.Sentiment),
		}
	}

	clusterCfg := clustering.DefaultConfig()
	clusterCfg.OverlapThreshold = uc.cfg.ClusterOverlapMin

	clusters := clustering.Run(docs, uc.cfg.ClusterCount, clusterCfg)
	for _, c := range clusters {
		if err := uc.mentionUC.AssignTopic(ctx, c.MemberIDs, c.Topic, c.Keywords); err != nil {
			uc.l.Warnf(ctx, "internal.collector.updateTopics.AssignTopic: %v", err)
			return
		}
	}

	uc.publisher.Publish(ctx, b.ID, realtime.EventTopicsUpdated, clusters)
	uc.l.Infof(ctx, "internal.collector.updateTopics: brand %s: %d topic clusters", b.Name, len(clusters))
}
