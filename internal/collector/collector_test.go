package collector

import (
	"context"
	"errors"
	"sync"
	"testing"

	"brandtracker-api/config"
	"brandtracker-api/internal/alert"
	brandRepo "brandtracker-api/internal/brand/repository"
	"brandtracker-api/internal/mention"
	"brandtracker-api/internal/model"
	"brandtracker-api/internal/realtime"
	"brandtracker-api/internal/scraper"
	pkgLog "brandtracker-api/pkg/log"
)

type fakeBrandRepo struct {
	brandRepo.Repository
	active []model.Brand
}

func (f *fakeBrandRepo) ListActive(context.Context) ([]model.Brand, error) {
	return f.active, nil
}

type fakeMentionUC struct {
	mention.UseCase

	mu       sync.Mutex
	hashes   map[string]bool
	ingested []model.MentionCandidate
	recent   []model.Mention
}

func (f *fakeMentionUC) Ingest(_ context.Context, brandID string, cand model.MentionCandidate) (model.Mention, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hashes == nil {
		f.hashes = map[string]bool{}
	}
	key := brandID + "/" + cand.ContentHash
	if f.hashes[key] {
		return model.Mention{}, mention.ErrDuplicateMention
	}
	f.hashes[key] = true
	f.ingested = append(f.ingested, cand)
	return model.Mention{ID: cand.IdentityKey}, nil
}

func (f *fakeMentionUC) ListRecent(context.Context, string, mention.RecentOptions) ([]model.Mention, error) {
	return f.recent, nil
}

func (f *fakeMentionUC) AssignTopic(context.Context, []string, string, []string) error {
	return nil
}

type fakeAlertUC struct {
	alert.UseCase
	detected []string
	err      error
}

func (f *fakeAlertUC) Detect(_ context.Context, b model.Brand) (*model.Alert, error) {
	f.detected = append(f.detected, b.ID)
	return nil, f.err
}

type fakeScraper struct {
	src    model.Source
	found  []model.MentionCandidate
	panics bool
}

func (f fakeScraper) Source() model.Source { return f.src }

func (f fakeScraper) Fetch(context.Context, model.Brand) []model.MentionCandidate {
	if f.panics {
		panic("scraper blew up")
	}
	return f.found
}

func cand(src model.Source, key string) model.MentionCandidate {
	return model.MentionCandidate{
		Source:      src,
		Text:        "text for " + key,
		IdentityKey: key,
	}
}

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal})
}

func testBrand(id string) model.Brand {
	return model.Brand{
		ID:       id,
		Name:     "Acme",
		Keywords: []string{"acme"},
		IsActive: true,
		Sources: model.BrandSources{
			NewsAPI: true, Reddit: true, RSS: true, YouTube: true,
		},
	}
}

func testConfig() config.CollectorConfig {
	return config.CollectorConfig{
		ClusterSampleCap:  500,
		ClusterMinSample:  10,
		ClusterCount:      5,
		ClusterOverlapMin: 0.3,
	}
}

func TestSweepIsolatesPanickingScraper(t *testing.T) {
	mentionUC := &fakeMentionUC{}
	alertUC := &fakeAlertUC{}

	scrapers := scraper.Registry{
		model.SourceNewsAPI: fakeScraper{src: model.SourceNewsAPI, found: []model.MentionCandidate{
			cand(model.SourceNewsAPI, "n1"), cand(model.SourceNewsAPI, "n2"),
		}},
		model.SourceReddit: fakeScraper{src: model.SourceReddit, panics: true},
		model.SourceRSS: fakeScraper{src: model.SourceRSS, found: []model.MentionCandidate{
			cand(model.SourceRSS, "r1"),
		}},
	}

	uc := New(testLogger(), &fakeBrandRepo{active: []model.Brand{testBrand("b1")}},
		mentionUC, alertUC, scrapers, realtime.NopPublisher{}, testConfig())

	uc.RunOneSweep(context.Background())

	if len(mentionUC.ingested) != 3 {
		t.Errorf("ingested %d candidates, want 3 from the surviving scrapers", len(mentionUC.ingested))
	}
	if len(alertUC.detected) != 1 {
		t.Errorf("spike detection ran %d times, want 1", len(alertUC.detected))
	}
}

func TestSweepRespectsDisabledSources(t *testing.T) {
	mentionUC := &fakeMentionUC{}

	scrapers := scraper.Registry{
		model.SourceNewsAPI: fakeScraper{src: model.SourceNewsAPI, found: []model.MentionCandidate{
			cand(model.SourceNewsAPI, "n1"),
		}},
		model.SourceWikimedia: fakeScraper{src: model.SourceWikimedia, found: []model.MentionCandidate{
			cand(model.SourceWikimedia, "w1"),
		}},
	}

	b := testBrand("b1") // wikimedia disabled by default
	uc := New(testLogger(), &fakeBrandRepo{active: []model.Brand{b}},
		mentionUC, &fakeAlertUC{}, scrapers, realtime.NopPublisher{}, testConfig())

	uc.RunOneSweep(context.Background())

	if len(mentionUC.ingested) != 1 {
		t.Fatalf("ingested %d candidates, want 1", len(mentionUC.ingested))
	}
	if mentionUC.ingested[0].Source != model.SourceNewsAPI {
		t.Errorf("ingested from %s, want newsapi only", mentionUC.ingested[0].Source)
	}
}

func TestSweepDeduplicatesAcrossCandidates(t *testing.T) {
	mentionUC := &fakeMentionUC{}

	scrapers := scraper.Registry{
		model.SourceNewsAPI: fakeScraper{src: model.SourceNewsAPI, found: []model.MentionCandidate{
			cand(model.SourceNewsAPI, "same"), cand(model.SourceNewsAPI, "same"),
		}},
	}

	uc := New(testLogger(), &fakeBrandRepo{active: []model.Brand{testBrand("b1")}},
		mentionUC, &fakeAlertUC{}, scrapers, realtime.NopPublisher{}, testConfig())

	uc.RunOneSweep(context.Background())

	if len(mentionUC.ingested) != 1 {
		t.Errorf("ingested %d candidates, want 1 after dedup", len(mentionUC.ingested))
	}
}

func TestSweepContinuesPastBrandFailure(t *testing.T) {
	mentionUC := &fakeMentionUC{}
	alertUC := &fakeAlertUC{err: errors.New("detector unavailable")}

	scrapers := scraper.Registry{
		model.SourceNewsAPI: fakeScraper{src: model.SourceNewsAPI, found: []model.MentionCandidate{
			cand(model.SourceNewsAPI, "n1"),
		}},
	}

	uc := New(testLogger(), &fakeBrandRepo{active: []model.Brand{testBrand("b1"), testBrand("b2")}},
		mentionUC, alertUC, scrapers, realtime.NopPublisher{}, testConfig())

	uc.RunOneSweep(context.Background())

	if len(alertUC.detected) != 2 {
		t.Errorf("detection attempted for %d brands, want both despite failures", len(alertUC.detected))
	}
}
