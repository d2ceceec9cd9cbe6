package usecase

import (
	"context"
	"testing"
	"time"

	"brandtracker-api/internal/alert"
	"brandtracker-api/internal/alert/repository"
	"brandtracker-api/internal/mention"
	"brandtracker-api/internal/model"
	"brandtracker-api/internal/realtime"
	pkgLog "brandtracker-api/pkg/log"
)

type fakeMentionUC struct {
	mention.UseCase
	recent []model.Mention
}

func (f *fakeMentionUC) ListRecent(_ context.Context, _ string, _ mention.RecentOptions) ([]model.Mention, error) {
	return f.recent, nil
}

type fakeAlertRepo struct {
	created []model.Alert
}

func (f *fakeAlertRepo) Create(_ context.Context, opts repository.CreateOptions) (model.Alert, error) {
	a := opts.Alert
	a.ID = "alert-1"
	f.created = append(f.created, a)
	return a, nil
}

func (f *fakeAlertRepo) List(context.Context, repository.ListOptions) ([]model.Alert, error) {
	return nil, nil
}

func (f *fakeAlertRepo) MarkRead(context.Context, string) (model.Alert, error) {
	return model.Alert{}, repository.ErrNotFound
}

func (f *fakeAlertRepo) Delete(context.Context, string) error {
	return repository.ErrNotFound
}

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal})
}

func newDetector(recent []model.Mention, repo *fakeAlertRepo) alert.UseCase {
	return New(testLogger(), repo, &fakeMentionUC{recent: recent}, realtime.NopPublisher{}, alert.DefaultDetectorConfig())
}

// hourlyMentions spreads counts over consecutive hours ending now, all with
// the given sentiment.
func hourlyMentions(counts []int, sentiment model.Sentiment) []model.Mention {
	base := time.Now().Truncate(time.Hour)
	var out []model.Mention
	for i, count := range counts {
		at := base.Add(-time.Duration(len(counts)-1-i) * time.Hour)
		for j := 0; j < count; j++ {
			out = append(out, model.Mention{
				ID:        "m",
				Sentiment: sentiment,
				CreatedAt: at.Add(time.Duration(j) * time.Second),
			})
		}
	}
	return out
}

func TestDetectVolumeSpike(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := newDetector(hourlyMentions([]int{5, 5, 5, 5, 5, 5, 5, 40}, model.SentimentNeutral), repo)

	a, err := uc.Detect(context.Background(), model.Brand{ID: "b1"})
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if a == nil {
		t.Fatal("Detect returned no alert, want volume spike")
	}
	if a.Type != model.AlertSpike {
		t.Errorf("alert type = %q, want %q", a.Type, model.AlertSpike)
	}
	if a.Severity != model.SeverityHigh {
		t.Errorf("alert severity = %q, want %q", a.Severity, model.SeverityHigh)
	}
	if a.Metadata["currentCount"] != 40 {
		t.Errorf("currentCount = %v, want 40", a.Metadata["currentCount"])
	}
	if len(repo.created) != 1 {
		t.Errorf("persisted %d alerts, want 1", len(repo.created))
	}
}

func TestDetectAbstainsBelowMinimum(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := newDetector(hourlyMentions([]int{3, 4}, model.SentimentNegative), repo)

	a, err := uc.Detect(context.Background(), model.Brand{ID: "b1"})
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if a != nil {
		t.Errorf("Detect returned %v for 7 mentions, want nil below minimum of 10", a)
	}
}

func TestDetectAbstainsOnFlatHistory(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := newDetector(hourlyMentions([]int{5, 5, 5, 5}, model.SentimentNeutral), repo)

	a, err := uc.Detect(context.Background(), model.Brand{ID: "b1"})
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if a != nil {
		t.Errorf("Detect returned %v for flat neutral history, want nil", a)
	}
}

func TestDetectNegativeSurge(t *testing.T) {
	// 15 negative out of 20 in one hour: no spike possible with a single
	// bucket, surge ratio 0.75 exceeds 0.6.
	mentions := hourlyMentions([]int{5}, model.SentimentNeutral)
	mentions = append(mentions, hourlyMentions([]int{15}, model.SentimentNegative)...)

	repo := &fakeAlertRepo{}
	uc := newDetector(mentions, repo)

	a, err := uc.Detect(context.Background(), model.Brand{ID: "b1"})
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if a == nil {
		t.Fatal("Detect returned no alert, want negative surge")
	}
	if a.Type != model.AlertNegativeSurge {
		t.Errorf("alert type = %q, want %q", a.Type, model.AlertNegativeSurge)
	}
	if a.Metadata["negativeCount"] != 15 {
		t.Errorf("negativeCount = %v, want 15", a.Metadata["negativeCount"])
	}
}

func TestDetectSurgeThresholdIsStrict(t *testing.T) {
	// Exactly 60% negative must not alert.
	mentions := hourlyMentions([]int{8}, model.SentimentNeutral)
	mentions = append(mentions, hourlyMentions([]int{12}, model.SentimentNegative)...)

	repo := &fakeAlertRepo{}
	uc := newDetector(mentions, repo)

	a, err := uc.Detect(context.Background(), model.Brand{ID: "b1"})
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if a != nil {
		t.Errorf("Detect returned %v at exactly the surge threshold, want nil", a)
	}
}

func TestHourlyCounts(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	mentions := []model.Mention{
		{CreatedAt: base.Add(5 * time.Minute)},
		{CreatedAt: base.Add(30 * time.Minute)},
		{CreatedAt: base.Add(time.Hour)},
		{CreatedAt: base.Add(2*time.Hour + 10*time.Minute)},
		{CreatedAt: base.Add(2*time.Hour + 20*time.Minute)},
		{CreatedAt: base.Add(2*time.Hour + 40*time.Minute)},
	}

	counts := hourlyCounts(mentions)
	want := []int{2, 1, 3}
	if len(counts) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(counts), len(want))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("bucket %d = %d, want %d", i, counts[i], want[i])
		}
	}
}
