package alert

import "time"

// ListInput filters the alert listing. IsRead nil means both read and unread.
type ListInput struct {
	BrandID string
	IsRead  *bool
}

// DetectorConfig carries the statistical thresholds of the spike detector.
type DetectorConfig struct {
	// Window bounds the mention history considered, newest first.
	Window time.Duration
	// MinMentions is the minimum history size before any check runs.
	MinMentions int
	// SigmaFactor and MeanFactor gate the volume spike: the latest hourly
	// count must exceed both mean+SigmaFactor*stddev and mean*MeanFactor.
	SigmaFactor float64
	MeanFactor  float64

	// SurgeSampleSize caps the most recent mentions inspected for the
	// negative-sentiment surge.
	SurgeSampleSize int
	// SurgeMinSample is the minimum sample size before the surge check runs.
	SurgeMinSample int
	// SurgeNegativeRatio is the strict lower bound on the negative share.
	SurgeNegativeRatio float64
}

// DefaultDetectorConfig mirrors the production tuning.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		Window:             24 * time.Hour,
		MinMentions:        10,
		SigmaFactor:        2.0,
		MeanFactor:         1.4,
		SurgeSampleSize:    50,
		SurgeMinSample:     10,
		SurgeNegativeRatio: 0.6,
	}
}
