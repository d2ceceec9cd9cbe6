// Package scraper fetches raw brand mentions from external platforms and
// normalizes them into candidates for ingestion.
package scraper

import (
	"context"

	"brandtracker-api/internal/model"
)

// Scraper fetches mention candidates for one source. Implementations absorb
// their own failures: a network or credential problem is logged, counted and
// turned into an empty result, never an error, so one broken platform cannot
// stall a sweep.
type Scraper interface {
	Source() model.Source
	Fetch(ctx context.Context, b model.Brand) []model.MentionCandidate
}
