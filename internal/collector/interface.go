// Package collector orchestrates the periodic collection pipeline: fan out
// to scrapers, ingest what they found, then recluster topics and check for
// spikes per brand.
package collector

import "context"

// UseCase runs collection sweeps.
type UseCase interface {
	// RunOneSweep collects mentions for every active brand. Per-brand
	// failures are logged and skipped so one broken brand cannot stall the
	// rest of the sweep.
	RunOneSweep(ctx context.Context)
}
