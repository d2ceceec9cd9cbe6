package alert

import (
	"context"

	"brandtracker-api/internal/model"
)

// UseCase bundles alert detection and read operations.
type UseCase interface {
	// Detect runs the spike and negative-surge checks over the brand's last
	// day of mentions and persists at most one alert per call. A nil alert
	// with a nil error means nothing unusual was found.
	Detect(ctx context.Context, b model.Brand) (*model.Alert, error)

	List(ctx context.Context, ip ListInput) ([]model.Alert, error)
	MarkRead(ctx context.Context, id string) (model.Alert, error)
	Delete(ctx context.Context, id string) error
}
