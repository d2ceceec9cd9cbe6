package repository

import "brandtracker-api/internal/model"

// CreateOptions contains options for persisting an alert.
type CreateOptions struct {
	Alert model.Alert
}

// ListOptions filters the alert listing. Limit 0 falls back to the
// repository default.
type ListOptions struct {
	BrandID string
	IsRead  *bool
	Limit   int
}
