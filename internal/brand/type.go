package brand

import "brandtracker-api/internal/model"

// CreateInput carries the fields for creating a brand.
type CreateInput struct {
	Name             string
	Description      string
	LogoURL          string
	Keywords         []string
	Sources          *model.BrandSources
	GoogleAlertFeeds []string
	Settings         *model.BrandSettings
}

// UpdateInput carries the fields for updating a brand.
// Only non-nil fields are applied.
type UpdateInput struct {
	ID               string
	Name             *string
	Description      *string
	LogoURL          *string
	Keywords         []string
	IsActive         *bool
	Sources          *model.BrandSources
	GoogleAlertFeeds []string
	Settings         *model.BrandSettings
}
