package repository

import "brandtracker-api/internal/model"

// CreateOptions contains options for creating a brand.
type CreateOptions struct {
	Brand model.Brand
}

// UpdateOptions contains options for updating a brand.
type UpdateOptions struct {
	Brand model.Brand
}
