package repository

import (
	"context"
	"errors"

	"brandtracker-api/internal/model"
)

// Repository sentinel errors.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Repository is the brand persistence surface.
type Repository interface {
	List(ctx context.Context) ([]model.Brand, error)
	// ListActive returns every active brand in store iteration order.
	// This is the entity feed the collection sweep walks.
	ListActive(ctx context.Context) ([]model.Brand, error)
	Detail(ctx context.Context, id string) (model.Brand, error)
	Create(ctx context.Context, opts CreateOptions) (model.Brand, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Brand, error)
	Delete(ctx context.Context, id string) error
}
