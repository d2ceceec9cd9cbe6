package brand

import (
	"context"

	"brandtracker-api/internal/model"
)

// UseCase defines brand management operations.
type UseCase interface {
	List(ctx context.Context) ([]model.Brand, error)
	Detail(ctx context.Context, id string) (model.Brand, error)
	Create(ctx context.Context, ip CreateInput) (model.Brand, error)
	Update(ctx context.Context, ip UpdateInput) (model.Brand, error)
	Delete(ctx context.Context, id string) error
}
