package repository

import (
	"context"
	"errors"

	"brandtracker-api/internal/model"
)

var ErrNotFound = errors.New("alert not found")

type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Alert, error)
	List(ctx context.Context, opts ListOptions) ([]model.Alert, error)
	MarkRead(ctx context.Context, id string) (model.Alert, error)
	Delete(ctx context.Context, id string) error
}
