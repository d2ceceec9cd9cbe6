package repository

import (
	"context"
	"errors"
	"time"

	"brandtracker-api/internal/mention"
	"brandtracker-api/internal/model"
)

var (
	ErrNotFound  = errors.New("mention not found")
	ErrDuplicate = errors.New("mention already exists")
)

type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Mention, error)
	ExistsByHash(ctx context.Context, brandID, hash string) (bool, error)
	List(ctx context.Context, opts ListOptions) ([]model.Mention, int64, error)
	ListRecent(ctx context.Context, brandID string, since time.Time, limit int) ([]model.Mention, error)
	UpdateTopic(ctx context.Context, ids []string, topic string, keywords []string) error
	Stats(ctx context.Context, brandID string) (mention.StatsOutput, error)
	Trends(ctx context.Context, brandID string, since time.Time) ([]mention.TrendBucket, error)
}
