package usecase

import (
	"time"

	"brandtracker-api/internal/alert"
	"brandtracker-api/internal/alert/repository"
	"brandtracker-api/internal/mention"
	"brandtracker-api/internal/realtime"
	pkgLog "brandtracker-api/pkg/log"
)

type usecase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	mentionUC mention.UseCase
	publisher realtime.Publisher
	cfg       alert.DetectorConfig
	clock     func() time.Time
}

func New(
	l pkgLog.Logger,
	repo repository.Repository,
	mentionUC mention.UseCase,
	publisher realtime.Publisher,
	cfg alert.DetectorConfig,
) alert.UseCase {
	return &usecase{
		l:         l,
		repo:      repo,
		mentionUC: mentionUC,
		publisher: publisher,
		cfg:       cfg,
		clock:     time.Now,
	}
}
