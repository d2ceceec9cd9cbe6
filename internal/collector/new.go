package collector

import (
	"time"

	"brandtracker-api/config"
	"brandtracker-api/internal/alert"
	"brandtracker-api/internal/brand/repository"
	"brandtracker-api/internal/mention"
	"brandtracker-api/internal/realtime"
	"brandtracker-api/internal/scraper"
	pkgLog "brandtracker-api/pkg/log"
)

type usecase struct {
	l         pkgLog.Logger
	brandRepo repository.Repository
	mentionUC mention.UseCase
	alertUC   alert.UseCase
	scrapers  scraper.Registry
	publisher realtime.Publisher
	cfg       config.CollectorConfig
	clock     func() time.Time
}

func New(
	l pkgLog.Logger,
	brandRepo repository.Repository,
	mentionUC mention.UseCase,
	alertUC alert.UseCase,
	scrapers scraper.Registry,
	publisher realtime.Publisher,
	cfg config.CollectorConfig,
) UseCase {
	return &usecase{
		l:         l,
		brandRepo: brandRepo,
		mentionUC: mentionUC,
		alertUC:   alertUC,
		scrapers:  scrapers,
		publisher: publisher,
		cfg:       cfg,
		clock:     time.Now,
	}
}
