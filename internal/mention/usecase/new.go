package usecase

import (
	"brandtracker-api/internal/mention"
	"brandtracker-api/internal/mention/repository"
	pkgLog "brandtracker-api/pkg/log"
	"brandtracker-api/pkg/sentiment"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	analyzer sentiment.Analyzer
}

func New(l pkgLog.Logger, repo repository.Repository, analyzer sentiment.Analyzer) mention.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		analyzer: analyzer,
	}
}
