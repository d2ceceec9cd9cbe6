package usecase

import (
	"brandtracker-api/internal/brand"
	"brandtracker-api/internal/brand/repository"
	pkgLog "brandtracker-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) brand.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
