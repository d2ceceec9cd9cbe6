package http

import (
	"brandtracker-api/internal/brand"
	pkgLog "brandtracker-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc brand.UseCase
}

func New(l pkgLog.Logger, uc brand.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
