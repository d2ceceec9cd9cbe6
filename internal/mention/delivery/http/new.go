package http

import (
	"brandtracker-api/internal/mention"
	pkgLog "brandtracker-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc mention.UseCase
}

func New(l pkgLog.Logger, uc mention.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
