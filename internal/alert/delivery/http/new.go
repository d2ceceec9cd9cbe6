package http

import (
	"brandtracker-api/internal/alert"
	pkgLog "brandtracker-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc alert.UseCase
}

func New(l pkgLog.Logger, uc alert.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
