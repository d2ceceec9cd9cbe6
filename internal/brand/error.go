package brand

import "errors"

var (
	ErrBrandNotFound   = errors.New("brand not found")
	ErrBrandExists     = errors.New("brand already exists")
	ErrNameRequired    = errors.New("brand name is required")
	ErrKeywordRequired = errors.New("at least one keyword is required")
	ErrInvalidSettings = errors.New("invalid settings")
)
