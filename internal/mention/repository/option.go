package repository

import "brandtracker-api/internal/model"

// CreateOptions contains options for persisting a mention.
type CreateOptions struct {
	Mention model.Mention
}

// ListOptions filters the mention listing. Empty fields are ignored.
type ListOptions struct {
	BrandID   string
	Source    string
	Sentiment string
	Limit     int
	Skip      int
}
