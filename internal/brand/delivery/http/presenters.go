package http

import (
	"brandtracker-api/internal/brand"
	"brandtracker-api/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name             string               `json:"name" binding:"required"`
	Description      string               `json:"description"`
	LogoURL          string               `json:"logoUrl"`
	Keywords         []string             `json:"keywords" binding:"required"`
	Sources          *model.BrandSources  `json:"sources"`
	GoogleAlertFeeds []string             `json:"googleAlertFeeds"`
	Settings         *model.BrandSettings `json:"settings"`
}

func (r createReq) toInput() brand.CreateInput {
	return brand.CreateInput{
		Name:             r.Name,
		Description:      r.Description,
		LogoURL:          r.LogoURL,
		Keywords:         r.Keywords,
		Sources:          r.Sources,
		GoogleAlertFeeds: r.GoogleAlertFeeds,
		Settings:         r.Settings,
	}
}

type updateReq struct {
	Name             *string              `json:"name"`
	Description      *string              `json:"description"`
	LogoURL          *string              `json:"logoUrl"`
	Keywords         []string             `json:"keywords"`
	IsActive         *bool                `json:"isActive"`
	Sources          *model.BrandSources  `json:"sources"`
	GoogleAlertFeeds []string             `json:"googleAlertFeeds"`
	Settings         *model.BrandSettings `json:"settings"`
}

func (r updateReq) toInput(id string) brand.UpdateInput {
	return brand.UpdateInput{
		ID:               id,
		Name:             r.Name,
		Description:      r.Description,
		LogoURL:          r.LogoURL,
		Keywords:         r.Keywords,
		IsActive:         r.IsActive,
		Sources:          r.Sources,
		GoogleAlertFeeds: r.GoogleAlertFeeds,
		Settings:         r.Settings,
	}
}
