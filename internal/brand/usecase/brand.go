package usecase

import (
	"context"
	"fmt"
	"strings"

	"brandtracker-api/internal/brand"
	"brandtracker-api/internal/brand/repository"
	"brandtracker-api/internal/model"
)

func (uc *usecase) List(ctx context.Context) ([]model.Brand, error) {
	brands, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.brand.usecase.List.List: %v", err)
		return nil, err
	}
	return brands, nil
}

func (uc *usecase) Detail(ctx context.Context, id string) (model.Brand, error) {
	b, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Brand{}, brand.ErrBrandNotFound
		}
		uc.l.Errorf(ctx, "internal.brand.usecase.Detail.Detail: %v", err)
		return model.Brand{}, err
	}
	return b, nil
}

func (uc *usecase) Create(ctx context.Context, ip brand.CreateInput) (model.Brand, error) {
	b := model.Brand{
		Name:             strings.TrimSpace(ip.Name),
		Description:      ip.Description,
		LogoURL:          ip.LogoURL,
		Keywords:         trimKeywords(ip.Keywords),
		IsActive:         true,
		GoogleAlertFeeds: ip.GoogleAlertFeeds,
		Sources: model.BrandSources{
			NewsAPI: true,
			Reddit:  true,
			RSS:     true,
			YouTube: true,
		},
		Settings: model.BrandSettings{
			SpikeThreshold:         model.DefaultSpikeThreshold,
			CollectIntervalMinutes: model.DefaultCollectIntervalMinutes,
		},
	}
	if ip.Sources != nil {
		b.Sources = *ip.Sources
	}
	if ip.Settings != nil {
		b.Settings = *ip.Settings
	}

	if err := validateBrand(b); err != nil {
		return model.Brand{}, err
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{Brand: b})
	if err != nil {
		if err == repository.ErrDuplicate {
			return model.Brand{}, brand.ErrBrandExists
		}
		uc.l.Errorf(ctx, "internal.brand.usecase.Create.Create: %v", err)
		return model.Brand{}, err
	}
	return created, nil
}

func (uc *usecase) Update(ctx context.Context, ip brand.UpdateInput) (model.Brand, error) {
	b, err := uc.repo.Detail(ctx, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Brand{}, brand.ErrBrandNotFound
		}
		uc.l.Errorf(ctx, "internal.brand.usecase.Update.Detail: %v", err)
		return model.Brand{}, err
	}

	if ip.Name != nil {
		b.Name = strings.TrimSpace(*ip.Name)
	}
	if ip.Description != nil {
		b.Description = *ip.Description
	}
	if ip.LogoURL != nil {
		b.LogoURL = *ip.LogoURL
	}
	if ip.Keywords != nil {
		b.Keywords = trimKeywords(ip.Keywords)
	}
	if ip.IsActive != nil {
		b.IsActive = *ip.IsActive
	}
	if ip.Sources != nil {
		b.Sources = *ip.Sources
	}
	if ip.GoogleAlertFeeds != nil {
		b.GoogleAlertFeeds = ip.GoogleAlertFeeds
	}
	if ip.Settings != nil {
		b.Settings = *ip.Settings
	}

	if err := validateBrand(b); err != nil {
		return model.Brand{}, err
	}

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Brand: b})
	if err != nil {
		if err == repository.ErrDuplicate {
			return model.Brand{}, brand.ErrBrandExists
		}
		uc.l.Errorf(ctx, "internal.brand.usecase.Update.Update: %v", err)
		return model.Brand{}, err
	}
	return updated, nil
}

func (uc *usecase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return brand.ErrBrandNotFound
		}
		uc.l.Errorf(ctx, "internal.brand.usecase.Delete.Delete: %v", err)
		return err
	}
	return nil
}

func validateBrand(b model.Brand) error {
	if b.Name == "" {
		return brand.ErrNameRequired
	}
	if len(b.Keywords) == 0 {
		return brand.ErrKeywordRequired
	}
	if err := b.Settings.Validate(); err != nil {
		return fmt.Errorf("%w: %v", brand.ErrInvalidSettings, err)
	}
	return nil
}

func trimKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
