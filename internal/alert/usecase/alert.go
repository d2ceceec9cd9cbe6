package usecase

import (
	"context"

	"brandtracker-api/internal/alert"
	"brandtracker-api/internal/alert/repository"
	"brandtracker-api/internal/model"
)

func (uc *usecase) List(ctx context.Context, ip alert.ListInput) ([]model.Alert, error) {
	alerts, err := uc.repo.List(ctx, repository.ListOptions{
		BrandID: ip.BrandID,
		IsRead:  ip.IsRead,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.List.List: %v", err)
		return nil, err
	}
	return alerts, nil
}

func (uc *usecase) MarkRead(ctx context.Context, id string) (model.Alert, error) {
	a, err := uc.repo.MarkRead(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.MarkRead.MarkRead: %v", err)
		return model.Alert{}, err
	}
	return a, nil
}

func (uc *usecase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Delete.Delete: %v", err)
		return err
	}
	return nil
}
