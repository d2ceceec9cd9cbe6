package usecase

import (
	"context"
	"errors"
	"testing"

	"brandtracker-api/internal/brand"
	"brandtracker-api/internal/brand/repository"
	"brandtracker-api/internal/model"
	pkgLog "brandtracker-api/pkg/log"
)

type fakeBrandRepo struct {
	repository.Repository

	brands    map[string]model.Brand
	createErr error
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: map[string]model.Brand{}}
}

func (f *fakeBrandRepo) Detail(_ context.Context, id string) (model.Brand, error) {
	b, ok := f.brands[id]
	if !ok {
		return model.Brand{}, repository.ErrNotFound
	}
	return b, nil
}

func (f *fakeBrandRepo) Create(_ context.Context, opts repository.CreateOptions) (model.Brand, error) {
	if f.createErr != nil {
		return model.Brand{}, f.createErr
	}
	b := opts.Brand
	b.ID = "b-1"
	f.brands[b.ID] = b
	return b, nil
}

func (f *fakeBrandRepo) Update(_ context.Context, opts repository.UpdateOptions) (model.Brand, error) {
	if _, ok := f.brands[opts.Brand.ID]; !ok {
		return model.Brand{}, repository.ErrNotFound
	}
	f.brands[opts.Brand.ID] = opts.Brand
	return opts.Brand, nil
}

func (f *fakeBrandRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.brands[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.brands, id)
	return nil
}

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal})
}

func TestCreateAppliesDefaults(t *testing.T) {
	uc := New(testLogger(), newFakeBrandRepo())

	b, err := uc.Create(context.Background(), brand.CreateInput{
		Name:     "Acme",
		Keywords: []string{" acme ", ""},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if !b.IsActive {
		t.Error("new brand is not active")
	}
	if len(b.Keywords) != 1 || b.Keywords[0] != "acme" {
		t.Errorf("keywords = %v, want trimmed [acme]", b.Keywords)
	}
	if !b.Sources.NewsAPI || !b.Sources.Reddit || !b.Sources.RSS || !b.Sources.YouTube {
		t.Errorf("default sources = %+v, want primary four enabled", b.Sources)
	}
	if b.Sources.GoogleAlerts || b.Sources.Wikimedia {
		t.Errorf("default sources = %+v, want alerts and wikimedia off", b.Sources)
	}
	if b.Settings.SpikeThreshold != model.DefaultSpikeThreshold {
		t.Errorf("spike threshold = %d, want default %d", b.Settings.SpikeThreshold, model.DefaultSpikeThreshold)
	}
	if b.Settings.CollectIntervalMinutes != model.DefaultCollectIntervalMinutes {
		t.Errorf("collect interval = %d, want default %d", b.Settings.CollectIntervalMinutes, model.DefaultCollectIntervalMinutes)
	}
}

func TestCreateValidation(t *testing.T) {
	uc := New(testLogger(), newFakeBrandRepo())

	tests := []struct {
		name    string
		input   brand.CreateInput
		wantErr error
	}{
		{"missing name", brand.CreateInput{Keywords: []string{"x"}}, brand.ErrNameRequired},
		{"blank name", brand.CreateInput{Name: "   ", Keywords: []string{"x"}}, brand.ErrNameRequired},
		{"no keywords", brand.CreateInput{Name: "Acme"}, brand.ErrKeywordRequired},
		{"blank keywords", brand.CreateInput{Name: "Acme", Keywords: []string{" ", ""}}, brand.ErrKeywordRequired},
		{
			"settings out of bounds",
			brand.CreateInput{Name: "Acme", Keywords: []string{"x"},
				Settings: &model.BrandSettings{SpikeThreshold: 5, CollectIntervalMinutes: 15}},
			brand.ErrInvalidSettings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Create error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateMapsDuplicate(t *testing.T) {
	repo := newFakeBrandRepo()
	repo.createErr = repository.ErrDuplicate
	uc := New(testLogger(), repo)

	_, err := uc.Create(context.Background(), brand.CreateInput{Name: "Acme", Keywords: []string{"x"}})
	if err != brand.ErrBrandExists {
		t.Errorf("Create error = %v, want ErrBrandExists", err)
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := newFakeBrandRepo()
	uc := New(testLogger(), repo)

	created, err := uc.Create(context.Background(), brand.CreateInput{
		Name:        "Acme",
		Description: "original",
		Keywords:    []string{"acme"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newName := "Acme Corp"
	inactive := false
	updated, err := uc.Update(context.Background(), brand.UpdateInput{
		ID:       created.ID,
		Name:     &newName,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Name != "Acme Corp" {
		t.Errorf("name = %q, want updated", updated.Name)
	}
	if updated.IsActive {
		t.Error("isActive = true, want updated to false")
	}
	if updated.Description != "original" {
		t.Errorf("description = %q, want untouched", updated.Description)
	}
	if len(updated.Keywords) != 1 {
		t.Errorf("keywords = %v, want untouched", updated.Keywords)
	}
}

func TestUpdateUnknownBrand(t *testing.T) {
	uc := New(testLogger(), newFakeBrandRepo())

	name := "x"
	_, err := uc.Update(context.Background(), brand.UpdateInput{ID: "missing", Name: &name})
	if err != brand.ErrBrandNotFound {
		t.Errorf("Update error = %v, want ErrBrandNotFound", err)
	}
}

func TestDeleteUnknownBrand(t *testing.T) {
	uc := New(testLogger(), newFakeBrandRepo())

	if err := uc.Delete(context.Background(), "missing"); err != brand.ErrBrandNotFound {
		t.Errorf("Delete error = %v, want ErrBrandNotFound", err)
	}
}
