package usecase

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
)

type GetFilterOptionsUseCase struct {
	repo    port.FilterOptionsRepositoryPort
	storage port.PropertyStoragePort
}

func NewGetFilterOptionsUseCase(repo port.FilterOptionsRepositoryPort, storage port.PropertyStoragePort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{repo: repo, storage: storage}
}

// Execute собирает опции формы фильтра. Слайдеры имеют фиксированные границы,
// селекты берутся из репозитория и дополняются пунктом "all".
// Count - сколько объектов видно при сброшенных фильтрах.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptionsResult, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetFilterOptionsUseCase",
	})

	ucLogger.Debug("Use case started", nil)

	districts, err := uc.repo.GetDistricts(ctx)
	if err != nil {
		ucLogger.Error("Failed to get districts", err, nil)
		return nil, err
	}
	propertyTypes, err := uc.repo.GetPropertyTypes(ctx)
	if err != nil {
		ucLogger.Error("Failed to get property types", err, nil)
		return nil, err
	}

	// Не критично: форма работает и без счетчика
	count := 0
	if listings, err := uc.storage.All(ctx); err != nil {
		ucLogger.Warn("Failed to get total count", port.Fields{"error": err.Error()})
	} else {
		count = len(domain.FilterListings(listings, domain.DefaultFilterCriteria()))
	}

	return &domain.FilterOptionsResult{
		Options: domain.FilterOptions{
			Price:         domain.PriceBounds{Min: domain.DefaultPriceMin, Max: domain.DefaultPriceMax, Step: domain.PriceStep},
			Area:          domain.AreaBounds{Min: domain.DefaultAreaMin, Max: domain.DefaultAreaMax, Step: domain.AreaStep},
			Districts:     withAllOption(districts, "Все районы"),
			PropertyTypes: withAllOption(propertyTypes, "Все типы"),
		},
		Count: count,
	}, nil
}

func withAllOption(items []domain.DictionaryItem, displayName string) []domain.DictionaryItem {
	out := make([]domain.DictionaryItem, 0, len(items)+1)
	out = append(out, domain.DictionaryItem{SystemName: domain.AllOption, DisplayName: displayName})
	return append(out, items...)
}

// ResetFiltersUseCase - операция "Сбросить": всегда одни и те же критерии по умолчанию
type ResetFiltersUseCase struct{}

func NewResetFiltersUseCase() *ResetFiltersUseCase {
	return &ResetFiltersUseCase{}
}

func (uc *ResetFiltersUseCase) Execute(ctx context.Context) domain.FilterCriteria {
	contextkeys.LoggerFromContext(ctx).Debug("Filters reset to defaults", nil)
	return domain.DefaultFilterCriteria()
}
