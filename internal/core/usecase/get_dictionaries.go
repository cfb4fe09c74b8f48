package usecase

import (
	"context"
	"strings"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
)

type GetDictionariesUseCase struct {
	repo port.FilterOptionsRepositoryPort
}

func NewGetDictionariesUseCase(repo port.FilterOptionsRepositoryPort) *GetDictionariesUseCase {
	return &GetDictionariesUseCase{repo: repo}
}

// Execute получает список имен справочников и возвращает их содержимое.
// Пустой список - вернуть все справочники; неизвестные имена пропускаются.
func (uc *GetDictionariesUseCase) Execute(ctx context.Context, names []string) (map[string][]domain.DictionaryItem, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetDictionariesUseCase",
	})

	ucLogger.Debug("Use case started", port.Fields{"names": names})

	namesMap := make(map[string]bool)
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			namesMap[name] = true
		}
	}
	wanted := func(name string) bool { return len(namesMap) == 0 || namesMap[name] }

	result := make(map[string][]domain.DictionaryItem)

	if wanted(domain.DictionaryDistricts) {
		districts, err := uc.repo.GetDistricts(ctx)
		if err != nil {
			ucLogger.Error("Storage returned an error while getting districts", err, nil)
			return nil, err
		}
		result[domain.DictionaryDistricts] = districts
	}

	if wanted(domain.DictionaryPropertyTypes) {
		types, err := uc.repo.GetPropertyTypes(ctx)
		if err != nil {
			ucLogger.Error("Storage returned an error while getting property types", err, nil)
			return nil, err
		}
		result[domain.DictionaryPropertyTypes] = types
	}

	if wanted(domain.DictionarySections) {
		result[domain.DictionarySections] = domain.Sections()
	}

	return result, nil
}
