package usecase

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
)

type FindObjectsUseCase struct {
	storage port.PropertyStoragePort
}

func NewFindObjectsUseCase(storage port.PropertyStoragePort) *FindObjectsUseCase {
	return &FindObjectsUseCase{storage: storage}
}

// Execute фильтрует всю коллекцию и только потом режет на страницы,
// поэтому TotalCount - это число найденных объектов, а не размер страницы.
func (uc *FindObjectsUseCase) Execute(ctx context.Context, filters domain.FilterCriteria, limit, offset int) (*domain.PaginatedResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindObjects",
		"filters":  filters,
		"limit":    limit,
		"offset":   offset,
	})

	ucLogger.Debug("Use case started", nil)

	listings, err := uc.storage.All(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	result := domain.Paginate(domain.FilterListings(listings, filters), limit, offset)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Objects),
	})

	return result, nil
}
