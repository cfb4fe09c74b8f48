package usecase

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
)

type GetNewDevelopmentsUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetNewDevelopmentsUseCase(storage port.PropertyStoragePort) *GetNewDevelopmentsUseCase {
	return &GetNewDevelopmentsUseCase{storage: storage}
}

func (uc *GetNewDevelopmentsUseCase) Execute(ctx context.Context) ([]domain.PropertyListing, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetNewDevelopments",
	})

	listings, err := uc.storage.All(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	result := domain.NewDevelopments(listings)
	ucLogger.Debug("Use case finished successfully", port.Fields{"total_found": len(result)})
	return result, nil
}
