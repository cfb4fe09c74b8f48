package usecase

import (
	"context"
	"errors"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
)

type GetObjectDetailsUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetObjectDetailsUseCase(storage port.PropertyStoragePort) *GetObjectDetailsUseCase {
	return &GetObjectDetailsUseCase{storage: storage}
}

func (uc *GetObjectDetailsUseCase) Execute(ctx context.Context, objectID int) (*domain.PropertyListing, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":  "GetObjectDetails",
		"object_id": objectID,
	})

	ucLogger.Debug("Use case started", nil)

	listing, err := uc.storage.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			ucLogger.Warn("Object not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", nil)
	return listing, nil
}
