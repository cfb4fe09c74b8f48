package usecases_port

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
)

type GetObjectDetailsUseCase interface {
	Execute(ctx context.Context, objectID int) (*domain.PropertyListing, error)
}
