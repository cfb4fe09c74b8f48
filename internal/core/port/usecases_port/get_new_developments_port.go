package usecases_port

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
)

type GetNewDevelopmentsUseCase interface {
	Execute(ctx context.Context) ([]domain.PropertyListing, error)
}
