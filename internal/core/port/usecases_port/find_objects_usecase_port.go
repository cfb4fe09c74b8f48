package usecases_port

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
)

type FindObjectsUseCase interface {
	Execute(ctx context.Context, filters domain.FilterCriteria, limit, offset int) (*domain.PaginatedResult, error)
}
