package usecases_port

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.FilterOptionsResult, error)
}

// ResetFiltersUseCase возвращает критерии по умолчанию
type ResetFiltersUseCase interface {
	Execute(ctx context.Context) domain.FilterCriteria
}
