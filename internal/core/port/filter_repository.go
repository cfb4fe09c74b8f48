package port

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
)

// FilterOptionsRepositoryPort отдает варианты для селектов фильтра (без "all")
type FilterOptionsRepositoryPort interface {
	GetDistricts(ctx context.Context) ([]domain.DictionaryItem, error)
	GetPropertyTypes(ctx context.Context) ([]domain.DictionaryItem, error)
}
