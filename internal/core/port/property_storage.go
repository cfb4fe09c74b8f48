package port

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
)

// PropertyStoragePort - источник объектов каталога (только чтение)
type PropertyStoragePort interface {
	All(ctx context.Context) ([]domain.PropertyListing, error)
	GetByID(ctx context.Context, id int) (*domain.PropertyListing, error)
}
