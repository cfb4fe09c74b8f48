package usecases_port

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
)

type GetDictionariesUseCase interface {
	Execute(ctx context.Context, names []string) (map[string][]domain.DictionaryItem, error)
}
