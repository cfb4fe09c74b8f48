package port

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
)

type ContentProviderPort interface {
	GetSiteContent(ctx context.Context) (*domain.SiteContent, error)
}

// PriceFormatterPort форматирует цену для показа пользователю
type PriceFormatterPort interface {
	Format(price int64) string
}
