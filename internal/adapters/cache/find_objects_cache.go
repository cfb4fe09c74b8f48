package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/karlseguin/ccache/v3"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port/usecases_port"
)

type Config struct {
	MaxSize int64
	TTL     time.Duration
}

// FindObjectsCache - декоратор над use case поиска.
// Каталог неизменяем, поэтому записи не инвалидируются, только вытесняются по TTL и размеру.
type FindObjectsCache struct {
	next  usecases_port.FindObjectsUseCase
	local *ccache.Cache[*domain.PaginatedResult]
	ttl   time.Duration
}

func NewFindObjectsCache(next usecases_port.FindObjectsUseCase, cfg Config) *FindObjectsCache {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 1000
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	return &FindObjectsCache{
		next:  next,
		local: ccache.New(ccache.Configure[*domain.PaginatedResult]().MaxSize(cfg.MaxSize)),
		ttl:   cfg.TTL,
	}
}

func (c *FindObjectsCache) Execute(ctx context.Context, filters domain.FilterCriteria, limit, offset int) (*domain.PaginatedResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	key := cacheKey(filters, limit, offset)

	if item := c.local.Get(key); item != nil && !item.Expired() {
		logger.Debug("Cache HIT", port.Fields{"cache_key": key})
		return clone(item.Value()), nil
	}

	logger.Debug("Cache MISS", port.Fields{"cache_key": key})
	result, err := c.next.Execute(ctx, filters, limit, offset)
	if err != nil {
		return nil, err
	}

	c.local.Set(key, clone(result), c.ttl)
	return result, nil
}

// Stop останавливает фоновую горутину ccache
func (c *FindObjectsCache) Stop() {
	c.local.Stop()
}

// ItemCount - число записей, для логов и тестов
func (c *FindObjectsCache) ItemCount() int {
	return c.local.ItemCount()
}

func cacheKey(f domain.FilterCriteria, limit, offset int) string {
	return fmt.Sprintf("q=%q|p=%d-%d|a=%g-%g|d=%q|t=%q|l=%d|o=%d",
		f.SearchText, f.Price.Min, f.Price.Max, f.Area.Min, f.Area.Max,
		f.District, f.PropertyType, limit, offset)
}

func clone(r *domain.PaginatedResult) *domain.PaginatedResult {
	out := *r
	out.Objects = make([]domain.PropertyListing, len(r.Objects))
	copy(out.Objects, r.Objects)
	return &out
}
