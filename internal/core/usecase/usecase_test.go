package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStorage = errors.New("storage unavailable")

type fakeStorage struct {
	listings      []domain.PropertyListing
	districts     []domain.DictionaryItem
	propertyTypes []domain.DictionaryItem
	err           error
	dictErr       error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		listings: []domain.PropertyListing{
			{ID: 1, Title: "Современная квартира в центре", Price: 15_000_000, Area: 85, Rooms: 3, District: "Центральный", Type: "Квартира", IsNew: true},
			{ID: 2, Title: "Просторный пентхаус с видом", Price: 45_000_000, Area: 180, Rooms: 4, District: "Набережный", Type: "Пентхаус", IsNew: true},
			{ID: 3, Title: "Уютная студия для молодых", Price: 7_500_000, Area: 42, Rooms: 1, District: "Деловой", Type: "Студия"},
		},
		districts:     []domain.DictionaryItem{{SystemName: "Центральный", DisplayName: "Центральный"}},
		propertyTypes: []domain.DictionaryItem{{SystemName: "Квартира", DisplayName: "Квартира"}},
	}
}

func (s *fakeStorage) All(ctx context.Context) ([]domain.PropertyListing, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]domain.PropertyListing(nil), s.listings...), nil
}

func (s *fakeStorage) GetByID(ctx context.Context, id int) (*domain.PropertyListing, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.listings {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("get listing %d: %w", id, domain.ErrListingNotFound)
}

func (s *fakeStorage) GetDistricts(ctx context.Context) ([]domain.DictionaryItem, error) {
	return s.districts, s.dictErr
}

func (s *fakeStorage) GetPropertyTypes(ctx context.Context) ([]domain.DictionaryItem, error) {
	return s.propertyTypes, s.dictErr
}

type fakeContent struct {
	content *domain.SiteContent
	err     error
}

func (c *fakeContent) GetSiteContent(ctx context.Context) (*domain.SiteContent, error) {
	return c.content, c.err
}

func TestFindObjectsUseCase(t *testing.T) {
	uc := NewFindObjectsUseCase(newFakeStorage())

	t.Run("filters before paginating", func(t *testing.T) {
		c := domain.DefaultFilterCriteria()
		c.Price.Max = 20_000_000

		result, err := uc.Execute(context.Background(), c, 1, 1)
		require.NoError(t, err)

		assert.Equal(t, 2, result.TotalCount)
		require.Len(t, result.Objects, 1)
		assert.Equal(t, 3, result.Objects[0].ID)
		assert.Equal(t, 2, result.CurrentPage)
	})

	t.Run("no matches", func(t *testing.T) {
		c := domain.DefaultFilterCriteria()
		c.District = "Центральный"
		c.PropertyType = "Пентхаус"

		result, err := uc.Execute(context.Background(), c, 20, 0)
		require.NoError(t, err)
		assert.Zero(t, result.TotalCount)
		assert.Empty(t, result.Objects)
	})

	t.Run("storage error", func(t *testing.T) {
		storage := newFakeStorage()
		storage.err = errStorage

		_, err := NewFindObjectsUseCase(storage).Execute(context.Background(), domain.DefaultFilterCriteria(), 20, 0)
		assert.ErrorIs(t, err, errStorage)
	})
}

func TestGetNewDevelopmentsUseCase(t *testing.T) {
	got, err := NewGetNewDevelopmentsUseCase(newFakeStorage()).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
}

func TestGetObjectDetailsUseCase(t *testing.T) {
	uc := NewGetObjectDetailsUseCase(newFakeStorage())

	got, err := uc.Execute(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Студия", got.Type)

	_, err = uc.Execute(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestGetFilterOptionsUseCase(t *testing.T) {
	storage := newFakeStorage()

	result, err := NewGetFilterOptionsUseCase(storage, storage).Execute(context.Background())
	require.NoError(t, err)

	opts := result.Options
	assert.Equal(t, domain.PriceBounds{Min: 0, Max: 50_000_000, Step: 1_000_000}, opts.Price)
	assert.Equal(t, domain.AreaBounds{Min: 0, Max: 200, Step: 5}, opts.Area)

	require.Len(t, opts.Districts, 2)
	assert.Equal(t, domain.DictionaryItem{SystemName: "all", DisplayName: "Все районы"}, opts.Districts[0])
	require.Len(t, opts.PropertyTypes, 2)
	assert.Equal(t, domain.DictionaryItem{SystemName: "all", DisplayName: "Все типы"}, opts.PropertyTypes[0])

	assert.Equal(t, 3, result.Count)
}

func TestGetFilterOptionsUseCase_CountIsOptional(t *testing.T) {
	storage := newFakeStorage()
	storage.err = errStorage

	result, err := NewGetFilterOptionsUseCase(storage, storage).Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Count)
}

func TestGetFilterOptionsUseCase_DictionaryError(t *testing.T) {
	storage := newFakeStorage()
	storage.dictErr = errStorage

	_, err := NewGetFilterOptionsUseCase(storage, storage).Execute(context.Background())
	assert.ErrorIs(t, err, errStorage)
}

func TestResetFiltersUseCase(t *testing.T) {
	got := NewResetFiltersUseCase().Execute(context.Background())
	assert.True(t, got.IsDefault())
}

func TestGetDictionariesUseCase(t *testing.T) {
	uc := NewGetDictionariesUseCase(newFakeStorage())

	t.Run("all dictionaries", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), nil)
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Len(t, got[domain.DictionarySections], 6)
	})

	t.Run("selected and unknown names", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), []string{" districts ", "unknown"})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Contains(t, got, domain.DictionaryDistricts)
	})
}

func TestGetPageContentUseCase(t *testing.T) {
	content := &domain.SiteContent{CompanyName: "ВенгРос Real Estate"}

	got, err := NewGetPageContentUseCase(&fakeContent{content: content}).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ВенгРос Real Estate", got.CompanyName)

	_, err = NewGetPageContentUseCase(&fakeContent{err: errStorage}).Execute(context.Background())
	assert.ErrorIs(t, err, errStorage)
}
