package memory

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contracts"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"

	"gopkg.in/yaml.v3"
)

//go:embed seed/*.yaml
var seedFS embed.FS

// catalogDocument - формат файла seed/catalog.yaml
type catalogDocument struct {
	Listings      []domain.PropertyListing `json:"listings" yaml:"listings"`
	Districts     []domain.DictionaryItem  `json:"districts" yaml:"districts"`
	PropertyTypes []domain.DictionaryItem  `json:"property_types" yaml:"property_types"`
}

// PropertyStorageAdapter - хранилище каталога в памяти.
// После создания данные только читаются, поэтому блокировки не нужны.
type PropertyStorageAdapter struct {
	listings      []domain.PropertyListing
	byID          map[int]int
	districts     []domain.DictionaryItem
	propertyTypes []domain.DictionaryItem
}

// NewPropertyStorageAdapter загружает встроенный каталог
func NewPropertyStorageAdapter() (*PropertyStorageAdapter, error) {
	raw, err := seedFS.ReadFile("seed/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}
	return NewPropertyStorageAdapterFromYAML(raw)
}

// NewPropertyStorageAdapterFromYAML разбирает и проверяет документ каталога:
// сначала по JSON-схеме, затем по инвариантам домена.
func NewPropertyStorageAdapterFromYAML(raw []byte) (*PropertyStorageAdapter, error) {
	var doc catalogDocument
	if err := decodeDocument(contracts.CatalogDocument, raw, &doc); err != nil {
		return nil, err
	}
	if err := domain.ValidateCatalog(doc.Listings); err != nil {
		return nil, err
	}
	if err := domain.ValidateListingReferences(doc.Listings, doc.Districts, doc.PropertyTypes); err != nil {
		return nil, err
	}

	byID := make(map[int]int, len(doc.Listings))
	for i, p := range doc.Listings {
		byID[p.ID] = i
	}

	return &PropertyStorageAdapter{
		listings:      doc.Listings,
		byID:          byID,
		districts:     doc.Districts,
		propertyTypes: doc.PropertyTypes,
	}, nil
}

// All возвращает копию коллекции в исходном порядке
func (a *PropertyStorageAdapter) All(ctx context.Context) ([]domain.PropertyListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.PropertyListing, len(a.listings))
	copy(out, a.listings)
	return out, nil
}

func (a *PropertyStorageAdapter) GetByID(ctx context.Context, id int) (*domain.PropertyListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx, ok := a.byID[id]
	if !ok {
		return nil, fmt.Errorf("get listing %d: %w", id, domain.ErrListingNotFound)
	}
	listing := a.listings[idx]
	return &listing, nil
}

func (a *PropertyStorageAdapter) GetDistricts(ctx context.Context) ([]domain.DictionaryItem, error) {
	return copyItems(a.districts), ctx.Err()
}

func (a *PropertyStorageAdapter) GetPropertyTypes(ctx context.Context) ([]domain.DictionaryItem, error) {
	return copyItems(a.propertyTypes), ctx.Err()
}

func copyItems(items []domain.DictionaryItem) []domain.DictionaryItem {
	out := make([]domain.DictionaryItem, len(items))
	copy(out, items)
	return out
}

// decodeDocument проверяет YAML-документ по JSON-схеме и только потом
// раскладывает его в структуру. Схема видит исходные ключи: пропущенные
// и лишние поля не маскируются нулевыми значениями структуры.
func decodeDocument(docType string, raw []byte, out interface{}) error {
	var generic interface{}
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("%w: failed to parse %s yaml: %v", domain.ErrInvalidSeed, docType, err)
	}

	body, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %v", domain.ErrInvalidSeed, docType, err)
	}
	if err := contracts.ValidateDocument(docType, contracts.CurrentVersion, body); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidSeed, docType, err)
	}

	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %v", domain.ErrInvalidSeed, docType, err)
	}
	return nil
}
