package internal

import (
	"fmt"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/adapters/memory"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/adapters/pricefmt"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port/usecases_port"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/usecase"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Catalog - собранные use case'ы поверх встроенных данных.
// Используется и сервером, и catalogctl.
type Catalog struct {
	FindObjects     usecases_port.FindObjectsUseCase
	NewDevelopments usecases_port.GetNewDevelopmentsUseCase
	ObjectDetails   usecases_port.GetObjectDetailsUseCase
	FilterOptions   usecases_port.GetFilterOptionsUseCase
	ResetFilters    usecases_port.ResetFiltersUseCase
	Dictionaries    usecases_port.GetDictionariesUseCase
	PageContent     usecases_port.GetPageContentUseCase
	PriceFormatter  port.PriceFormatterPort
}

// NewCatalog загружает встроенный каталог и контент (с проверкой по схемам)
// и собирает use case'ы. Ошибка данных - ошибка старта.
func NewCatalog(priceCurrency currency.Unit) (*Catalog, error) {
	storage, err := memory.NewPropertyStorageAdapter()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	content, err := memory.NewContentAdapter()
	if err != nil {
		return nil, fmt.Errorf("failed to load site content: %w", err)
	}

	return &Catalog{
		FindObjects:     usecase.NewFindObjectsUseCase(storage),
		NewDevelopments: usecase.NewGetNewDevelopmentsUseCase(storage),
		ObjectDetails:   usecase.NewGetObjectDetailsUseCase(storage),
		FilterOptions:   usecase.NewGetFilterOptionsUseCase(storage, storage),
		ResetFilters:    usecase.NewResetFiltersUseCase(),
		Dictionaries:    usecase.NewGetDictionariesUseCase(storage),
		PageContent:     usecase.NewGetPageContentUseCase(content),
		PriceFormatter:  pricefmt.NewPriceFormatter(language.Russian, priceCurrency),
	}, nil
}
