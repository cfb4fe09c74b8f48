package domain

import "fmt"

// PropertyListing - объект недвижимости из каталога.
// Коллекция заполняется один раз при старте и больше не меняется.
type PropertyListing struct {
	ID       int     `json:"id" yaml:"id"`
	Title    string  `json:"title" yaml:"title"`
	Price    int64   `json:"price" yaml:"price"` // в целых рублях
	Area     float64 `json:"area" yaml:"area"`   // м²
	Rooms    int     `json:"rooms" yaml:"rooms"`
	District string  `json:"district" yaml:"district"`
	Type     string  `json:"type" yaml:"type"`
	Image    string  `json:"image" yaml:"image"`
	IsNew    bool    `json:"isNew" yaml:"isNew"`
}

// Validate проверяет инварианты одной записи
func (p PropertyListing) Validate() error {
	if p.Price < 0 {
		return fmt.Errorf("%w: listing %d: negative price %d", ErrInvalidSeed, p.ID, p.Price)
	}
	if p.Area < 0 {
		return fmt.Errorf("%w: listing %d: negative area %v", ErrInvalidSeed, p.ID, p.Area)
	}
	if p.Rooms < 1 {
		return fmt.Errorf("%w: listing %d: rooms must be at least 1, got %d", ErrInvalidSeed, p.ID, p.Rooms)
	}
	return nil
}

// ValidateCatalog проверяет инварианты всей коллекции, включая уникальность ID
func ValidateCatalog(listings []PropertyListing) error {
	seen := make(map[int]struct{}, len(listings))
	for _, p := range listings {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate listing id %d", ErrInvalidSeed, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// ValidateListingReferences проверяет, что район и тип каждого объекта
// есть в справочниках, иначе селекты фильтра не смогут их предложить.
func ValidateListingReferences(listings []PropertyListing, districts, propertyTypes []DictionaryItem) error {
	knownDistricts := systemNames(districts)
	knownTypes := systemNames(propertyTypes)
	for _, p := range listings {
		if _, ok := knownDistricts[p.District]; !ok {
			return fmt.Errorf("%w: listing %d: unknown district %q", ErrInvalidSeed, p.ID, p.District)
		}
		if _, ok := knownTypes[p.Type]; !ok {
			return fmt.Errorf("%w: listing %d: unknown property type %q", ErrInvalidSeed, p.ID, p.Type)
		}
	}
	return nil
}

func systemNames(items []DictionaryItem) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[item.SystemName] = struct{}{}
	}
	return out
}

// PaginatedResult - страница результатов поиска
type PaginatedResult struct {
	Objects      []PropertyListing
	TotalCount   int
	CurrentPage  int
	ItemsPerPage int
}

// Paginate режет уже отфильтрованный список на страницу.
// limit <= 0 означает "без ограничения".
func Paginate(listings []PropertyListing, limit, offset int) *PaginatedResult {
	total := len(listings)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}

	page := 1
	perPage := total
	if limit > 0 {
		page = offset/limit + 1
		perPage = limit
	}

	objects := make([]PropertyListing, end-offset)
	copy(objects, listings[offset:end])

	return &PaginatedResult{
		Objects:      objects,
		TotalCount:   total,
		CurrentPage:  page,
		ItemsPerPage: perPage,
	}
}
