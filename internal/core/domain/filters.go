package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// AllOption - значение селекта "не фильтровать по этому полю"
const AllOption = "all"

// Границы и шаги слайдеров каталога
const (
	DefaultPriceMin int64 = 0
	DefaultPriceMax int64 = 50_000_000
	PriceStep       int64 = 1_000_000

	DefaultAreaMin float64 = 0
	DefaultAreaMax float64 = 200
	AreaStep       float64 = 5
)

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

func (r PriceRange) Contains(v int64) bool { return v >= r.Min && v <= r.Max }

type AreaRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r AreaRange) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// FilterCriteria - набор условий, выбранных пользователем в каталоге.
// Живет в пределах одного запроса.
type FilterCriteria struct {
	SearchText   string     `json:"searchText"`
	Price        PriceRange `json:"priceRange"`
	Area         AreaRange  `json:"areaRange"`
	District     string     `json:"district"`
	PropertyType string     `json:"propertyType"`
}

// DefaultFilterCriteria возвращает критерии "показать все"
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		SearchText:   "",
		Price:        PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax},
		Area:         AreaRange{Min: DefaultAreaMin, Max: DefaultAreaMax},
		District:     AllOption,
		PropertyType: AllOption,
	}
}

// Reset перезаписывает критерии значениями по умолчанию
func (c *FilterCriteria) Reset() {
	*c = DefaultFilterCriteria()
}

// IsDefault - true, если пользователь ничего не менял
func (c FilterCriteria) IsDefault() bool {
	return c == DefaultFilterCriteria()
}

// Matches проверяет все пять условий для одного объекта
func (c FilterCriteria) Matches(p PropertyListing) bool {
	return newMatcher(c).matches(p)
}

// FilterListings возвращает объекты, удовлетворяющие всем условиям,
// в исходном порядке. Исходный срез не изменяется.
func FilterListings(listings []PropertyListing, c FilterCriteria) []PropertyListing {
	m := newMatcher(c)
	result := make([]PropertyListing, 0, len(listings))
	for _, p := range listings {
		if m.matches(p) {
			result = append(result, p)
		}
	}
	return result
}

// NewDevelopments - отдельное представление "Новостройки", не зависит от критериев каталога
func NewDevelopments(listings []PropertyListing) []PropertyListing {
	result := make([]PropertyListing, 0, len(listings))
	for _, p := range listings {
		if p.IsNew {
			result = append(result, p)
		}
	}
	return result
}

type matcher struct {
	criteria FilterCriteria
	folder   cases.Caser
	needle   string
}

// Caser хранит состояние, поэтому создаем свой на каждый проход фильтра
func newMatcher(c FilterCriteria) *matcher {
	folder := cases.Fold()
	return &matcher{
		criteria: c,
		folder:   folder,
		needle:   folder.String(c.SearchText),
	}
}

func (m *matcher) matches(p PropertyListing) bool {
	c := m.criteria

	if m.needle != "" && !strings.Contains(m.folder.String(p.Title), m.needle) {
		return false
	}
	if !c.Price.Contains(p.Price) {
		return false
	}
	if !c.Area.Contains(p.Area) {
		return false
	}
	if c.District != AllOption && p.District != c.District {
		return false
	}
	if c.PropertyType != AllOption && p.Type != c.PropertyType {
		return false
	}
	return true
}
