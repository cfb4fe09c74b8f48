package domain

// DictionaryItem - универсальная структура для элемента справочника
type DictionaryItem struct {
	SystemName  string `json:"system_name" yaml:"system_name"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// Названия справочников, доступных через API
const (
	DictionaryDistricts     = "districts"
	DictionaryPropertyTypes = "property_types"
	DictionarySections      = "sections"
)

type PriceBounds struct {
	Min  int64
	Max  int64
	Step int64
}

type AreaBounds struct {
	Min  float64
	Max  float64
	Step float64
}

// FilterOptions - все, что нужно форме фильтра: диапазоны слайдеров и варианты селектов.
// Первый элемент селектов всегда "all".
type FilterOptions struct {
	Price         PriceBounds
	Area          AreaBounds
	Districts     []DictionaryItem
	PropertyTypes []DictionaryItem
}

type FilterOptionsResult struct {
	Options FilterOptions
	Count   int
}
