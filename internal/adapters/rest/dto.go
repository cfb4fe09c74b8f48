package rest

// ObjectCardResponse - карточка объекта для списка
type ObjectCardResponse struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Price          int64   `json:"price"`
	PriceFormatted string  `json:"priceFormatted"`
	Area           float64 `json:"area"`
	Rooms          int     `json:"rooms"`
	District       string  `json:"district"`
	Type           string  `json:"type"`
	Image          string  `json:"image"`
	IsNew          bool    `json:"isNew"`
}

type PaginatedObjectsResponse struct {
	Total   int                  `json:"total"`
	Page    int                  `json:"page"`
	PerPage int                  `json:"perPage"`
	Data    []ObjectCardResponse `json:"data"`
}

type ObjectsListResponse struct {
	Total int                  `json:"total"`
	Data  []ObjectCardResponse `json:"data"`
}

type PriceRangeOptionResponse struct {
	Min  int64 `json:"min"`
	Max  int64 `json:"max"`
	Step int64 `json:"step"`
}

type AreaRangeOptionResponse struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

type FilterOptionsResponse struct {
	Price         PriceRangeOptionResponse `json:"price"`
	Area          AreaRangeOptionResponse  `json:"area"`
	Districts     []DictionaryItemResponse `json:"districts"`
	PropertyTypes []DictionaryItemResponse `json:"propertyTypes"`
	Count         int                      `json:"count"`
}

type FilterCriteriaResponse struct {
	SearchText   string     `json:"searchText"`
	PriceRange   [2]int64   `json:"priceRange"`
	AreaRange    [2]float64 `json:"areaRange"`
	District     string     `json:"district"`
	PropertyType string     `json:"propertyType"`
}

// DictionaryItemResponse - элемент справочника
type DictionaryItemResponse struct {
	SystemName  string `json:"system_name"`
	DisplayName string `json:"display_name"`
}

type DictionaryItemsResponse map[string][]DictionaryItemResponse
