package rest

import (
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
)

func toObjectCards(listings []domain.PropertyListing, formatter port.PriceFormatterPort) []ObjectCardResponse {
	out := make([]ObjectCardResponse, len(listings))
	for i, p := range listings {
		out[i] = toObjectCard(p, formatter)
	}
	return out
}

func toObjectCard(p domain.PropertyListing, formatter port.PriceFormatterPort) ObjectCardResponse {
	return ObjectCardResponse{
		ID:             p.ID,
		Title:          p.Title,
		Price:          p.Price,
		PriceFormatted: formatter.Format(p.Price),
		Area:           p.Area,
		Rooms:          p.Rooms,
		District:       p.District,
		Type:           p.Type,
		Image:          p.Image,
		IsNew:          p.IsNew,
	}
}

func toDictionaryItems(items []domain.DictionaryItem) []DictionaryItemResponse {
	out := make([]DictionaryItemResponse, len(items))
	for i, item := range items {
		out[i] = DictionaryItemResponse{SystemName: item.SystemName, DisplayName: item.DisplayName}
	}
	return out
}

func toFilterCriteriaResponse(c domain.FilterCriteria) FilterCriteriaResponse {
	return FilterCriteriaResponse{
		SearchText:   c.SearchText,
		PriceRange:   [2]int64{c.Price.Min, c.Price.Max},
		AreaRange:    [2]float64{c.Area.Min, c.Area.Max},
		District:     c.District,
		PropertyType: c.PropertyType,
	}
}
