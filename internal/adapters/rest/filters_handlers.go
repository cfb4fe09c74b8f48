package rest

import (
	"net/http"
	"strings"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port/usecases_port"
)

type FilterHandler struct {
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase
	resetFiltersUC     usecases_port.ResetFiltersUseCase
	getDictionariesUC  usecases_port.GetDictionariesUseCase
}

func NewFilterHandler(getFilterOptionsUC usecases_port.GetFilterOptionsUseCase,
	resetFiltersUC usecases_port.ResetFiltersUseCase,
	getDictionariesUC usecases_port.GetDictionariesUseCase) *FilterHandler {
	return &FilterHandler{
		getFilterOptionsUC: getFilterOptionsUC,
		resetFiltersUC:     resetFiltersUC,
		getDictionariesUC:  getDictionariesUC,
	}
}

// GetFilterOptions обрабатывает GET /api/v1/filters/options
func (h *FilterHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	result, err := h.getFilterOptionsUC.Execute(r.Context())
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": "GetFilterOptions"})
		WriteJSONError(w, r, http.StatusInternalServerError, "Failed to get filter options")
		return
	}

	opts := result.Options
	RespondWithJSON(w, http.StatusOK, FilterOptionsResponse{
		Price:         PriceRangeOptionResponse{Min: opts.Price.Min, Max: opts.Price.Max, Step: opts.Price.Step},
		Area:          AreaRangeOptionResponse{Min: opts.Area.Min, Max: opts.Area.Max, Step: opts.Area.Step},
		Districts:     toDictionaryItems(opts.Districts),
		PropertyTypes: toDictionaryItems(opts.PropertyTypes),
		Count:         result.Count,
	})
}

// GetFilterDefaults обрабатывает GET /api/v1/filters/defaults (состояние после "Сбросить")
func (h *FilterHandler) GetFilterDefaults(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, toFilterCriteriaResponse(h.resetFiltersUC.Execute(r.Context())))
}

// GetDictionaries обрабатывает GET /api/v1/dictionaries?names=districts,sections
func (h *FilterHandler) GetDictionaries(w http.ResponseWriter, r *http.Request) {
	namesStr := r.URL.Query().Get("names")
	var names []string
	if namesStr != "" {
		names = strings.Split(namesStr, ",")
	}

	dictionaries, err := h.getDictionariesUC.Execute(r.Context(), names)
	if err != nil {
		// Use Case сам логирует ошибки, здесь просто возвращаем 500
		WriteJSONError(w, r, http.StatusInternalServerError, "Failed to retrieve dictionaries")
		return
	}

	response := make(DictionaryItemsResponse, len(dictionaries))
	for key, items := range dictionaries {
		response[key] = toDictionaryItems(items)
	}

	RespondWithJSON(w, http.StatusOK, response)
}
