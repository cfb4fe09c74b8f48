package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом.
// Если запрос прошел через LoggerMiddleware, в ответ добавляется trace_id,
// по которому ошибку можно найти в логах.
func WriteJSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	body := map[string]string{"error": message}
	if traceID := contextkeys.TraceIDFromContext(r.Context()); traceID != "" {
		body["trace_id"] = traceID
	}
	RespondWithJSON(w, statusCode, body)
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// Параметры фильтра каталога в query-строке
const (
	ParamSearch   = "q"
	ParamPriceMin = "priceMin"
	ParamPriceMax = "priceMax"
	ParamAreaMin  = "areaMin"
	ParamAreaMax  = "areaMax"
	ParamDistrict = "district"
	ParamType     = "type"
)

// ParseFilterCriteria собирает критерии из query-параметров.
// Отсутствующие, пустые и нечисловые значения заменяются значениями по умолчанию,
// так что разбор никогда не завершается ошибкой. Текст поиска берется как есть,
// пробелы в нем значимы.
func ParseFilterCriteria(query url.Values) domain.FilterCriteria {
	c := domain.DefaultFilterCriteria()

	c.SearchText = query.Get(ParamSearch)
	if v := parseInt64(query, ParamPriceMin); v != nil {
		c.Price.Min = *v
	}
	if v := parseInt64(query, ParamPriceMax); v != nil {
		c.Price.Max = *v
	}
	if v := parseFloat(query, ParamAreaMin); v != nil {
		c.Area.Min = *v
	}
	if v := parseFloat(query, ParamAreaMax); v != nil {
		c.Area.Max = *v
	}
	if v := parseString(query, ParamDistrict); v != "" {
		c.District = v
	}
	if v := parseString(query, ParamType); v != "" {
		c.PropertyType = v
	}
	return c
}

// EncodeFilterCriteria - обратная операция; значения по умолчанию не пишутся
func EncodeFilterCriteria(c domain.FilterCriteria) url.Values {
	def := domain.DefaultFilterCriteria()
	values := url.Values{}
	if c.SearchText != "" {
		values.Set(ParamSearch, c.SearchText)
	}
	if c.Price.Min != def.Price.Min {
		values.Set(ParamPriceMin, strconv.FormatInt(c.Price.Min, 10))
	}
	if c.Price.Max != def.Price.Max {
		values.Set(ParamPriceMax, strconv.FormatInt(c.Price.Max, 10))
	}
	if c.Area.Min != def.Area.Min {
		values.Set(ParamAreaMin, strconv.FormatFloat(c.Area.Min, 'f', -1, 64))
	}
	if c.Area.Max != def.Area.Max {
		values.Set(ParamAreaMax, strconv.FormatFloat(c.Area.Max, 'f', -1, 64))
	}
	if c.District != def.District {
		values.Set(ParamDistrict, c.District)
	}
	if c.PropertyType != def.PropertyType {
		values.Set(ParamType, c.PropertyType)
	}
	return values
}

// ParsePagination разбирает page/perPage (по умолчанию 1 и 20, не больше 100)
func ParsePagination(query url.Values) (page, perPage, limit, offset int) {
	page, _ = strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(query.Get("perPage"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage, perPage, (page - 1) * perPage
}

func parseString(query url.Values, key string) string {
	return strings.TrimSpace(query.Get(key))
}

func parseInt64(query url.Values, key string) *int64 {
	raw := parseString(query, key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloat(query url.Values, key string) *float64 {
	raw := parseString(query, key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
