package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/adapters/memory"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/adapters/pricefmt"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestServer(t *testing.T, rl RateLimitConfig) http.Handler {
	t.Helper()

	storage, err := memory.NewPropertyStorageAdapter()
	require.NoError(t, err)
	content, err := memory.NewContentAdapter()
	require.NoError(t, err)
	formatter := pricefmt.NewRussianRubleFormatter()

	getInfo := NewGetInfoHandler(
		usecase.NewFindObjectsUseCase(storage),
		usecase.NewGetObjectDetailsUseCase(storage),
		usecase.NewGetNewDevelopmentsUseCase(storage),
		formatter,
	)
	filters := NewFilterHandler(
		usecase.NewGetFilterOptionsUseCase(storage, storage),
		usecase.NewResetFiltersUseCase(),
		usecase.NewGetDictionariesUseCase(storage),
	)
	contentHandler := NewContentHandler(usecase.NewGetPageContentUseCase(content))

	site := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("site"))
	})

	srv := NewServer(ServerConfig{
		Port:               "0",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		RateLimit:          rl,
	}, getInfo, filters, contentHandler, site, contextkeys.LoggerFromContext(t.Context()))
	t.Cleanup(srv.limiter.Close)

	return srv.Handler()
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// normalizeSpaces заменяет неразрывные пробелы обычными
func normalizeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}

func cardIDs(cards []ObjectCardResponse) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestFindObjects(t *testing.T) {
	h := newTestServer(t, RateLimitConfig{})

	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{name: "defaults", query: "", wantIDs: []int{1, 2, 3, 4, 5, 6}},
		{name: "search", query: "?q=%D1%81%D1%82%D1%83%D0%B4%D0%B8%D1%8F", wantIDs: []int{3, 6}},
		{name: "search keeps trailing space", query: "?q=%D1%86%D0%B5%D0%BD%D1%82%D1%80%D0%B5+", wantIDs: []int{}},
		{name: "search without trailing space", query: "?q=%D1%86%D0%B5%D0%BD%D1%82%D1%80%D0%B5", wantIDs: []int{1}},
		{name: "price range", query: "?priceMin=0&priceMax=10000000", wantIDs: []int{3, 6}},
		{name: "district and type", query: "?district=%D0%A6%D0%B5%D0%BD%D1%82%D1%80%D0%B0%D0%BB%D1%8C%D0%BD%D1%8B%D0%B9&type=%D0%9F%D0%B5%D0%BD%D1%82%D1%85%D0%B0%D1%83%D1%81", wantIDs: []int{}},
		{name: "malformed numbers are ignored", query: "?priceMax=lots&areaMin=", wantIDs: []int{1, 2, 3, 4, 5, 6}},
		{name: "pagination", query: "?page=2&perPage=4", wantIDs: []int{5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, h, "/api/v1/objects"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(TraceIDHeader))

			resp := decode[PaginatedObjectsResponse](t, rec)
			assert.Equal(t, tt.wantIDs, cardIDs(resp.Data))
		})
	}
}

func TestFindObjects_TotalCountsAllMatches(t *testing.T) {
	h := newTestServer(t, RateLimitConfig{})

	resp := decode[PaginatedObjectsResponse](t, doGet(t, h, "/api/v1/objects?perPage=2"))

	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.PerPage)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "15 000 000 ₽", normalizeSpaces(resp.Data[0].PriceFormatted))
}

func TestGetObjectDetails(t *testing.T) {
	h := newTestServer(t, RateLimitConfig{})

	rec := doGet(t, h, "/api/v1/objects/3")
	require.Equal(t, http.StatusOK, rec.Code)
	card := decode[ObjectCardResponse](t, rec)
	assert.Equal(t, "Уютная студия для молодых", card.Title)

	assert.Equal(t, http.StatusNotFound, doGet(t, h, "/api/v1/objects/99").Code)

	rec = doGet(t, h, "/api/v1/objects/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "Invalid object ID format", body["error"])
	assert.Equal(t, rec.Header().Get(TraceIDHeader), body["trace_id"], "error body carries the request trace id")
}

func TestErrorBody_UsesIncomingTraceID(t *testing.T) {
	h := newTestServer(t, RateLimitConfig{})

	const traceID = "2f1e6c1a-3a7b-4c55-9d0e-8b6f5a4c3d21"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/objects/99", nil)
	req.Header.Set(TraceIDHeader, traceID)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, traceID, rec.Header().Get(TraceIDHeader))
	assert.Equal(t, map[string]string{"error": "Object not found", "trace_id": traceID}, decode[map[string]string](t, rec))
}

func TestGetNewDevelopments(t *testing.T) {
	h := newTestServer(t, RateLimitConfig{})

	resp := decode[ObjectsListResponse](t, doGet(t, h, "/api/v1/new-developments"))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, []int{1, 2, 5, 6}, cardIDs(resp.Data))
}

func TestFilterEndpoints(t *testing.T) {
	h := newTestServer(t, RateLimitConfig{})

	options := decode[FilterOptionsResponse](t, doGet(t, h, "/api/v1/filters/options"))
	assert.Equal(t, int64(50_000_000), options.Price.Max)
	assert.Equal(t, int64(1_000_000), options.Price.Step)
	assert.Equal(t, 200.0, options.Area.Max)
	require.Len(t, options.Districts, 6)
	assert.Equal(t, "all", options.Districts[0].SystemName)
	require.Len(t, options.PropertyTypes, 5)
	assert.Equal(t, 6, options.Count)

	defaults := decode[FilterCriteriaResponse](t, doGet(t, h, "/api/v1/filters/defaults"))
	assert.Equal(t, FilterCriteriaResponse{
		SearchText:   "",
		PriceRange:   [2]int64{0, 50_000_000},
		AreaRange:    [2]float64{0, 200},
		District:     "all",
		PropertyType: "all",
	}, defaults)

	dictionaries := decode[DictionaryItemsResponse](t, doGet(t, h, "/api/v1/dictionaries?names=sections"))
	require.Contains(t, dictionaries, "sections")
	assert.Len(t, dictionaries["sections"], 6)
	assert.NotContains(t, dictionaries, "districts")
}

func TestGetContent(t *testing.T) {
	h := newTestServer(t, RateLimitConfig{})

	rec := doGet(t, h, "/api/v1/content")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ВенгРос Real Estate", body["company_name"])
	assert.Len(t, body["services"], 6)
}

func TestServer_MountsSiteAtRoot(t *testing.T) {
	h := newTestServer(t, RateLimitConfig{})

	rec := doGet(t, h, "/?section=catalog")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "site", rec.Body.String())
}

func TestServer_CORS(t *testing.T) {
	h := newTestServer(t, RateLimitConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/objects", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RateLimit(t *testing.T) {
	// Cleanup выполняются в обратном порядке: сначала закроется лимитер
	t.Cleanup(func() { goleak.VerifyNone(t) })

	h := newTestServer(t, RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2})

	assert.Equal(t, http.StatusOK, doGet(t, h, "/api/v1/objects").Code)
	assert.Equal(t, http.StatusOK, doGet(t, h, "/api/v1/objects").Code)

	rec := doGet(t, h, "/api/v1/objects")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.NotEmpty(t, decode[map[string]string](t, rec)["trace_id"])

	// страница сайта под лимит не попадает
	assert.Equal(t, http.StatusOK, doGet(t, h, "/").Code)
}
