package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/adapters/rest"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port/usecases_port"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// SectionParam - query-параметр активного раздела
const SectionParam = "section"

const (
	badgeNew            = "Новое"
	badgeNewDevelopment = "Новостройка"
)

type PageHandler struct {
	findObjectsUC      usecases_port.FindObjectsUseCase
	getNewObjectsUC    usecases_port.GetNewDevelopmentsUseCase
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase
	getPageContentUC   usecases_port.GetPageContentUseCase
	formatter          port.PriceFormatterPort
	tmpl               *template.Template
}

func NewPageHandler(findObjectsUC usecases_port.FindObjectsUseCase,
	getNewObjectsUC usecases_port.GetNewDevelopmentsUseCase,
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase,
	getPageContentUC usecases_port.GetPageContentUseCase,
	formatter port.PriceFormatterPort) (*PageHandler, error) {

	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"sectionURL": sectionURL,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	return &PageHandler{
		findObjectsUC:      findObjectsUC,
		getNewObjectsUC:    getNewObjectsUC,
		getFilterOptionsUC: getFilterOptionsUC,
		getPageContentUC:   getPageContentUC,
		formatter:          formatter,
		tmpl:               tmpl,
	}, nil
}

// Routes - страница и встроенная статика
func (h *PageHandler) Routes() http.Handler {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		// каталог встроен при компиляции
		panic(err)
	}

	r := chi.NewRouter()
	r.Get("/", h.RenderPage)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	return r
}

type navItem struct {
	DisplayName string
	URL         string
	Active      bool
}

type cardView struct {
	domain.PropertyListing
	PriceFormatted string
	Badge          string
}

type catalogView struct {
	Filters       domain.FilterCriteria
	Options       domain.FilterOptions
	PriceMinLabel string
	PriceMaxLabel string
	Found         int
	Cards         []cardView
	ResetURL      string
}

type pageView struct {
	Title           string
	Active          string
	Nav             []navItem
	Content         *domain.SiteContent
	Catalog         *catalogView
	NewDevelopments []cardView
}

// RenderPage обрабатывает GET /. Выводится только активный раздел,
// данные для остальных не запрашиваются.
func (h *PageHandler) RenderPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	active := domain.ParseSection(query.Get(SectionParam))

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"handler": "RenderPage",
		"section": string(active),
	})

	content, err := h.getPageContentUC.Execute(ctx)
	if err != nil {
		logger.Error("Failed to get page content", err, nil)
		writeServerError(w, r)
		return
	}

	view := pageView{
		Title:   content.CompanyName,
		Active:  string(active),
		Nav:     buildNav(active),
		Content: content,
	}

	switch active {
	case domain.SectionCatalog:
		view.Catalog, err = h.buildCatalog(r, query)
	case domain.SectionNewDevelopments:
		var listings []domain.PropertyListing
		listings, err = h.getNewObjectsUC.Execute(ctx)
		view.NewDevelopments = h.toCards(listings, func(domain.PropertyListing) string { return badgeNewDevelopment })
	}
	if err != nil {
		logger.Error("Failed to build section", err, nil)
		writeServerError(w, r)
		return
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "page", view); err != nil {
		logger.Error("Failed to render page", err, nil)
		writeServerError(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *PageHandler) buildCatalog(r *http.Request, query url.Values) (*catalogView, error) {
	filters := rest.ParseFilterCriteria(query)

	options, err := h.getFilterOptionsUC.Execute(r.Context())
	if err != nil {
		return nil, err
	}

	// на странице показываем весь результат, без пагинации
	result, err := h.findObjectsUC.Execute(r.Context(), filters, 0, 0)
	if err != nil {
		return nil, err
	}

	return &catalogView{
		Filters:       filters,
		Options:       options.Options,
		PriceMinLabel: h.formatter.Format(filters.Price.Min),
		PriceMaxLabel: h.formatter.Format(filters.Price.Max),
		Found:         result.TotalCount,
		Cards: h.toCards(result.Objects, func(p domain.PropertyListing) string {
			if p.IsNew {
				return badgeNew
			}
			return ""
		}),
		ResetURL: sectionURL(string(domain.SectionCatalog)),
	}, nil
}

func (h *PageHandler) toCards(listings []domain.PropertyListing, badge func(domain.PropertyListing) string) []cardView {
	cards := make([]cardView, len(listings))
	for i, p := range listings {
		cards[i] = cardView{
			PropertyListing: p,
			PriceFormatted:  h.formatter.Format(p.Price),
			Badge:           badge(p),
		}
	}
	return cards
}

func buildNav(active domain.Section) []navItem {
	sections := domain.Sections()
	nav := make([]navItem, len(sections))
	for i, s := range sections {
		nav[i] = navItem{
			DisplayName: s.DisplayName,
			URL:         sectionURL(s.SystemName),
			Active:      s.SystemName == string(active),
		}
	}
	return nav
}

// writeServerError отвечает 500 и, если есть, показывает trace_id,
// чтобы посетитель мог назвать его при обращении
func writeServerError(w http.ResponseWriter, r *http.Request) {
	message := "Internal Server Error"
	if traceID := contextkeys.TraceIDFromContext(r.Context()); traceID != "" {
		message += "\ntrace_id: " + traceID
	}
	http.Error(w, message, http.StatusInternalServerError)
}

// sectionURL - ссылка на раздел; сброс фильтров каталога - это ссылка без параметров фильтра
func sectionURL(section string) string {
	if section == string(domain.SectionHome) {
		return "/"
	}
	return "/?" + url.Values{SectionParam: {section}}.Encode()
}

// FilterURL - ссылка на каталог с заданными критериями
func FilterURL(c domain.FilterCriteria) string {
	values := rest.EncodeFilterCriteria(c)
	values.Set(SectionParam, string(domain.SectionCatalog))
	return "/?" + values.Encode()
}
