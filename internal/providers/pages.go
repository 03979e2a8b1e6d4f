package providers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hsd-hub/ngo-explorer/internal/view"
)

// PagesHandler serves the server-rendered explorer pages. It is a thin
// adapter over the same service the JSON API uses.
type PagesHandler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
}

func NewPagesHandler(logger *slog.Logger, service *Service, templates *view.Engine) *PagesHandler {
	return &PagesHandler{logger: logger, service: service, templates: templates}
}

func (h *PagesHandler) MountRoutes(r chi.Router) {
	r.Get("/", h.ListPage)
	r.Get("/providers", h.ListPage)
	r.Get("/providers/{id}", h.DetailPage)
}

func (h *PagesHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	opts := optionsFromQuery(r)

	records, total, applied, err := h.service.List(r.Context(), opts)
	if err != nil {
		h.logger.Error("render provider list", slog.Any("error", err))
		http.Error(w, "Failed to load providers", http.StatusInternalServerError)
		return
	}

	filters, err := h.service.FilterValues(r.Context())
	if err != nil {
		h.logger.Error("render filter values", slog.Any("error", err))
		http.Error(w, "Failed to load filters", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "pages/providers_list.html", "NGO Providers", map[string]any{
		"Providers":           records,
		"Total":               total,
		"Skip":                applied.Skip,
		"Limit":               applied.Limit,
		"Search":              applied.Search,
		"LocalHealthDistrict": applied.LocalHealthDistrict,
		"CommissioningAgency": applied.CommissioningAgency,
		"Filters":             filters,
		"HasNext":             applied.Skip+len(records) < total,
		"PrevURL":             pageURL(applied, applied.Skip-applied.Limit),
		"NextURL":             pageURL(applied, applied.Skip+applied.Limit),
	})
}

func (h *PagesHandler) DetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid provider ID", http.StatusBadRequest)
		return
	}

	record, err := h.service.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Provider not found", http.StatusNotFound)
		return
	}

	title := "Provider"
	if record.ProviderName != nil {
		title = *record.ProviderName
	}
	h.render(w, r, "pages/provider_detail.html", title, map[string]any{
		"Provider": record,
	})
}

func (h *PagesHandler) render(w http.ResponseWriter, r *http.Request, template, title string, data map[string]any) {
	err := h.templates.Render(w, template, view.TemplateData{
		Title:       title,
		CurrentPath: r.URL.Path,
		Data:        data,
	})
	if err != nil {
		h.logger.Error("render template", slog.Any("error", err), slog.String("template", template))
	}
}

// pageURL rebuilds the listing URL for another page, keeping the active
// filters.
func pageURL(opts ListOptions, skip int) string {
	if skip < 0 {
		skip = 0
	}
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(opts.Limit))
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.LocalHealthDistrict != "" {
		q.Set("local_health_district", opts.LocalHealthDistrict)
	}
	if opts.CommissioningAgency != "" {
		q.Set("commissioning_agency", opts.CommissioningAgency)
	}
	return "/providers?" + q.Encode()
}
