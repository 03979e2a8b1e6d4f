package providers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hsd-hub/ngo-explorer/internal/platform/httpx"
)

// Handler exposes the JSON read API over the provider service.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

type listResponse struct {
	Items []Provider `json:"items"`
	Total int        `json:"total"`
	Skip  int        `json:"skip"`
	Limit int        `json:"limit"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	opts := optionsFromQuery(r)

	records, total, applied, err := h.service.List(r.Context(), opts)
	if err != nil {
		h.logger.Error("list providers", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, listResponse{
		Items: records,
		Total: total,
		Skip:  applied.Skip,
		Limit: applied.Limit,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "provider id must be an integer")
		return
	}

	record, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, record)
}

func (h *Handler) Filters(w http.ResponseWriter, r *http.Request) {
	values, err := h.service.FilterValues(r.Context())
	if err != nil {
		h.logger.Error("list filter values", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, values)
}

// optionsFromQuery maps query parameters onto ListOptions. Malformed numbers
// fall back to the defaults rather than failing the request.
func optionsFromQuery(r *http.Request) ListOptions {
	q := r.URL.Query()
	skip, _ := strconv.Atoi(q.Get("skip"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return ListOptions{
		Skip:                skip,
		Limit:               limit,
		LocalHealthDistrict: q.Get("local_health_district"),
		CommissioningAgency: q.Get("commissioning_agency"),
		Search:              q.Get("search"),
	}
}
