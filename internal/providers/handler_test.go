package providers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, records ...Provider) http.Handler {
	t.Helper()
	repo := NewRepository(newTestStore(t))
	if len(records) > 0 {
		seed(t, repo, records...)
	}
	handler := NewHandler(testLogger(), NewService(repo))
	r := chi.NewRouter()
	r.Route("/api", handler.MountRoutes)
	return r
}

func getJSON(t *testing.T, h http.Handler, url string, out any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestListEndpoint(t *testing.T) {
	api := newTestAPI(t,
		Provider{ProviderName: ptr("Alpha Support")},
		Provider{ProviderName: ptr("Bravo Outreach")},
	)

	var resp struct {
		Items []Provider `json:"items"`
		Total int        `json:"total"`
		Skip  int        `json:"skip"`
		Limit int        `json:"limit"`
	}
	rec := getJSON(t, api, "/api/providers?limit=1", &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Limit)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Alpha Support", *resp.Items[0].ProviderName)

	rec = getJSON(t, api, "/api/providers?limit=1000&skip=-3", &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MaxLimit, resp.Limit, "limit clamps to the cap")
	assert.Zero(t, resp.Skip, "negative skip clamps to zero")
}

func TestListEndpointEmptyStore(t *testing.T) {
	api := newTestAPI(t)

	rec := getJSON(t, api, "/api/providers", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`, "empty page serialises as [], not null")
}

func TestGetEndpoint(t *testing.T) {
	api := newTestAPI(t, Provider{ProviderName: ptr("Alpha Support")})

	var p Provider
	rec := getJSON(t, api, "/api/providers/1", &p)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alpha Support", *p.ProviderName)
	assert.Nil(t, p.ProgramName)

	rec = getJSON(t, api, "/api/providers/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = getJSON(t, api, "/api/providers/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFiltersEndpoint(t *testing.T) {
	api := newTestAPI(t,
		Provider{ProviderName: ptr("A"), LocalHealthDistrict: ptr("Sydney"), CommissioningAgency: ptr("DCJ")},
		Provider{ProviderName: ptr("B")},
	)

	var resp FilterValues
	rec := getJSON(t, api, "/api/filters", &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Sydney"}, resp.LocalHealthDistricts)
	assert.Equal(t, []string{"DCJ"}, resp.CommissioningAgencies)
}
