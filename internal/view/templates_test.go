package view

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	assert.NoError(t, err, "Templates should parse without error")
	assert.NotNil(t, engine)
}

func TestRenderProviderList(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	name := "River Valley Services"
	rec := httptest.NewRecorder()
	err = engine.Render(rec, "pages/providers_list.html", TemplateData{
		Title:       "NGO Providers",
		CurrentPath: "/providers",
		Data: map[string]any{
			"Providers": []struct {
				ID                  int64
				ProviderName        *string
				ProgramName         *string
				LocalHealthDistrict *string
				CommissioningAgency *string
			}{{ID: 1, ProviderName: &name}},
			"Total":   1,
			"Skip":    0,
			"Limit":   50,
			"Search":  "",
			"HasNext": false,
			"PrevURL": "",
			"NextURL": "",
			"LocalHealthDistrict": "",
			"CommissioningAgency": "",
			"Filters": map[string][]string{
				"LocalHealthDistricts":  {"Sydney"},
				"CommissioningAgencies": {"DCJ"},
			},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "River Valley Services")
}
