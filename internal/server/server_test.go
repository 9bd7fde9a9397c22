package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gazetteer/internal/countries"
)

func testDataset() []countries.Country {
	return []countries.Country{
		{Name: "France", Capital: "Paris", CurrencyName: "Euro", LanguageName: "French", FlagCode: "fr"},
		{Name: "Gabon", Capital: "Libreville", CurrencyName: "CFA franc", LanguageName: "French", FlagCode: "ga"},
		{Name: "Brazil", Capital: "Brasília", CurrencyName: "Brazilian real", LanguageName: "Portuguese", FlagCode: "br"},
		{Name: "Portugal", Capital: "Lisbon", CurrencyName: "Euro", LanguageName: "Portuguese", FlagCode: "pt"},
		{Name: "Austria", Capital: "Vienna", CurrencyName: "Euro", LanguageName: "German", FlagCode: "at"},
	}
}

func get(t *testing.T, handler http.Handler, target string) (*httptest.ResponseRecorder, countries.ListResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var body countries.ListResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestList_PaginatesWithTotalHeader(t *testing.T) {
	h := NewHandler(testDataset(), zerolog.Nop())

	rec, body := get(t, h, "/api/countries?limit=2&offset=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get(countries.TotalCountHeader))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Brazil", body.Items[0].Name)

	// Offset past the end yields an empty page, header still carries the total.
	rec, body = get(t, h, "/api/countries?limit=2&offset=50")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get(countries.TotalCountHeader))
	assert.Empty(t, body.Items)
}

func TestList_FilterIsSubstringAndCaseInsensitive(t *testing.T) {
	h := NewHandler(testDataset(), zerolog.Nop())

	rec, body := get(t, h, "/api/countries?limit=10&language=FRE")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get(countries.TotalCountHeader))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "France", body.Items[0].Name)
	assert.Equal(t, "Gabon", body.Items[1].Name)

	// The header reflects the filtered total even when the page is smaller.
	rec, body = get(t, h, "/api/countries?limit=1&currency=euro")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", rec.Header().Get(countries.TotalCountHeader))
	assert.Len(t, body.Items, 1)
}

func TestList_SortAscendingAndDescending(t *testing.T) {
	h := NewHandler(testDataset(), zerolog.Nop())

	_, body := get(t, h, "/api/countries?limit=10&sortField=capital")
	require.Len(t, body.Items, 5)
	assert.Equal(t, "Brasília", body.Items[0].Capital)
	assert.Equal(t, "Vienna", body.Items[4].Capital)

	_, body = get(t, h, "/api/countries?limit=10&sortField=capital&sortDirection=desc")
	require.Len(t, body.Items, 5)
	assert.Equal(t, "Vienna", body.Items[0].Capital)
}

func TestList_RejectsBadParams(t *testing.T) {
	h := NewHandler(testDataset(), zerolog.Nop())

	cases := []struct {
		name   string
		target string
	}{
		{"bad_limit", "/api/countries?limit=abc"},
		{"zero_limit", "/api/countries?limit=0"},
		{"huge_limit", "/api/countries?limit=5000"},
		{"negative_offset", "/api/countries?offset=-1"},
		{"bad_sort_field", "/api/countries?sortField=flag"},
		{"bad_sort_direction", "/api/countries?sortField=name&sortDirection=sideways"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := get(t, h, tc.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestList_DefaultsAndDatasetFallback(t *testing.T) {
	h := NewHandler(nil, zerolog.Nop())

	rec, body := get(t, h, "/api/countries")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body.Items, defaultLimit)
	assert.NotEmpty(t, rec.Header().Get(countries.TotalCountHeader))
}
