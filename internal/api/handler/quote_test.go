package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maridopro/pricing-api/internal/domain"
	"github.com/maridopro/pricing-api/internal/usecases/pricing"
)

type fakeSettingsService struct {
	profile domain.SettingsProfile
	err     error
}

func (f *fakeSettingsService) Get() (domain.SettingsProfile, error) {
	return f.profile, f.err
}

func (f *fakeSettingsService) Update(profile domain.SettingsProfile) (domain.SettingsProfile, error) {
	f.profile = profile
	return profile, nil
}

func (f *fakeSettingsService) Reset() (domain.SettingsProfile, error) {
	f.profile = domain.DefaultSettings()
	return f.profile, nil
}

func TestComputeQuote(t *testing.T) {
	settingsService := &fakeSettingsService{profile: domain.DefaultSettings()}
	handler := ComputeQuote(pricing.NewService(), settingsService)

	body := `{
		"clientName": "Maria",
		"distanceKm": 20,
		"totalHours": 3,
		"materialsProvider": "client",
		"services": [{"name": "Instalação de chuveiro", "price": 150}]
	}`

	request := httptest.NewRequest(http.MethodPost, "/v1/quotes/compute", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var response quoteResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	// Valores arredondados para precisão de moeda na apresentação
	assert.InDelta(t, 191.44, response.Total, 1e-9)
	assert.InDelta(t, 15.0, response.Breakdown.Displacement, 1e-9)
	assert.InDelta(t, 0.75, response.Breakdown.Tools, 1e-9)
	assert.InDelta(t, 8.29, response.Breakdown.Taxes, 1e-9)
}

func TestComputeQuote_CorpoInvalido(t *testing.T) {
	settingsService := &fakeSettingsService{profile: domain.DefaultSettings()}
	handler := ComputeQuote(pricing.NewService(), settingsService)

	request := httptest.NewRequest(http.MethodPost, "/v1/quotes/compute", strings.NewReader(`{quebrado`))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var apiErr struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, "VAL_001", apiErr.Code)
}

func TestShareMessage(t *testing.T) {
	settingsService := &fakeSettingsService{profile: domain.DefaultSettings()}
	handler := ShareMessage(pricing.NewService(), settingsService)

	body := `{
		"clientName": "Maria",
		"totalHours": 2,
		"services": [{"name": "Pintura", "price": 300}]
	}`

	request := httptest.NewRequest(http.MethodPost, "/v1/quotes/share-message", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Contains(t, response["message"], "Olá Maria!")
	assert.Contains(t, response["message"], "Pintura")
	assert.True(t, strings.HasPrefix(response["url"], "https://wa.me/?text="))
}
