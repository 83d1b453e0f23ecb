package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocksphere-signal/internal/signal/config"
	"stocksphere-signal/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	return log
}

func TestGuardianNewsRepository_NoAPIKeyServesSampleNews(t *testing.T) {
	cfg := &config.Config{}
	repo := NewGuardianNewsRepository(cfg, newTestLogger(t))

	items, err := repo.GetRecent(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "Major tech merger announced", items[0].Title)
}

func TestGuardianNewsRepository_ParsesSearchResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "newest", r.URL.Query().Get("order-by"))
		assert.Equal(t, "business|world|politics", r.URL.Query().Get("section"))
		assert.NotEmpty(t, r.URL.Query().Get("from-date"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"response": map[string]interface{}{
				"results": []map[string]interface{}{
					{
						"webTitle":           "Markets rally on strong earnings",
						"webUrl":             "https://example.com/a",
						"webPublicationDate": "2024-06-01T10:00:00Z",
						"fields":             map[string]string{"trailText": "Profit growth beats forecasts"},
					},
				},
			},
		})
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Guardian.APIKey = "test-key"
	cfg.Guardian.BaseURL = server.URL
	repo := NewGuardianNewsRepository(cfg, newTestLogger(t))

	items, err := repo.GetRecent(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Markets rally on strong earnings", items[0].Title)
	assert.Equal(t, "Profit growth beats forecasts", items[0].Description)
	assert.Equal(t, "https://example.com/a", items[0].URL)
	assert.Equal(t, 2024, items[0].PublishedAt.Year())
}

func TestGuardianNewsRepository_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Guardian.APIKey = "test-key"
	cfg.Guardian.BaseURL = server.URL
	repo := NewGuardianNewsRepository(cfg, newTestLogger(t))

	_, err := repo.GetRecent(context.Background(), 24*time.Hour)

	assert.Error(t, err)
}

func TestGuardianNewsRepository_SecondCallHitsCache(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"response": map[string]interface{}{"results": []map[string]interface{}{}},
		})
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Guardian.APIKey = "test-key"
	cfg.Guardian.BaseURL = server.URL
	repo := NewGuardianNewsRepository(cfg, newTestLogger(t))

	_, err := repo.GetRecent(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	_, err = repo.GetRecent(context.Background(), 24*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}
