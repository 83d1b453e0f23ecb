package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"stocksphere-signal/internal/signal/config"
	"stocksphere-signal/internal/signal/dto"
	"stocksphere-signal/pkg/logger"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// guardianQuery is the market-moving topic filter applied to every search.
const guardianQuery = "merger OR acquisition OR deal OR agreement OR policy OR regulation OR trade OR economy OR stock OR market"

type guardianSearchResponse struct {
	Response struct {
		Results []struct {
			WebTitle           string `json:"webTitle"`
			WebURL             string `json:"webUrl"`
			WebPublicationDate string `json:"webPublicationDate"`
			Fields             struct {
				TrailText string `json:"trailText"`
			} `json:"fields"`
		} `json:"results"`
	} `json:"response"`
}

type guardianNewsRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	inmemoryCache  *cache.Cache
}

// NewGuardianNewsRepository creates a NewsRepository backed by the Guardian
// content API. Without an API key it serves a fixed set of sample articles so
// the rest of the pipeline stays exercisable.
func NewGuardianNewsRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	maxPerMinute := cfg.Guardian.MaxRequestPerMinute
	if maxPerMinute <= 0 {
		maxPerMinute = 60
	}
	secondsPerRequest := time.Minute / time.Duration(maxPerMinute)
	return &guardianNewsRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		inmemoryCache:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (r *guardianNewsRepository) GetRecent(ctx context.Context, lookback time.Duration) ([]dto.NewsItem, error) {
	if r.cfg.Guardian.APIKey == "" {
		r.log.Warn("No Guardian API key configured, serving sample news")
		return sampleNews(), nil
	}

	cacheKey := "guardian:" + lookback.String()
	if cached, found := r.inmemoryCache.Get(cacheKey); found {
		return cached.([]dto.NewsItem), nil
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for guardian rate limit: %w", err)
	}

	pageSize := r.cfg.Guardian.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	params := url.Values{}
	params.Set("section", "business|world|politics")
	params.Set("q", guardianQuery)
	params.Set("api-key", r.cfg.Guardian.APIKey)
	params.Set("order-by", "newest")
	params.Set("from-date", time.Now().Add(-lookback).Format("2006-01-02"))
	params.Set("show-fields", "trailText,thumbnail,byline")
	params.Set("page-size", strconv.Itoa(pageSize))

	reqURL := r.cfg.Guardian.BaseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create guardian request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guardian news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("guardian news request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read guardian response body: %w", err)
	}

	var searchResp guardianSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guardian response: %w", err)
	}

	items := make([]dto.NewsItem, 0, len(searchResp.Response.Results))
	for _, article := range searchResp.Response.Results {
		publishedAt, _ := time.Parse(time.RFC3339, article.WebPublicationDate)
		items = append(items, dto.NewsItem{
			Title:       article.WebTitle,
			Description: article.Fields.TrailText,
			PublishedAt: publishedAt,
			URL:         article.WebURL,
		})
	}

	r.log.Info("Fetched guardian news", logger.IntField("count", len(items)))
	r.inmemoryCache.SetDefault(cacheKey, items)

	return items, nil
}

// sampleNews mirrors the canned articles served when no API key is present.
func sampleNews() []dto.NewsItem {
	publishedAt := time.Now().Add(-1 * time.Hour)
	return []dto.NewsItem{
		{Title: "Major tech merger announced", Description: "Positive outlook for sector", PublishedAt: publishedAt},
		{Title: "Federal Reserve raises interest rates", Description: "Market uncertainty increases", PublishedAt: publishedAt},
		{Title: "Strong quarterly earnings reported", Description: "Companies exceed expectations", PublishedAt: publishedAt},
	}
}
