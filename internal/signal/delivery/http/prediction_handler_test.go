package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocksphere-signal/internal/signal/dto"
	"stocksphere-signal/internal/signal/service"
	"stocksphere-signal/pkg/logger"
)

type fakePredictorService struct {
	portfolioResp *dto.PortfolioResponse
	symbolResp    *dto.PredictionResult
	err           error

	lastSymbol   string
	lastLookback *int
}

func (f *fakePredictorService) PredictPortfolio(_ context.Context, req *dto.PredictRequest) (*dto.PortfolioResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.portfolioResp, nil
}

func (f *fakePredictorService) PredictSymbol(_ context.Context, symbol string, lookbackHours *int) (*dto.PredictionResult, error) {
	f.lastSymbol = symbol
	f.lastLookback = lookbackHours
	if f.err != nil {
		return nil, f.err
	}
	return f.symbolResp, nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	return log
}

func TestPredictPortfolio_ReturnsResponse(t *testing.T) {
	svc := &fakePredictorService{
		portfolioResp: &dto.PortfolioResponse{
			Predictions: []dto.PredictionResult{{Symbol: "AAPL", Prediction: "BUY", Confidence: 0.9}},
			Summary:     dto.PortfolioSummary{TotalSymbols: 1, BuySignals: 1},
			Disclaimer:  service.Disclaimer,
		},
	}
	handler := NewPredictionHandler(svc, newTestLogger(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(`{"symbols":["AAPL"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PredictPortfolio(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PortfolioResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Predictions, 1)
	assert.Equal(t, "AAPL", resp.Predictions[0].Symbol)
	assert.Equal(t, service.Disclaimer, resp.Disclaimer)
}

func TestPredictPortfolio_InvalidRequestReturns400(t *testing.T) {
	svc := &fakePredictorService{err: fmt.Errorf("%w: symbols are required", service.ErrInvalidRequest)}
	handler := NewPredictionHandler(svc, newTestLogger(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(`{"symbols":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PredictPortfolio(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "symbols are required")
}

func TestPredictPortfolio_MalformedBodyReturns400(t *testing.T) {
	handler := NewPredictionHandler(&fakePredictorService{}, newTestLogger(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PredictPortfolio(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictPortfolio_ServiceErrorReturns500(t *testing.T) {
	svc := &fakePredictorService{err: errors.New("boom")}
	handler := NewPredictionHandler(svc, newTestLogger(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(`{"symbols":["AAPL"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PredictPortfolio(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPredictSymbol_PassesLookbackQuery(t *testing.T) {
	svc := &fakePredictorService{symbolResp: &dto.PredictionResult{Symbol: "AAPL", Prediction: "HOLD"}}
	handler := NewPredictionHandler(svc, newTestLogger(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictions/aapl?lookbackHours=48", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("symbol")
	c.SetParamValues("aapl")

	require.NoError(t, handler.PredictSymbol(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "aapl", svc.lastSymbol)
	require.NotNil(t, svc.lastLookback)
	assert.Equal(t, 48, *svc.lastLookback)
}

func TestPredictSymbol_OmittedLookbackPassesNil(t *testing.T) {
	svc := &fakePredictorService{symbolResp: &dto.PredictionResult{Symbol: "AAPL", Prediction: "HOLD"}}
	handler := NewPredictionHandler(svc, newTestLogger(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictions/AAPL", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("symbol")
	c.SetParamValues("AAPL")

	require.NoError(t, handler.PredictSymbol(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.lastLookback)
}

func TestPredictSymbol_InvalidLookbackReturns400(t *testing.T) {
	handler := NewPredictionHandler(&fakePredictorService{}, newTestLogger(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictions/AAPL?lookbackHours=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("symbol")
	c.SetParamValues("AAPL")

	require.NoError(t, handler.PredictSymbol(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
