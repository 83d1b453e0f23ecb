package http

import (
	"errors"
	"net/http"
	"strconv"

	"stocksphere-signal/internal/signal/dto"
	"stocksphere-signal/internal/signal/service"
	"stocksphere-signal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictionHandler handles HTTP requests for signal predictions.
type PredictionHandler struct {
	predictorService service.PredictorService
	logger           *logger.Logger
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictorService service.PredictorService, logger *logger.Logger) *PredictionHandler {
	return &PredictionHandler{predictorService: predictorService, logger: logger}
}

// RegisterRoutes registers the prediction routes to the Echo group.
func (h *PredictionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.PredictPortfolio)
	g.GET("/:symbol", h.PredictSymbol)
}

// PredictPortfolio godoc
// @Summary Predict a portfolio of symbols
// @Description Score every requested symbol against the shared news batch and its technical snapshot
// @Tags predictions
// @Accept  json
// @Produce  json
// @Param   request  body    dto.PredictRequest   true    "Symbols to score"
// @Success 200 {object} dto.PortfolioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /predictions [post]
func (h *PredictionHandler) PredictPortfolio(c echo.Context) error {
	var req dto.PredictRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.predictorService.PredictPortfolio(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.Error("failed to predict portfolio", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

// PredictSymbol godoc
// @Summary Predict a single symbol
// @Description Score one symbol and include the simulated 30-day price distribution
// @Tags predictions
// @Produce  json
// @Param   symbol         path    string  true    "Stock symbol"
// @Param   lookbackHours  query   int     false   "News lookback window in hours"
// @Success 200 {object} dto.PredictionResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /predictions/{symbol} [get]
func (h *PredictionHandler) PredictSymbol(c echo.Context) error {
	symbol := c.Param("symbol")

	var lookbackHours *int
	if raw := c.QueryParam("lookbackHours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid lookbackHours"})
		}
		lookbackHours = &parsed
	}

	result, err := h.predictorService.PredictSymbol(c.Request().Context(), symbol, lookbackHours)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.Error("failed to predict symbol", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}
