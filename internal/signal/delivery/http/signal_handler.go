package http

import (
	"net/http"
	"strconv"
	"strings"

	"stocksphere-signal/internal/signal/service"
	"stocksphere-signal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SignalHandler handles HTTP requests for persisted signals.
type SignalHandler struct {
	historyService service.SignalHistoryService
	logger         *logger.Logger
}

// NewSignalHandler creates a new SignalHandler.
func NewSignalHandler(historyService service.SignalHistoryService, logger *logger.Logger) *SignalHandler {
	return &SignalHandler{historyService: historyService, logger: logger}
}

// RegisterRoutes registers the signal routes to the Echo group.
func (h *SignalHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetRecentSignals)
	g.GET("/:symbol", h.GetSignalsBySymbol)
}

// GetRecentSignals godoc
// @Summary Get recent signals
// @Description Get the most recently generated signals across all symbols
// @Tags signals
// @Produce  json
// @Param   limit  query   int false   "Maximum number of signals"
// @Success 200 {array} dto.SignalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /signals [get]
func (h *SignalHandler) GetRecentSignals(c echo.Context) error {
	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid limit"})
	}

	signals, err := h.historyService.GetRecent(c.Request().Context(), limit)
	if err != nil {
		h.logger.Error("failed to get recent signals", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, signals)
}

// GetSignalsBySymbol godoc
// @Summary Get signals for a symbol
// @Description Get the most recently generated signals for one symbol
// @Tags signals
// @Produce  json
// @Param   symbol path    string  true    "Stock symbol"
// @Param   limit  query   int     false   "Maximum number of signals"
// @Success 200 {array} dto.SignalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /signals/{symbol} [get]
func (h *SignalHandler) GetSignalsBySymbol(c echo.Context) error {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid symbol"})
	}

	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid limit"})
	}

	signals, err := h.historyService.GetBySymbol(c.Request().Context(), symbol, limit)
	if err != nil {
		h.logger.Error("failed to get signals by symbol", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, signals)
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
