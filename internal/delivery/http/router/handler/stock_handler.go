package handler

import (
	"log/slog"
	"net/http"

	"fieldforce/internal/delivery/http/response"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StockHandlerParams holds dependencies for StockHandler, injected by Fx.
type StockHandlerParams struct {
	fx.In

	StockUC usecase.StockUsecase
	Logger  *slog.Logger
}

// StockHandler holds dependencies for catalog handlers.
type StockHandler struct {
	stockUC usecase.StockUsecase
	logger  *slog.Logger
}

// NewStockHandler is the constructor for StockHandler.
func NewStockHandler(params StockHandlerParams) *StockHandler {
	return &StockHandler{
		stockUC: params.StockUC,
		logger:  params.Logger,
	}
}

// ListStock returns a distributor's SKU catalog with live stock levels.
func (h *StockHandler) ListStock(c echo.Context) error {
	distributorID, err := uuid.Parse(c.QueryParam("distributor_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "distributor_id is required")
	}

	entries, err := h.stockUC.ListStock(c.Request().Context(), distributorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}
