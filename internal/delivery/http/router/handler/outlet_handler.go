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

// OutletHandlerParams holds dependencies for OutletHandler, injected by Fx.
type OutletHandlerParams struct {
	fx.In

	OutletUC usecase.OutletUsecase
	Logger   *slog.Logger
}

// OutletHandler holds dependencies for outlet handlers.
type OutletHandler struct {
	outletUC usecase.OutletUsecase
	logger   *slog.Logger
}

// NewOutletHandler is the constructor for OutletHandler.
func NewOutletHandler(params OutletHandlerParams) *OutletHandler {
	return &OutletHandler{
		outletUC: params.OutletUC,
		logger:   params.Logger,
	}
}

// UpdateOutletAddressRequest is the body for changing an outlet's address
// and geofence center.
type UpdateOutletAddressRequest struct {
	FullAddress string  `json:"full_address" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// ListOutlets returns all active outlets.
func (h *OutletHandler) ListOutlets(c echo.Context) error {
	outlets, err := h.outletUC.ListOutlets(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outlets)
}

// GetOutlet returns a single outlet.
func (h *OutletHandler) GetOutlet(c echo.Context) error {
	outletID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid outlet ID")
	}

	outlet, err := h.outletUC.GetOutlet(c.Request().Context(), outletID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outlet)
}

// UpdateOutletAddress changes an outlet's address and geofence center.
func (h *OutletHandler) UpdateOutletAddress(c echo.Context) error {
	outletID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid outlet ID")
	}

	var req UpdateOutletAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	outlet, err := h.outletUC.UpdateOutletAddress(c.Request().Context(), outletID, &usecase.UpdateOutletAddressInput{
		FullAddress: req.FullAddress,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outlet)
}
