package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fieldforce/internal/delivery/http/response"
	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler holds dependencies for tracking-session handlers.
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler.
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// LocationReportRequest is one device report: either a GPS sample or an
// unavailability reason, never both.
type LocationReportRequest struct {
	Latitude    *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Accuracy    *float64   `json:"accuracy" validate:"omitempty,gte=0"`
	ObservedAt  *time.Time `json:"observed_at"`
	Unavailable string     `json:"unavailable"`
}

// StartSession opens a tracking session for the authenticated rep.
func (h *TrackingHandler) StartSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.trackingUC.StartSession(c.Request().Context(), userID); err != nil {
		if errors.Is(err, domainerrors.ErrSessionAlreadyActive) {
			return response.Conflict(c, "SESSION_ALREADY_ACTIVE", "A tracking session is already running")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"status": "started"})
}

// StopSession tears down the authenticated rep's tracking session.
func (h *TrackingHandler) StopSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.trackingUC.StopSession(c.Request().Context(), userID); err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return response.NotFound(c, "SESSION_NOT_FOUND", "No tracking session is running")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "stopped"})
}

// ReportLocation pushes one device report into the rep's location stream.
func (h *TrackingHandler) ReportLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req LocationReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()

	if req.Unavailable != "" {
		if err := h.trackingUC.ReportLocationUnavailable(ctx, userID, req.Unavailable); err != nil {
			if errors.Is(err, domainerrors.ErrSessionNotFound) {
				return response.NotFound(c, "SESSION_NOT_FOUND", "No tracking session is running")
			}

			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusAccepted, map[string]string{"status": "reported"})
	}

	if req.Latitude == nil || req.Longitude == nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "latitude and longitude are required for a sample")
	}

	observedAt := time.Now()
	if req.ObservedAt != nil {
		observedAt = *req.ObservedAt
	}

	sample := entity.Coordinate{
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		Accuracy:   req.Accuracy,
		ObservedAt: observedAt,
	}

	if err := h.trackingUC.IngestLocation(ctx, userID, sample); err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return response.NotFound(c, "SESSION_NOT_FOUND", "No tracking session is running")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// ActiveOutlets returns the outlets the rep is currently inside.
func (h *TrackingHandler) ActiveOutlets(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	outletIDs, err := h.trackingUC.ActiveOutlets(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return response.NotFound(c, "SESSION_NOT_FOUND", "No tracking session is running")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"outlet_ids": outletIDs})
}

// Status returns the rep's session snapshot.
func (h *TrackingHandler) Status(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	status, err := h.trackingUC.Status(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
