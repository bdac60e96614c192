package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"fieldforce/internal/delivery/http/response"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// defaultVisitLimit caps unpaginated visit history queries.
const defaultVisitLimit = 50

// VisitHandlerParams holds dependencies for VisitHandler, injected by Fx.
type VisitHandlerParams struct {
	fx.In

	VisitUC usecase.VisitUsecase
	Logger  *slog.Logger
}

// VisitHandler holds dependencies for visit-history handlers.
type VisitHandler struct {
	visitUC usecase.VisitUsecase
	logger  *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler.
func NewVisitHandler(params VisitHandlerParams) *VisitHandler {
	return &VisitHandler{
		visitUC: params.VisitUC,
		logger:  params.Logger,
	}
}

// ListVisits returns the authenticated rep's visit history, or an outlet's
// history when outlet_id is given.
func (h *VisitHandler) ListVisits(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit := defaultVisitLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "VALIDATION_ERROR", "limit must be a positive integer")
		}
		limit = parsed
	}

	ctx := c.Request().Context()

	if raw := c.QueryParam("outlet_id"); raw != "" {
		outletID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid outlet ID")
		}

		visits, err := h.visitUC.ListVisitsByOutlet(ctx, outletID, limit)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, visits)
	}

	visits, err := h.visitUC.ListVisitsByUser(ctx, userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visits)
}
