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

// defaultOrderLimit caps unpaginated order history queries.
const defaultOrderLimit = 50

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CartLineRequest is one cart entry as submitted by the order drawer.
type CartLineRequest struct {
	SKUID       uuid.UUID `json:"sku_id" validate:"required"`
	UnitType    string    `json:"unit_type" validate:"required,oneof=units cases"`
	Quantity    int       `json:"quantity" validate:"required,min=1"`
	ApplyScheme bool      `json:"apply_scheme"`
}

// QuoteCartRequest is the body for pricing a cart without submitting it.
type QuoteCartRequest struct {
	DistributorID uuid.UUID         `json:"distributor_id" validate:"required"`
	Lines         []CartLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// SubmitOrderRequest is the body for submitting an order.
type SubmitOrderRequest struct {
	OutletID      uuid.UUID         `json:"outlet_id" validate:"required"`
	DistributorID uuid.UUID         `json:"distributor_id" validate:"required"`
	PaymentStatus string            `json:"payment_status" validate:"required,oneof=unpaid partially_paid paid"`
	AmountPaid    *float64          `json:"amount_paid" validate:"omitempty,gt=0"`
	Lines         []CartLineRequest `json:"lines" validate:"required,min=1,dive"`
}

func toCartLineInputs(lines []CartLineRequest) []usecase.CartLineInput {
	inputs := make([]usecase.CartLineInput, 0, len(lines))
	for _, line := range lines {
		inputs = append(inputs, usecase.CartLineInput{
			SKUID:       line.SKUID,
			UnitType:    line.UnitType,
			Quantity:    line.Quantity,
			ApplyScheme: line.ApplyScheme,
		})
	}

	return inputs
}

// QuoteCart prices a cart without side effects.
func (h *OrderHandler) QuoteCart(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	var req QuoteCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quote, err := h.orderUC.QuoteCart(c.Request().Context(), &usecase.QuoteCartInput{
		DistributorID: req.DistributorID,
		Lines:         toCartLineInputs(req.Lines),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// SubmitOrder creates an order from the cart.
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SubmitOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.SubmitOrder(c.Request().Context(), userID, &usecase.SubmitOrderInput{
		OutletID:      req.OutletID,
		DistributorID: req.DistributorID,
		PaymentStatus: req.PaymentStatus,
		AmountPaid:    req.AmountPaid,
		Lines:         toCartLineInputs(req.Lines),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// GetOrder returns one order with its lines.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListOrders returns the authenticated rep's order history.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit := defaultOrderLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "VALIDATION_ERROR", "limit must be a positive integer")
		}
		limit = parsed
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// PaymentQR renders a PNG QR code for the order's outstanding amount.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.PaymentQR(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
