package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fieldforce/internal/delivery/context"
	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/domain/service"
	"fieldforce/internal/pricing"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface. Carts are always
// re-priced server side against the live catalog; client-computed prices
// are never trusted.
type orderService struct {
	txManager repository.TransactionManager
	stockRepo repository.StockRepository
	orderRepo repository.OrderRepository
	tracking  usecase.TrackingUsecase
	qrcodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	stockRepo repository.StockRepository,
	orderRepo repository.OrderRepository,
	tracking usecase.TrackingUsecase,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		stockRepo: stockRepo,
		orderRepo: orderRepo,
		tracking:  tracking,
		qrcodeSvc: qrcodeSvc,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// QuoteCart prices a cart without side effects.
func (srv *orderService) QuoteCart(ctx context.Context, input *usecase.QuoteCartInput) (*usecase.CartQuote, error) {
	lines, err := toCartLines(input.Lines)
	if err != nil {
		return nil, err
	}

	catalog, err := srv.loadCatalog(ctx, srv.stockRepo, input.DistributorID)
	if err != nil {
		return nil, err
	}

	return buildQuote(lines, catalog), nil
}

// SubmitOrder re-prices the cart, validates stock in one pass, and creates
// the order with a guarded stock decrement inside a single transaction.
func (srv *orderService) SubmitOrder(ctx context.Context, userID uuid.UUID, input *usecase.SubmitOrderInput) (*entity.Order, error) {
	lines, err := toCartLines(input.Lines)
	if err != nil {
		return nil, err
	}

	paymentStatus := entity.PaymentStatus(input.PaymentStatus)
	if !paymentStatus.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid payment status")
	}

	// Order creation is gated on live geofence membership, not on whether
	// the visit row was written.
	if err := srv.requireAtOutlet(ctx, userID, input.OutletID); err != nil {
		return nil, err
	}

	var order *entity.Order

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stockRepo := repoFactory.NewStockRepository()
		orderRepo := repoFactory.NewOrderRepository()

		catalog, err := srv.loadCatalog(ctx, stockRepo, input.DistributorID)
		if err != nil {
			return err
		}

		quote := buildQuote(lines, catalog)

		// A line priced at zero means the catalog entry is missing or
		// degraded; such a cart can be quoted for visibility but never
		// submitted.
		for _, lineQuote := range quote.Lines {
			if lineQuote.MissingEntry || lineQuote.UnitPrice <= 0 {
				return errors.Wrap(domainerrors.ErrUnpricedLine, lineQuote.SKUID)
			}
		}

		// Validate every line before touching stock so the rep sees the
		// complete shortfall list, not just the first failure.
		var shortfalls []domainerrors.StockShortfallItem
		for _, line := range lines {
			if shortfall := pricing.CheckStock(line, catalog[line.SKUID]); shortfall != nil {
				shortfalls = append(shortfalls, domainerrors.StockShortfallItem{
					SKUID:     shortfall.SKUID,
					SKUName:   shortfall.SKUName,
					Required:  shortfall.Required,
					Available: shortfall.Available,
					Shortfall: shortfall.Units(),
				})
			}
		}
		if len(shortfalls) > 0 {
			return domainerrors.NewInsufficientStockError(shortfalls)
		}

		amountPaid, err := resolveAmountPaid(paymentStatus, input.AmountPaid, quote.FinalTotal)
		if err != nil {
			return err
		}

		order = buildOrder(userID, input.OutletID, input.DistributorID, quote, paymentStatus, amountPaid)

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, line := range order.Lines {
			if err := stockRepo.DecrementStock(ctx, line.SKUID, line.TotalUnits); err != nil {
				if errors.Is(err, repository.ErrStockConflict) {
					return errors.Wrap(domainerrors.ErrConflict, "stock changed while submitting the order")
				}

				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.Any("order_id", order.ID),
		slog.Any("outlet_id", order.OutletID),
		slog.Float64("final_total", order.FinalTotal))

	return order, nil
}

// GetOrder retrieves an order with its lines.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, orderID.String())
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListOrders returns a user's orders, most recent first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrdersByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return orders, nil
}

// PaymentQR renders a PNG QR code for the order's outstanding amount.
func (srv *orderService) PaymentQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	outstanding := order.FinalTotal - order.AmountPaid
	if outstanding < 0 {
		outstanding = 0
	}

	png, err := srv.qrcodeSvc.GeneratePaymentQR(order.ID, outstanding)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

// requireAtOutlet checks the user's live geofence membership for the outlet.
func (srv *orderService) requireAtOutlet(ctx context.Context, userID, outletID uuid.UUID) error {
	active, err := srv.tracking.ActiveOutlets(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return errors.Wrap(domainerrors.ErrNotAtOutlet, "no active tracking session")
		}

		return errors.Wrap(err, "failed to check outlet membership")
	}

	for _, id := range active {
		if id == outletID {
			return nil
		}
	}

	return errors.Wrap(domainerrors.ErrNotAtOutlet, outletID.String())
}

// loadCatalog fetches the distributor's catalog keyed by SKU ID.
func (srv *orderService) loadCatalog(ctx context.Context, stockRepo repository.StockRepository, distributorID uuid.UUID) (map[string]*entity.SKUCatalogEntry, error) {
	entries, err := stockRepo.ListStock(ctx, distributorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock")
	}

	catalog := make(map[string]*entity.SKUCatalogEntry, len(entries))
	for _, entry := range entries {
		catalog[entry.SKUID.String()] = entry
	}

	return catalog, nil
}

// toCartLines validates and converts the transport lines into pricing input.
func toCartLines(inputs []usecase.CartLineInput) ([]pricing.CartLine, error) {
	if len(inputs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrEmptyCart, "no lines")
	}

	lines := make([]pricing.CartLine, 0, len(inputs))
	for _, input := range inputs {
		unitType := entity.OrderUnitType(input.UnitType)
		if !unitType.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid unit type %q", input.UnitType)
		}
		if input.Quantity < 1 {
			return nil, errors.Wrap(domainerrors.ErrInvalidQuantity, input.SKUID.String())
		}

		lines = append(lines, pricing.CartLine{
			SKUID:       input.SKUID.String(),
			UnitType:    unitType,
			Quantity:    input.Quantity,
			ApplyScheme: input.ApplyScheme,
		})
	}

	return lines, nil
}

// buildQuote prices every line and aggregates the cart totals.
func buildQuote(lines []pricing.CartLine, catalog map[string]*entity.SKUCatalogEntry) *usecase.CartQuote {
	quote := &usecase.CartQuote{Lines: make([]pricing.LineQuote, 0, len(lines))}

	for _, line := range lines {
		lineQuote := pricing.PriceLine(line, catalog[line.SKUID])
		quote.Lines = append(quote.Lines, lineQuote)
		quote.Subtotal += lineQuote.ExtendedPrice
		quote.TotalDiscount += lineQuote.ExtendedPrice - lineQuote.FinalPrice
		quote.FinalTotal += lineQuote.FinalPrice
	}

	return quote
}

// resolveAmountPaid derives the recorded payment amount from the status.
// It is system-derived except for partial payments, which must carry a
// user-supplied amount within (0, finalTotal].
func resolveAmountPaid(status entity.PaymentStatus, supplied *float64, finalTotal float64) (float64, error) {
	switch status {
	case entity.PaymentStatusPaid:
		return finalTotal, nil
	case entity.PaymentStatusPartiallyPaid:
		if supplied == nil || *supplied <= 0 || *supplied > finalTotal {
			return 0, errors.Wrap(domainerrors.ErrInvalidPartialPayment, "amount_paid out of range")
		}

		return *supplied, nil
	default:
		return 0, nil
	}
}

// buildOrder materializes the priced quote into a persistable order.
func buildOrder(userID, outletID, distributorID uuid.UUID, quote *usecase.CartQuote, status entity.PaymentStatus, amountPaid float64) *entity.Order {
	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		OutletID:      outletID,
		DistributorID: distributorID,
		Subtotal:      quote.Subtotal,
		TotalDiscount: quote.TotalDiscount,
		FinalTotal:    quote.FinalTotal,
		PaymentStatus: status,
		AmountPaid:    amountPaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	order.Lines = make([]entity.OrderLine, 0, len(quote.Lines))
	for _, lineQuote := range quote.Lines {
		order.Lines = append(order.Lines, entity.OrderLine{
			ID:                uuid.New(),
			OrderID:           order.ID,
			SKUID:             uuid.MustParse(lineQuote.SKUID),
			UnitType:          lineQuote.UnitType,
			Quantity:          lineQuote.Quantity,
			ApplyScheme:       lineQuote.ApplyScheme,
			UnitPrice:         lineQuote.UnitPrice,
			TotalUnits:        lineQuote.TotalUnits,
			ExtendedPrice:     lineQuote.ExtendedPrice,
			SchemeDiscountPct: lineQuote.SchemeDiscountPct,
			FinalPrice:        lineQuote.FinalPrice,
		})
	}

	return order
}
