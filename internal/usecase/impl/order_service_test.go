package impl

import (
	"context"
	"testing"

	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	mockRepo "fieldforce/internal/mocks/repository"
	mockService "fieldforce/internal/mocks/service"
	mockUsecase "fieldforce/internal/mocks/usecase"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 {
	return &v
}

// catalogEntry builds a SKU with PTR 100, 12 units per case and plenty of
// stock unless overridden.
func catalogEntry(skuID, distributorID uuid.UUID) *entity.SKUCatalogEntry {
	return &entity.SKUCatalogEntry{
		SKUID:         skuID,
		DistributorID: distributorID,
		Name:          "Parle-G 800g",
		MRP:           130,
		PTR:           ptrFloat(100),
		UnitsPerCase:  12,
		StockQuantity: 1000,
	}
}

type orderServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	stockRepo *mockRepo.MockStockRepository
	orderRepo *mockRepo.MockOrderRepository
	tracking  *mockUsecase.MockTrackingUsecase
	qrcodeSvc *mockService.MockQRCodeService
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	t.Helper()

	mocks := &orderServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		stockRepo: mockRepo.NewMockStockRepository(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		tracking:  mockUsecase.NewMockTrackingUsecase(t),
		qrcodeSvc: mockService.NewMockQRCodeService(t),
	}

	service := NewOrderService(
		mocks.txManager,
		mocks.stockRepo,
		mocks.orderRepo,
		mocks.tracking,
		mocks.qrcodeSvc,
		newDiscardLogger(),
	)

	return service, mocks
}

// expectTransaction wires the transaction manager to run the callback
// against a factory backed by the given repositories.
func expectTransaction(mocks *orderServiceMocks, stockRepo repository.StockRepository, orderRepo repository.OrderRepository) {
	factory := &mockRepo.MockRepositoryFactory{}
	factory.EXPECT().NewStockRepository().Return(stockRepo).Maybe()
	factory.EXPECT().NewOrderRepository().Return(orderRepo).Maybe()

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestOrderService_QuoteCart_CaseLineWithScheme(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	distributorID := uuid.New()
	skuID := uuid.New()

	mocks.stockRepo.EXPECT().
		ListStock(ctx, distributorID).
		Return([]*entity.SKUCatalogEntry{catalogEntry(skuID, distributorID)}, nil)

	quote, err := service.QuoteCart(ctx, &usecase.QuoteCartInput{
		DistributorID: distributorID,
		Lines: []usecase.CartLineInput{
			{SKUID: skuID, UnitType: "cases", Quantity: 10, ApplyScheme: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, quote.Lines, 1)

	// 10 cases x 12 units x 100 PTR, 2% tier for 6-20 cases.
	line := quote.Lines[0]
	assert.Equal(t, 120, line.TotalUnits)
	assert.InDelta(t, 12000.0, line.ExtendedPrice, 0.001)
	assert.InDelta(t, 2.0, line.SchemeDiscountPct, 0.001)
	assert.InDelta(t, 11760.0, line.FinalPrice, 0.001)
	assert.InDelta(t, 12000.0, quote.Subtotal, 0.001)
	assert.InDelta(t, 240.0, quote.TotalDiscount, 0.001)
	assert.InDelta(t, 11760.0, quote.FinalTotal, 0.001)
}

func TestOrderService_QuoteCart_UnitLineNeverDiscounted(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	distributorID := uuid.New()
	skuID := uuid.New()

	mocks.stockRepo.EXPECT().
		ListStock(ctx, distributorID).
		Return([]*entity.SKUCatalogEntry{catalogEntry(skuID, distributorID)}, nil)

	quote, err := service.QuoteCart(ctx, &usecase.QuoteCartInput{
		DistributorID: distributorID,
		Lines: []usecase.CartLineInput{
			// ApplyScheme is ignored for unit lines.
			{SKUID: skuID, UnitType: "units", Quantity: 30, ApplyScheme: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, quote.Lines, 1)
	assert.Zero(t, quote.Lines[0].SchemeDiscountPct)
	assert.InDelta(t, 3000.0, quote.FinalTotal, 0.001)
}

func TestOrderService_QuoteCart_MRPFallbackPricing(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	distributorID := uuid.New()
	skuID := uuid.New()

	entry := catalogEntry(skuID, distributorID)
	entry.PTR = nil // Price falls back to MRP / 1.3.

	mocks.stockRepo.EXPECT().
		ListStock(ctx, distributorID).
		Return([]*entity.SKUCatalogEntry{entry}, nil)

	quote, err := service.QuoteCart(ctx, &usecase.QuoteCartInput{
		DistributorID: distributorID,
		Lines: []usecase.CartLineInput{
			{SKUID: skuID, UnitType: "units", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, quote.FinalTotal, 0.001)
}

func TestOrderService_QuoteCart_EmptyCart(t *testing.T) {
	service, _ := newOrderService(t)

	_, err := service.QuoteCart(context.Background(), &usecase.QuoteCartInput{
		DistributorID: uuid.New(),
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_QuoteCart_InvalidLines(t *testing.T) {
	service, _ := newOrderService(t)
	ctx := context.Background()
	distributorID := uuid.New()

	_, err := service.QuoteCart(ctx, &usecase.QuoteCartInput{
		DistributorID: distributorID,
		Lines: []usecase.CartLineInput{
			{SKUID: uuid.New(), UnitType: "pallets", Quantity: 1},
		},
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = service.QuoteCart(ctx, &usecase.QuoteCartInput{
		DistributorID: distributorID,
		Lines: []usecase.CartLineInput{
			{SKUID: uuid.New(), UnitType: "units", Quantity: 0},
		},
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestOrderService_QuoteCart_MissingCatalogEntry(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	distributorID := uuid.New()

	mocks.stockRepo.EXPECT().
		ListStock(ctx, distributorID).
		Return(nil, nil)

	// A cart with an unknown SKU can still be quoted; the line is flagged.
	quote, err := service.QuoteCart(ctx, &usecase.QuoteCartInput{
		DistributorID: distributorID,
		Lines: []usecase.CartLineInput{
			{SKUID: uuid.New(), UnitType: "units", Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, quote.Lines, 1)
	assert.True(t, quote.Lines[0].MissingEntry)
	assert.Zero(t, quote.Lines[0].UnitPrice)
}

func TestOrderService_SubmitOrder_Success(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()
	distributorID := uuid.New()
	skuID := uuid.New()

	mocks.tracking.EXPECT().
		ActiveOutlets(ctx, userID).
		Return([]uuid.UUID{outletID}, nil)

	txStockRepo := mockRepo.NewMockStockRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(mocks, txStockRepo, txOrderRepo)

	txStockRepo.EXPECT().
		ListStock(ctx, distributorID).
		Return([]*entity.SKUCatalogEntry{catalogEntry(skuID, distributorID)}, nil)

	var created *entity.Order
	txOrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Order)
		}).
		Return(nil)

	// 25 cases of 12 units.
	txStockRepo.EXPECT().
		DecrementStock(ctx, skuID, 300).
		Return(nil)

	order, err := service.SubmitOrder(ctx, userID, &usecase.SubmitOrderInput{
		OutletID:      outletID,
		DistributorID: distributorID,
		PaymentStatus: "paid",
		Lines: []usecase.CartLineInput{
			{SKUID: skuID, UnitType: "cases", Quantity: 25, ApplyScheme: true},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Same(t, created, order)

	// 25 cases hits the 3% tier: 300 x 100 = 30000, final 29100.
	assert.InDelta(t, 30000.0, order.Subtotal, 0.001)
	assert.InDelta(t, 900.0, order.TotalDiscount, 0.001)
	assert.InDelta(t, 29100.0, order.FinalTotal, 0.001)
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
	assert.InDelta(t, 29100.0, order.AmountPaid, 0.001)

	require.Len(t, order.Lines, 1)
	assert.Equal(t, skuID, order.Lines[0].SKUID)
	assert.Equal(t, 300, order.Lines[0].TotalUnits)
	assert.Equal(t, order.ID, order.Lines[0].OrderID)
}

func TestOrderService_SubmitOrder_NotAtOutlet(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()

	mocks.tracking.EXPECT().
		ActiveOutlets(ctx, userID).
		Return([]uuid.UUID{uuid.New()}, nil)

	_, err := service.SubmitOrder(ctx, userID, &usecase.SubmitOrderInput{
		OutletID:      outletID,
		DistributorID: uuid.New(),
		PaymentStatus: "unpaid",
		Lines: []usecase.CartLineInput{
			{SKUID: uuid.New(), UnitType: "units", Quantity: 1},
		},
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotAtOutlet))
}

func TestOrderService_SubmitOrder_NoTrackingSession(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.tracking.EXPECT().
		ActiveOutlets(ctx, userID).
		Return(nil, errors.Wrap(domainerrors.ErrSessionNotFound, userID.String()))

	_, err := service.SubmitOrder(ctx, userID, &usecase.SubmitOrderInput{
		OutletID:      uuid.New(),
		DistributorID: uuid.New(),
		PaymentStatus: "unpaid",
		Lines: []usecase.CartLineInput{
			{SKUID: uuid.New(), UnitType: "units", Quantity: 1},
		},
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotAtOutlet))
}

func TestOrderService_SubmitOrder_UnpricedLine(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()
	distributorID := uuid.New()

	mocks.tracking.EXPECT().
		ActiveOutlets(ctx, userID).
		Return([]uuid.UUID{outletID}, nil)

	txStockRepo := mockRepo.NewMockStockRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(mocks, txStockRepo, txOrderRepo)

	// Unknown SKU: quote survives, submission does not.
	txStockRepo.EXPECT().
		ListStock(ctx, distributorID).
		Return(nil, nil)

	_, err := service.SubmitOrder(ctx, userID, &usecase.SubmitOrderInput{
		OutletID:      outletID,
		DistributorID: distributorID,
		PaymentStatus: "unpaid",
		Lines: []usecase.CartLineInput{
			{SKUID: uuid.New(), UnitType: "units", Quantity: 1},
		},
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnpricedLine))
}

func TestOrderService_SubmitOrder_InsufficientStockCollectsAllShortfalls(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()
	distributorID := uuid.New()
	skuA := uuid.New()
	skuB := uuid.New()
	skuC := uuid.New()

	entryA := catalogEntry(skuA, distributorID)
	entryA.StockQuantity = 5
	entryB := catalogEntry(skuB, distributorID)
	entryB.Name = "Tata Salt 1kg"
	entryB.StockQuantity = 20
	entryC := catalogEntry(skuC, distributorID)

	mocks.tracking.EXPECT().
		ActiveOutlets(ctx, userID).
		Return([]uuid.UUID{outletID}, nil)

	txStockRepo := mockRepo.NewMockStockRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(mocks, txStockRepo, txOrderRepo)

	txStockRepo.EXPECT().
		ListStock(ctx, distributorID).
		Return([]*entity.SKUCatalogEntry{entryA, entryB, entryC}, nil)

	_, err := service.SubmitOrder(ctx, userID, &usecase.SubmitOrderInput{
		OutletID:      outletID,
		DistributorID: distributorID,
		PaymentStatus: "unpaid",
		Lines: []usecase.CartLineInput{
			{SKUID: skuA, UnitType: "units", Quantity: 10},
			{SKUID: skuB, UnitType: "cases", Quantity: 2},
			{SKUID: skuC, UnitType: "units", Quantity: 1},
		},
	})
	require.Error(t, err)

	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	require.Len(t, stockErr.Items, 2)

	assert.Equal(t, skuA.String(), stockErr.Items[0].SKUID)
	assert.Equal(t, 10, stockErr.Items[0].Required)
	assert.Equal(t, 5, stockErr.Items[0].Available)
	assert.Equal(t, 5, stockErr.Items[0].Shortfall)

	// 2 cases x 12 units against 20 in stock.
	assert.Equal(t, skuB.String(), stockErr.Items[1].SKUID)
	assert.Equal(t, 24, stockErr.Items[1].Required)
	assert.Equal(t, 20, stockErr.Items[1].Available)
	assert.Equal(t, 4, stockErr.Items[1].Shortfall)
}

func TestOrderService_SubmitOrder_PartialPaymentValidation(t *testing.T) {
	tests := []struct {
		name       string
		amountPaid *float64
		wantErr    bool
	}{
		{"Missing amount", nil, true},
		{"Zero amount", ptrFloat(0), true},
		{"Exceeds total", ptrFloat(2000), true},
		{"Valid partial", ptrFloat(500), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mocks := newOrderService(t)

			ctx := context.Background()
			userID := uuid.New()
			outletID := uuid.New()
			distributorID := uuid.New()
			skuID := uuid.New()

			mocks.tracking.EXPECT().
				ActiveOutlets(ctx, userID).
				Return([]uuid.UUID{outletID}, nil)

			txStockRepo := mockRepo.NewMockStockRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			expectTransaction(mocks, txStockRepo, txOrderRepo)

			// 10 units x 100 = 1000 final total.
			txStockRepo.EXPECT().
				ListStock(ctx, distributorID).
				Return([]*entity.SKUCatalogEntry{catalogEntry(skuID, distributorID)}, nil)

			if !tt.wantErr {
				txOrderRepo.EXPECT().
					CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
					Return(nil)
				txStockRepo.EXPECT().
					DecrementStock(ctx, skuID, 10).
					Return(nil)
			}

			order, err := service.SubmitOrder(ctx, userID, &usecase.SubmitOrderInput{
				OutletID:      outletID,
				DistributorID: distributorID,
				PaymentStatus: "partially_paid",
				AmountPaid:    tt.amountPaid,
				Lines: []usecase.CartLineInput{
					{SKUID: skuID, UnitType: "units", Quantity: 10},
				},
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidPartialPayment))

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, 500.0, order.AmountPaid, 0.001)
		})
	}
}

func TestOrderService_SubmitOrder_StockConflictRollsBack(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()
	distributorID := uuid.New()
	skuID := uuid.New()

	mocks.tracking.EXPECT().
		ActiveOutlets(ctx, userID).
		Return([]uuid.UUID{outletID}, nil)

	txStockRepo := mockRepo.NewMockStockRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(mocks, txStockRepo, txOrderRepo)

	txStockRepo.EXPECT().
		ListStock(ctx, distributorID).
		Return([]*entity.SKUCatalogEntry{catalogEntry(skuID, distributorID)}, nil)

	txOrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	// A concurrent order drained the stock between validation and the
	// guarded decrement.
	txStockRepo.EXPECT().
		DecrementStock(ctx, skuID, 10).
		Return(repository.ErrStockConflict)

	_, err := service.SubmitOrder(ctx, userID, &usecase.SubmitOrderInput{
		OutletID:      outletID,
		DistributorID: distributorID,
		PaymentStatus: "unpaid",
		Lines: []usecase.CartLineInput{
			{SKUID: skuID, UnitType: "units", Quantity: 10},
		},
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestOrderService_SubmitOrder_InvalidPaymentStatus(t *testing.T) {
	service, _ := newOrderService(t)

	_, err := service.SubmitOrder(context.Background(), uuid.New(), &usecase.SubmitOrderInput{
		OutletID:      uuid.New(),
		DistributorID: uuid.New(),
		PaymentStatus: "settled",
		Lines: []usecase.CartLineInput{
			{SKUID: uuid.New(), UnitType: "units", Quantity: 1},
		},
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := service.GetOrder(ctx, orderID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListOrders(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Order{{ID: uuid.New(), UserID: userID}}

	mocks.orderRepo.EXPECT().
		FindOrdersByUser(ctx, userID, 10).
		Return(expected, nil)

	orders, err := service.ListOrders(ctx, userID, 10)
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderService_PaymentQR_OutstandingAmount(t *testing.T) {
	service, mocks := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	order := &entity.Order{
		ID:            orderID,
		FinalTotal:    1500,
		AmountPaid:    600,
		PaymentStatus: entity.PaymentStatusPartiallyPaid,
	}

	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(order, nil)

	mocks.qrcodeSvc.EXPECT().
		GeneratePaymentQR(orderID, 900.0).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := service.PaymentQR(ctx, orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
