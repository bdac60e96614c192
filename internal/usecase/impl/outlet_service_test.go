package impl

import (
	"context"
	"testing"

	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	mockRepo "fieldforce/internal/mocks/repository"
	mockUsecase "fieldforce/internal/mocks/usecase"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOutletService_ListOutlets(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockTracking := mockUsecase.NewMockTrackingUsecase(t)
	service := NewOutletService(mockOutletRepo, mockTracking, newDiscardLogger())

	ctx := context.Background()
	expected := []*entity.Outlet{
		{ID: uuid.New(), Name: "Gupta Provision", IsActive: true},
		{ID: uuid.New(), Name: "Sharma General Store", IsActive: true},
	}

	mockOutletRepo.EXPECT().
		FindActiveOutlets(ctx).
		Return(expected, nil)

	outlets, err := service.ListOutlets(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, outlets)
}

func TestOutletService_GetOutlet_NotFound(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockTracking := mockUsecase.NewMockTrackingUsecase(t)
	service := NewOutletService(mockOutletRepo, mockTracking, newDiscardLogger())

	ctx := context.Background()
	outletID := uuid.New()

	mockOutletRepo.EXPECT().
		FindOutletByID(ctx, outletID).
		Return(nil, repository.ErrOutletNotFound)

	outlet, err := service.GetOutlet(ctx, outletID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOutletNotFound))
	assert.Nil(t, outlet)
}

func TestOutletService_UpdateOutletAddress(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockTracking := mockUsecase.NewMockTrackingUsecase(t)
	service := NewOutletService(mockOutletRepo, mockTracking, newDiscardLogger())

	ctx := context.Background()
	outletID := uuid.New()

	existing := &entity.Outlet{
		ID:           outletID,
		Name:         "Gupta Provision",
		FullAddress:  "12 Old Market Rd",
		Latitude:     28.60,
		Longitude:    77.20,
		RadiusMeters: 100,
		IsActive:     true,
	}

	mockOutletRepo.EXPECT().
		FindOutletByID(ctx, outletID).
		Return(existing, nil)

	var updated *entity.Outlet
	mockOutletRepo.EXPECT().
		UpdateOutlet(ctx, mock.AnythingOfType("*entity.Outlet")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.Outlet)
		}).
		Return(nil)

	mockTracking.EXPECT().
		RefreshGeofences(ctx).
		Return(nil)

	outlet, err := service.UpdateOutletAddress(ctx, outletID, &usecase.UpdateOutletAddressInput{
		FullAddress: "45 New Bazaar St",
		Latitude:    28.6139,
		Longitude:   77.2090,
	})
	require.NoError(t, err)
	require.NotNil(t, outlet)
	assert.Same(t, updated, outlet)
	assert.Equal(t, "45 New Bazaar St", outlet.FullAddress)
	assert.Equal(t, 28.6139, outlet.Latitude)
	assert.Equal(t, 77.2090, outlet.Longitude)
	// The radius is deployment-fixed.
	assert.Equal(t, 100.0, outlet.RadiusMeters)
}

func TestOutletService_UpdateOutletAddress_RefreshFailureTolerated(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockTracking := mockUsecase.NewMockTrackingUsecase(t)
	service := NewOutletService(mockOutletRepo, mockTracking, newDiscardLogger())

	ctx := context.Background()
	outletID := uuid.New()

	mockOutletRepo.EXPECT().
		FindOutletByID(ctx, outletID).
		Return(&entity.Outlet{ID: outletID, RadiusMeters: 100}, nil)

	mockOutletRepo.EXPECT().
		UpdateOutlet(ctx, mock.AnythingOfType("*entity.Outlet")).
		Return(nil)

	mockTracking.EXPECT().
		RefreshGeofences(ctx).
		Return(errors.New("outlet load failed"))

	// The address change stands even if live sessions could not be
	// refreshed.
	outlet, err := service.UpdateOutletAddress(ctx, outletID, &usecase.UpdateOutletAddressInput{
		FullAddress: "45 New Bazaar St",
		Latitude:    28.6139,
		Longitude:   77.2090,
	})
	require.NoError(t, err)
	assert.NotNil(t, outlet)
}

func TestStockService_ListStock(t *testing.T) {
	mockStockRepo := mockRepo.NewMockStockRepository(t)
	service := NewStockService(mockStockRepo)

	ctx := context.Background()
	distributorID := uuid.New()
	expected := []*entity.SKUCatalogEntry{
		{SKUID: uuid.New(), DistributorID: distributorID, Name: "Parle-G 800g"},
	}

	mockStockRepo.EXPECT().
		ListStock(ctx, distributorID).
		Return(expected, nil)

	entries, err := service.ListStock(ctx, distributorID)
	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}
