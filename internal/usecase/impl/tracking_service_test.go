package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/infra/location"
	mockRepo "fieldforce/internal/mocks/repository"
	mockUsecase "fieldforce/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Connaught Place, New Delhi. insideSample sits at the fence center;
// outsideSample is roughly 1.1 km north.
const (
	fenceLat = 28.6139
	fenceLng = 77.2090
)

func newTrackingOutlet(radiusMeters float64) *entity.Outlet {
	return &entity.Outlet{
		ID:           uuid.New(),
		Name:         "Sharma General Store",
		Latitude:     fenceLat,
		Longitude:    fenceLng,
		RadiusMeters: radiusMeters,
		IsActive:     true,
	}
}

func insideSample() entity.Coordinate {
	return entity.Coordinate{Latitude: fenceLat, Longitude: fenceLng, ObservedAt: time.Now()}
}

func outsideSample() entity.Coordinate {
	return entity.Coordinate{Latitude: fenceLat + 0.01, Longitude: fenceLng, ObservedAt: time.Now()}
}

func TestTrackingService_StartSession_AlreadyActive(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockVisits := mockUsecase.NewMockVisitUsecase(t)
	feed := location.NewDeviceFeed()
	service := NewTrackingService(mockOutletRepo, feed, feed, mockVisits, newGeofenceConfig(100), newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockOutletRepo.EXPECT().
		FindActiveOutlets(mock.Anything).
		Return([]*entity.Outlet{newTrackingOutlet(100)}, nil)

	require.NoError(t, service.StartSession(ctx, userID))
	defer func() { _ = service.StopSession(ctx, userID) }()

	err := service.StartSession(ctx, userID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionAlreadyActive))
}

func TestTrackingService_StopSession_NotFound(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockVisits := mockUsecase.NewMockVisitUsecase(t)
	feed := location.NewDeviceFeed()
	service := NewTrackingService(mockOutletRepo, feed, feed, mockVisits, newGeofenceConfig(100), newDiscardLogger())

	err := service.StopSession(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestTrackingService_IngestLocation_NoSession(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockVisits := mockUsecase.NewMockVisitUsecase(t)
	feed := location.NewDeviceFeed()
	service := NewTrackingService(mockOutletRepo, feed, feed, mockVisits, newGeofenceConfig(100), newDiscardLogger())

	err := service.IngestLocation(context.Background(), uuid.New(), insideSample())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestTrackingService_EntryAndExitTransitions(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockVisits := mockUsecase.NewMockVisitUsecase(t)
	feed := location.NewDeviceFeed()
	service := NewTrackingService(mockOutletRepo, feed, feed, mockVisits, newGeofenceConfig(100), newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outlet := newTrackingOutlet(100)

	mockOutletRepo.EXPECT().
		FindActiveOutlets(mock.Anything).
		Return([]*entity.Outlet{outlet}, nil)

	var entries, exits atomic.Int32
	mockVisits.EXPECT().
		RecordEntry(mock.Anything, userID, outlet.ID, outlet.Name, mock.AnythingOfType("entity.Coordinate"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { entries.Add(1) }).
		Return(&entity.Visit{ID: uuid.New()}, nil)
	mockVisits.EXPECT().
		RecordExit(mock.Anything, userID, outlet.ID, outlet.Name, mock.AnythingOfType("entity.Coordinate"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { exits.Add(1) }).
		Return(&entity.Visit{ID: uuid.New()}, nil)

	require.NoError(t, service.StartSession(ctx, userID))

	// First sample inside the fence opens a visit.
	require.NoError(t, service.IngestLocation(ctx, userID, insideSample()))
	require.Eventually(t, func() bool { return entries.Load() == 1 }, time.Second, 5*time.Millisecond)

	status, err := service.Status(ctx, userID)
	require.NoError(t, err)
	assert.True(t, status.Active)
	assert.True(t, status.LocationAvailable)
	assert.Equal(t, []uuid.UUID{outlet.ID}, status.ActiveOutletIDs)

	// A second inside sample is not a transition.
	require.NoError(t, service.IngestLocation(ctx, userID, insideSample()))

	// Leaving the fence closes the visit.
	require.NoError(t, service.IngestLocation(ctx, userID, outsideSample()))
	require.Eventually(t, func() bool { return exits.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), entries.Load())

	status, err = service.Status(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, status.ActiveOutletIDs)

	require.NoError(t, service.StopSession(ctx, userID))
}

func TestTrackingService_LocationUnavailableKeepsMembership(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockVisits := mockUsecase.NewMockVisitUsecase(t)
	feed := location.NewDeviceFeed()
	service := NewTrackingService(mockOutletRepo, feed, feed, mockVisits, newGeofenceConfig(100), newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outlet := newTrackingOutlet(100)

	mockOutletRepo.EXPECT().
		FindActiveOutlets(mock.Anything).
		Return([]*entity.Outlet{outlet}, nil)

	var entries atomic.Int32
	mockVisits.EXPECT().
		RecordEntry(mock.Anything, userID, outlet.ID, outlet.Name, mock.AnythingOfType("entity.Coordinate"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { entries.Add(1) }).
		Return(&entity.Visit{ID: uuid.New()}, nil)

	require.NoError(t, service.StartSession(ctx, userID))

	require.NoError(t, service.IngestLocation(ctx, userID, insideSample()))
	require.Eventually(t, func() bool { return entries.Load() == 1 }, time.Second, 5*time.Millisecond)

	// GPS loss marks the stream unavailable but does not synthesize an exit.
	require.NoError(t, service.ReportLocationUnavailable(ctx, userID, "gps permission denied"))
	require.Eventually(t, func() bool {
		status, err := service.Status(ctx, userID)

		return err == nil && !status.LocationAvailable
	}, time.Second, 5*time.Millisecond)

	status, err := service.Status(ctx, userID)
	require.NoError(t, err)
	assert.True(t, status.Active)
	assert.Equal(t, []uuid.UUID{outlet.ID}, status.ActiveOutletIDs)

	// The next valid sample clears the condition.
	require.NoError(t, service.IngestLocation(ctx, userID, insideSample()))
	require.Eventually(t, func() bool {
		status, err := service.Status(ctx, userID)

		return err == nil && status.LocationAvailable
	}, time.Second, 5*time.Millisecond)

	// Stopping while inside does not synthesize an exit; the visit stays
	// open until the device reports leaving.
	require.NoError(t, service.StopSession(ctx, userID))
	assert.Equal(t, int32(1), entries.Load())
}

func TestTrackingService_StatusWithoutSession(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockVisits := mockUsecase.NewMockVisitUsecase(t)
	feed := location.NewDeviceFeed()
	service := NewTrackingService(mockOutletRepo, feed, feed, mockVisits, newGeofenceConfig(100), newDiscardLogger())

	status, err := service.Status(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.False(t, status.LocationAvailable)
	assert.Nil(t, status.LastSample)
	assert.Empty(t, status.ActiveOutletIDs)
}

func TestTrackingService_ActiveOutlets_NoSession(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockVisits := mockUsecase.NewMockVisitUsecase(t)
	feed := location.NewDeviceFeed()
	service := NewTrackingService(mockOutletRepo, feed, feed, mockVisits, newGeofenceConfig(100), newDiscardLogger())

	_, err := service.ActiveOutlets(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestTrackingService_RefreshGeofences(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockVisits := mockUsecase.NewMockVisitUsecase(t)
	feed := location.NewDeviceFeed()
	service := NewTrackingService(mockOutletRepo, feed, feed, mockVisits, newGeofenceConfig(100), newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outlet := newTrackingOutlet(100)

	mockOutletRepo.EXPECT().
		FindActiveOutlets(mock.Anything).
		Return([]*entity.Outlet{outlet}, nil).
		Once()

	require.NoError(t, service.StartSession(ctx, userID))
	defer func() { _ = service.StopSession(ctx, userID) }()

	// The outlet set changed; running sessions pick up the new fences.
	relocated := newTrackingOutlet(250)
	mockOutletRepo.EXPECT().
		FindActiveOutlets(mock.Anything).
		Return([]*entity.Outlet{outlet, relocated}, nil).
		Once()

	require.NoError(t, service.RefreshGeofences(ctx))
}

func TestTrackingService_DefaultRadiusApplied(t *testing.T) {
	mockOutletRepo := mockRepo.NewMockOutletRepository(t)
	mockVisits := mockUsecase.NewMockVisitUsecase(t)
	feed := location.NewDeviceFeed()
	// Default radius large enough that insideSample is inside even though
	// the outlet itself carries no radius.
	service := NewTrackingService(mockOutletRepo, feed, feed, mockVisits, newGeofenceConfig(150), newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outlet := newTrackingOutlet(0)

	mockOutletRepo.EXPECT().
		FindActiveOutlets(mock.Anything).
		Return([]*entity.Outlet{outlet}, nil)

	var entries atomic.Int32
	mockVisits.EXPECT().
		RecordEntry(mock.Anything, userID, outlet.ID, outlet.Name, mock.AnythingOfType("entity.Coordinate"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { entries.Add(1) }).
		Return(&entity.Visit{ID: uuid.New()}, nil)

	require.NoError(t, service.StartSession(ctx, userID))

	require.NoError(t, service.IngestLocation(ctx, userID, insideSample()))
	require.Eventually(t, func() bool { return entries.Load() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, service.StopSession(ctx, userID))
}
