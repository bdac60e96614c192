package impl

import (
	"context"
	"testing"
	"time"

	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	domainservice "fieldforce/internal/domain/service"
	mockRepo "fieldforce/internal/mocks/repository"
	mockService "fieldforce/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVisitSample() entity.Coordinate {
	return entity.Coordinate{
		Latitude:   28.6139,
		Longitude:  77.2090,
		ObservedAt: time.Now(),
	}
}

func TestVisitService_RecordEntry_Success(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockService.NewMockEventPublisher(t)
	mockNotification := mockService.NewMockNotificationService(t)
	service := NewVisitService(mockVisitRepo, mockDeviceRepo, mockPublisher, mockNotification, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()
	at := time.Now()

	mockVisitRepo.EXPECT().
		FindOpenVisit(ctx, userID, outletID).
		Return(nil, repository.ErrVisitNotFound)

	mockVisitRepo.EXPECT().
		CreateVisit(ctx, mock.AnythingOfType("*entity.Visit")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	visit, err := service.RecordEntry(ctx, userID, outletID, "Sharma General Store", newVisitSample(), at)
	require.NoError(t, err)
	require.NotNil(t, visit)
	assert.Equal(t, userID, visit.UserID)
	assert.Equal(t, outletID, visit.OutletID)
	assert.Equal(t, at, visit.EntryTime)
	assert.True(t, visit.IsOpen())
	assert.True(t, visit.WithinRadius)
}

func TestVisitService_RecordEntry_DanglingOpenVisit(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockService.NewMockEventPublisher(t)
	mockNotification := mockService.NewMockNotificationService(t)
	service := NewVisitService(mockVisitRepo, mockDeviceRepo, mockPublisher, mockNotification, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()

	stale := &entity.Visit{
		ID:        uuid.New(),
		UserID:    userID,
		OutletID:  outletID,
		EntryTime: time.Now().Add(-3 * time.Hour),
	}

	// A stale open visit does not block a fresh entry.
	mockVisitRepo.EXPECT().
		FindOpenVisit(ctx, userID, outletID).
		Return(stale, nil)

	mockVisitRepo.EXPECT().
		CreateVisit(ctx, mock.AnythingOfType("*entity.Visit")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	visit, err := service.RecordEntry(ctx, userID, outletID, "Sharma General Store", newVisitSample(), time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, stale.ID, visit.ID)
}

func TestVisitService_RecordEntry_WriteFailureNotifiesRep(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockService.NewMockEventPublisher(t)
	mockNotification := mockService.NewMockNotificationService(t)
	service := NewVisitService(mockVisitRepo, mockDeviceRepo, mockPublisher, mockNotification, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()

	mockVisitRepo.EXPECT().
		FindOpenVisit(ctx, userID, outletID).
		Return(nil, repository.ErrVisitNotFound)

	mockVisitRepo.EXPECT().
		CreateVisit(ctx, mock.AnythingOfType("*entity.Visit")).
		Return(errors.New("connection refused"))

	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
		{ID: uuid.New(), UserID: userID, FCMToken: "token-2", IsActive: true},
	}

	mockDeviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(devices, nil)

	mockNotification.EXPECT().
		SendBatchNotification(ctx, []string{"token-1", "token-2"}, "Visit not recorded", mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(2, 0, nil, nil)

	// The transition is still published even though the row write failed.
	mockPublisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	visit, err := service.RecordEntry(ctx, userID, outletID, "Sharma General Store", newVisitSample(), time.Now())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVisitWriteFailed))
	assert.Nil(t, visit)
}

func TestVisitService_RecordExit_Success(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockService.NewMockEventPublisher(t)
	mockNotification := mockService.NewMockNotificationService(t)
	service := NewVisitService(mockVisitRepo, mockDeviceRepo, mockPublisher, mockNotification, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()
	entryAt := time.Now().Add(-45 * time.Minute)
	exitAt := time.Now()

	open := &entity.Visit{
		ID:        uuid.New(),
		UserID:    userID,
		OutletID:  outletID,
		EntryTime: entryAt,
	}

	mockVisitRepo.EXPECT().
		FindOpenVisit(ctx, userID, outletID).
		Return(open, nil)

	mockVisitRepo.EXPECT().
		CloseVisit(ctx, open.ID, exitAt, int64(45)).
		Return(nil)

	var published *domainservice.VisitEvent
	mockPublisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*domainservice.VisitEvent)
		}).
		Return(nil)

	visit, err := service.RecordExit(ctx, userID, outletID, "Sharma General Store", newVisitSample(), exitAt)
	require.NoError(t, err)
	require.NotNil(t, visit)
	assert.False(t, visit.IsOpen())
	require.NotNil(t, visit.DurationMinutes)
	assert.Equal(t, int64(45), *visit.DurationMinutes)

	require.NotNil(t, published)
	assert.Equal(t, domainservice.VisitEventExited, published.EventType)
	require.NotNil(t, published.DurationMinutes)
	assert.Equal(t, int64(45), *published.DurationMinutes)
}

func TestVisitService_RecordExit_UsesCachedOpenVisit(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockService.NewMockEventPublisher(t)
	mockNotification := mockService.NewMockNotificationService(t)
	service := NewVisitService(mockVisitRepo, mockDeviceRepo, mockPublisher, mockNotification, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()

	mockVisitRepo.EXPECT().
		FindOpenVisit(ctx, userID, outletID).
		Return(nil, repository.ErrVisitNotFound).
		Once()

	mockVisitRepo.EXPECT().
		CreateVisit(ctx, mock.AnythingOfType("*entity.Visit")).
		Return(nil)

	mockVisitRepo.EXPECT().
		CloseVisit(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time"), mock.AnythingOfType("int64")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	entered, err := service.RecordEntry(ctx, userID, outletID, "Gupta Provision", newVisitSample(), time.Now().Add(-10*time.Minute))
	require.NoError(t, err)

	// No second FindOpenVisit: the exit resolves through the cache.
	exited, err := service.RecordExit(ctx, userID, outletID, "Gupta Provision", newVisitSample(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, entered.ID, exited.ID)
}

func TestVisitService_RecordExit_NoOpenVisit(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockService.NewMockEventPublisher(t)
	mockNotification := mockService.NewMockNotificationService(t)
	service := NewVisitService(mockVisitRepo, mockDeviceRepo, mockPublisher, mockNotification, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()

	mockVisitRepo.EXPECT().
		FindOpenVisit(ctx, userID, outletID).
		Return(nil, repository.ErrVisitNotFound)

	// The exit transition is still published for downstream consumers.
	var published *domainservice.VisitEvent
	mockPublisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*domainservice.VisitEvent)
		}).
		Return(nil)

	visit, err := service.RecordExit(ctx, userID, outletID, "Gupta Provision", newVisitSample(), time.Now())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVisitNotFound))
	assert.Nil(t, visit)

	require.NotNil(t, published)
	assert.Empty(t, published.VisitID)
	assert.Nil(t, published.DurationMinutes)
}

func TestVisitService_RecordExit_WriteFailureNotifiesRep(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockService.NewMockEventPublisher(t)
	mockNotification := mockService.NewMockNotificationService(t)
	service := NewVisitService(mockVisitRepo, mockDeviceRepo, mockPublisher, mockNotification, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()

	open := &entity.Visit{
		ID:        uuid.New(),
		UserID:    userID,
		OutletID:  outletID,
		EntryTime: time.Now().Add(-10 * time.Minute),
	}

	mockVisitRepo.EXPECT().
		FindOpenVisit(ctx, userID, outletID).
		Return(open, nil)

	mockVisitRepo.EXPECT().
		CloseVisit(ctx, open.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("int64")).
		Return(errors.New("connection refused"))

	mockDeviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(nil, nil)

	mockPublisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	visit, err := service.RecordExit(ctx, userID, outletID, "Gupta Provision", newVisitSample(), time.Now())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVisitWriteFailed))
	assert.Nil(t, visit)
}

func TestVisitService_PublisherFailureDoesNotFailEntry(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockService.NewMockEventPublisher(t)
	mockNotification := mockService.NewMockNotificationService(t)
	service := NewVisitService(mockVisitRepo, mockDeviceRepo, mockPublisher, mockNotification, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	outletID := uuid.New()

	mockVisitRepo.EXPECT().
		FindOpenVisit(ctx, userID, outletID).
		Return(nil, repository.ErrVisitNotFound)

	mockVisitRepo.EXPECT().
		CreateVisit(ctx, mock.AnythingOfType("*entity.Visit")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(errors.New("pubsub unavailable"))

	visit, err := service.RecordEntry(ctx, userID, outletID, "Gupta Provision", newVisitSample(), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, visit)
}

func TestVisitService_ListVisitsByUser(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockService.NewMockEventPublisher(t)
	mockNotification := mockService.NewMockNotificationService(t)
	service := NewVisitService(mockVisitRepo, mockDeviceRepo, mockPublisher, mockNotification, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Visit{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	mockVisitRepo.EXPECT().
		FindVisitsByUser(ctx, userID, 20).
		Return(expected, nil)

	visits, err := service.ListVisitsByUser(ctx, userID, 20)
	require.NoError(t, err)
	assert.Equal(t, expected, visits)
}

func TestVisitService_ListVisitsByOutlet(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockService.NewMockEventPublisher(t)
	mockNotification := mockService.NewMockNotificationService(t)
	service := NewVisitService(mockVisitRepo, mockDeviceRepo, mockPublisher, mockNotification, newDiscardLogger())

	ctx := context.Background()
	outletID := uuid.New()
	expected := []*entity.Visit{{ID: uuid.New(), OutletID: outletID}}

	mockVisitRepo.EXPECT().
		FindVisitsByOutlet(ctx, outletID, 0).
		Return(expected, nil)

	visits, err := service.ListVisitsByOutlet(ctx, outletID, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, visits)
}
