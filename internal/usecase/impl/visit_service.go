// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "fieldforce/internal/delivery/context"
	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/domain/service"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type visitKey struct {
	userID   uuid.UUID
	outletID uuid.UUID
}

// visitService implements the VisitUsecase interface. It is the write path
// of the visit ledger: entry and exit transitions become visit rows, and
// every transition is published for async processing regardless of whether
// the row write succeeded. Failed writes are logged and pushed to the rep's
// devices; they are never retried.
type visitService struct {
	visitRepo       repository.VisitRepository
	deviceRepo      repository.DeviceRepository
	publisher       service.EventPublisher
	notificationSvc service.NotificationService
	logger          *slog.Logger

	// openVisits caches each open visit so exits close the right row
	// without a lookup. The repository remains the source of truth; the
	// cache falls back to FindOpenVisit on miss.
	mu         sync.Mutex
	openVisits map[visitKey]*entity.Visit
}

// NewVisitService is the constructor for visitService.
func NewVisitService(
	visitRepo repository.VisitRepository,
	deviceRepo repository.DeviceRepository,
	publisher service.EventPublisher,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.VisitUsecase {
	return &visitService{
		visitRepo:       visitRepo,
		deviceRepo:      deviceRepo,
		publisher:       publisher,
		notificationSvc: notificationSvc,
		logger:          logger,
		openVisits:      make(map[visitKey]*entity.Visit),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordEntry opens a visit for the (user, outlet) pair.
func (srv *visitService) RecordEntry(ctx context.Context, userID uuid.UUID, outletID uuid.UUID, outletName string, sample entity.Coordinate, at time.Time) (*entity.Visit, error) {
	// An open visit for the same pair means a previous exit was missed
	// (crash, dropped stream). Leave it dangling and open a fresh visit.
	if stale, err := srv.visitRepo.FindOpenVisit(ctx, userID, outletID); err == nil {
		srv.log(ctx).Warn("Dangling open visit found on entry",
			slog.Any("user_id", userID),
			slog.Any("outlet_id", outletID),
			slog.Any("stale_visit_id", stale.ID))
	} else if !errors.Is(err, repository.ErrVisitNotFound) {
		srv.log(ctx).Warn("Open visit lookup failed on entry", slog.Any("error", err))
	}

	visit := &entity.Visit{
		ID:           uuid.New(),
		UserID:       userID,
		OutletID:     outletID,
		EntryTime:    at,
		WithinRadius: true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := srv.visitRepo.CreateVisit(ctx, visit); err != nil {
		srv.log(ctx).Error("Visit entry write failed",
			slog.Any("error", err),
			slog.Any("user_id", userID),
			slog.Any("outlet_id", outletID))
		srv.notifyWriteFailure(ctx, userID, outletName, "entry")
		srv.publishEvent(ctx, service.VisitEventEntered, uuid.Nil, userID, outletID, outletName, sample, nil, at)

		return nil, errors.Wrap(domainerrors.ErrVisitWriteFailed, err.Error())
	}

	srv.mu.Lock()
	srv.openVisits[visitKey{userID: userID, outletID: outletID}] = visit
	srv.mu.Unlock()

	srv.publishEvent(ctx, service.VisitEventEntered, visit.ID, userID, outletID, outletName, sample, nil, at)
	srv.log(ctx).Info("Visit opened",
		slog.Any("visit_id", visit.ID),
		slog.Any("user_id", userID),
		slog.Any("outlet_id", outletID))

	return visit, nil
}

// RecordExit closes the open visit for the (user, outlet) pair.
func (srv *visitService) RecordExit(ctx context.Context, userID uuid.UUID, outletID uuid.UUID, outletName string, sample entity.Coordinate, at time.Time) (*entity.Visit, error) {
	visit, err := srv.findOpenVisit(ctx, userID, outletID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			// Exit without a matching entry row: the entry write failed
			// earlier. The transition is still published for downstream
			// consumers.
			srv.log(ctx).Warn("Exit with no open visit",
				slog.Any("user_id", userID),
				slog.Any("outlet_id", outletID))
			srv.publishEvent(ctx, service.VisitEventExited, uuid.Nil, userID, outletID, outletName, sample, nil, at)

			return nil, errors.Wrap(domainerrors.ErrVisitNotFound, "no open visit for outlet")
		}

		return nil, errors.Wrap(err, "failed to find open visit")
	}

	visit.Close(at)

	if err := srv.visitRepo.CloseVisit(ctx, visit.ID, at, *visit.DurationMinutes); err != nil {
		srv.log(ctx).Error("Visit exit write failed",
			slog.Any("error", err),
			slog.Any("visit_id", visit.ID))
		srv.notifyWriteFailure(ctx, userID, outletName, "exit")
		srv.publishEvent(ctx, service.VisitEventExited, visit.ID, userID, outletID, outletName, sample, visit.DurationMinutes, at)

		return nil, errors.Wrap(domainerrors.ErrVisitWriteFailed, err.Error())
	}

	srv.mu.Lock()
	delete(srv.openVisits, visitKey{userID: userID, outletID: outletID})
	srv.mu.Unlock()

	srv.publishEvent(ctx, service.VisitEventExited, visit.ID, userID, outletID, outletName, sample, visit.DurationMinutes, at)
	srv.log(ctx).Info("Visit closed",
		slog.Any("visit_id", visit.ID),
		slog.Int64("duration_minutes", *visit.DurationMinutes))

	return visit, nil
}

// ListVisitsByUser returns a user's visit history, most recent first.
func (srv *visitService) ListVisitsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Visit, error) {
	visits, err := srv.visitRepo.FindVisitsByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find visits by user")
	}

	return visits, nil
}

// ListVisitsByOutlet returns an outlet's visit history, most recent first.
func (srv *visitService) ListVisitsByOutlet(ctx context.Context, outletID uuid.UUID, limit int) ([]*entity.Visit, error) {
	visits, err := srv.visitRepo.FindVisitsByOutlet(ctx, outletID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find visits by outlet")
	}

	return visits, nil
}

// findOpenVisit resolves the open visit through the cache first, falling
// back to the repository on miss.
func (srv *visitService) findOpenVisit(ctx context.Context, userID, outletID uuid.UUID) (*entity.Visit, error) {
	srv.mu.Lock()
	visit, cached := srv.openVisits[visitKey{userID: userID, outletID: outletID}]
	srv.mu.Unlock()

	if cached && visit.IsOpen() {
		return visit, nil
	}

	return srv.visitRepo.FindOpenVisit(ctx, userID, outletID)
}

// publishEvent publishes a visit transition, logging but never propagating
// publisher failures.
func (srv *visitService) publishEvent(ctx context.Context, eventType string, visitID, userID, outletID uuid.UUID, outletName string, sample entity.Coordinate, durationMinutes *int64, at time.Time) {
	event := &service.VisitEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		EventType:       eventType,
		UserID:          userID.String(),
		OutletID:        outletID.String(),
		OutletName:      outletName,
		Latitude:        sample.Latitude,
		Longitude:       sample.Longitude,
		DurationMinutes: durationMinutes,
		OccurredAt:      at,
	}
	if visitID != uuid.Nil {
		event.VisitID = visitID.String()
	}

	if err := srv.publisher.PublishVisitEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish visit event",
			slog.Any("error", err),
			slog.String("event_type", eventType),
			slog.Any("outlet_id", outletID))
	}
}

// notifyWriteFailure pushes a ledger-failure toast to the rep's devices.
// Best effort: notification failures are only logged.
func (srv *visitService) notifyWriteFailure(ctx context.Context, userID uuid.UUID, outletName, transition string) {
	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load devices for write-failure toast", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title := "Visit not recorded"
	body := "Your " + transition + " at " + outletName + " could not be saved."
	data := map[string]string{
		"type":       "visit_write_failed",
		"transition": transition,
	}

	if _, _, _, err := srv.notificationSvc.SendBatchNotification(ctx, tokens, title, body, data); err != nil {
		srv.log(ctx).Warn("Failed to send write-failure toast", slog.Any("error", err))
	}
}
