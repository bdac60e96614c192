package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fieldforce/config"
	deliverycontext "fieldforce/internal/delivery/context"
	"fieldforce/internal/domain/constants"
	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/domain/service"
	"fieldforce/internal/geofence"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// trackingSession is the per-user state of one running session: the
// geofence monitor, the location subscription, and the latest stream
// condition. lastErr is set while the device reports location-unavailable
// and cleared by the next valid sample; membership is retained throughout.
type trackingSession struct {
	monitor      *geofence.Monitor
	subscription service.Subscription
	cancel       context.CancelFunc
	done         chan struct{}

	mu         sync.Mutex
	lastSample *entity.Coordinate
	lastErr    error
}

// trackingService implements the TrackingUsecase interface. Each session
// consumes its user's location stream on a dedicated goroutine and turns
// membership transitions into visit ledger calls. Ledger or publisher
// failures never feed back into geofence state.
type trackingService struct {
	outletRepo repository.OutletRepository
	source     service.LocationSource
	sink       service.LocationSink
	visits     usecase.VisitUsecase
	config     *config.Config
	logger     *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*trackingSession
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(
	outletRepo repository.OutletRepository,
	source service.LocationSource,
	sink service.LocationSink,
	visits usecase.VisitUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return &trackingService{
		outletRepo: outletRepo,
		source:     source,
		sink:       sink,
		visits:     visits,
		config:     cfg,
		logger:     logger,
		sessions:   make(map[uuid.UUID]*trackingSession),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *trackingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// defaultRadius returns the deployment-wide geofence radius for outlets
// without an explicit one.
func (srv *trackingService) defaultRadius() float64 {
	if srv.config.Geofence != nil && srv.config.Geofence.DefaultRadiusMeters > 0 {
		return srv.config.Geofence.DefaultRadiusMeters
	}

	return constants.DefaultGeofenceRadiusMeters
}

// loadFences builds the fence set from all active outlets.
func (srv *trackingService) loadFences(ctx context.Context) ([]geofence.Fence, error) {
	outlets, err := srv.outletRepo.FindActiveOutlets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active outlets")
	}

	fences := make([]geofence.Fence, 0, len(outlets))
	for _, outlet := range outlets {
		radius := outlet.RadiusMeters
		if radius <= 0 {
			radius = srv.defaultRadius()
		}

		fences = append(fences, geofence.Fence{
			OutletID:     outlet.ID,
			OutletName:   outlet.Name,
			Center:       outlet.Center(),
			RadiusMeters: radius,
		})
	}

	return fences, nil
}

// StartSession opens a tracking session for the user.
func (srv *trackingService) StartSession(ctx context.Context, userID uuid.UUID) error {
	srv.mu.Lock()
	if _, exists := srv.sessions[userID]; exists {
		srv.mu.Unlock()

		return errors.Wrap(domainerrors.ErrSessionAlreadyActive, userID.String())
	}
	srv.mu.Unlock()

	fences, err := srv.loadFences(ctx)
	if err != nil {
		return err
	}

	monitor, err := geofence.NewMonitor(fences)
	if err != nil {
		return errors.Wrap(err, "failed to build geofence monitor")
	}

	// The consume loop outlives the request; it is bound to the session's
	// own context, not the caller's.
	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	subscription, err := srv.source.Subscribe(sessionCtx, userID)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to subscribe to location stream")
	}

	session := &trackingSession{
		monitor:      monitor,
		subscription: subscription,
		cancel:       cancel,
		done:         make(chan struct{}),
	}

	srv.mu.Lock()
	if _, exists := srv.sessions[userID]; exists {
		srv.mu.Unlock()
		cancel()
		subscription.Close()

		return errors.Wrap(domainerrors.ErrSessionAlreadyActive, userID.String())
	}
	srv.sessions[userID] = session
	srv.mu.Unlock()

	go srv.consume(sessionCtx, userID, session)

	srv.log(ctx).Info("Tracking session started",
		slog.Any("user_id", userID),
		slog.Int("fences", len(fences)))

	return nil
}

// StopSession tears down the user's session. Open visits are left open;
// only a reported exit closes a visit.
func (srv *trackingService) StopSession(ctx context.Context, userID uuid.UUID) error {
	srv.mu.Lock()
	session, exists := srv.sessions[userID]
	if exists {
		delete(srv.sessions, userID)
	}
	srv.mu.Unlock()

	if !exists {
		return errors.Wrap(domainerrors.ErrSessionNotFound, userID.String())
	}

	session.cancel()
	session.subscription.Close()
	<-session.done

	// Open visits stay open: dwell time reflects the device's reported
	// exits, not session teardown. Stranded visits are closed out of band.
	srv.log(ctx).Info("Tracking session stopped",
		slog.Any("user_id", userID),
		slog.Int("open_outlets", len(session.monitor.ActiveOutlets())))

	return nil
}

// IngestLocation feeds one reported GPS sample into the user's stream.
func (srv *trackingService) IngestLocation(ctx context.Context, userID uuid.UUID, sample entity.Coordinate) error {
	if _, err := srv.session(userID); err != nil {
		return err
	}

	srv.sink.Publish(userID, sample)

	return nil
}

// ReportLocationUnavailable feeds a location-unavailable condition into the
// user's stream.
func (srv *trackingService) ReportLocationUnavailable(ctx context.Context, userID uuid.UUID, reason string) error {
	if _, err := srv.session(userID); err != nil {
		return err
	}

	srv.sink.ReportError(userID, errors.Wrap(domainerrors.ErrLocationUnavailable, reason))

	return nil
}

// ActiveOutlets returns the outlets the user is currently inside.
func (srv *trackingService) ActiveOutlets(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	session, err := srv.session(userID)
	if err != nil {
		return nil, err
	}

	return session.monitor.ActiveOutlets(), nil
}

// Status returns the session snapshot for the user.
func (srv *trackingService) Status(ctx context.Context, userID uuid.UUID) (*usecase.TrackingStatus, error) {
	srv.mu.Lock()
	session, exists := srv.sessions[userID]
	srv.mu.Unlock()

	if !exists {
		return &usecase.TrackingStatus{Active: false, ActiveOutletIDs: []uuid.UUID{}}, nil
	}

	session.mu.Lock()
	lastSample := session.lastSample
	lastErr := session.lastErr
	session.mu.Unlock()

	return &usecase.TrackingStatus{
		Active:            true,
		LocationAvailable: lastErr == nil && lastSample != nil,
		LastSample:        lastSample,
		ActiveOutletIDs:   session.monitor.ActiveOutlets(),
	}, nil
}

// RefreshGeofences reloads active outlets and swaps the fence set on every
// running session.
func (srv *trackingService) RefreshGeofences(ctx context.Context) error {
	fences, err := srv.loadFences(ctx)
	if err != nil {
		return err
	}

	srv.mu.Lock()
	sessions := make([]*trackingSession, 0, len(srv.sessions))
	for _, session := range srv.sessions {
		sessions = append(sessions, session)
	}
	srv.mu.Unlock()

	for _, session := range sessions {
		if err := session.monitor.SetFences(fences); err != nil {
			return errors.Wrap(err, "failed to refresh fences")
		}
	}

	srv.log(ctx).Debug("Geofences refreshed",
		slog.Int("fences", len(fences)),
		slog.Int("sessions", len(sessions)))

	return nil
}

// session looks up the running session for a user.
func (srv *trackingService) session(userID uuid.UUID) (*trackingSession, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, exists := srv.sessions[userID]
	if !exists {
		return nil, errors.Wrap(domainerrors.ErrSessionNotFound, userID.String())
	}

	return session, nil
}

// consume drains the user's location stream until the subscription closes.
// Error updates mark the stream unavailable without touching membership;
// valid samples clear the condition and drive the geofence monitor.
func (srv *trackingService) consume(ctx context.Context, userID uuid.UUID, session *trackingSession) {
	defer close(session.done)

	for update := range session.subscription.Updates() {
		if update.Err != nil {
			session.mu.Lock()
			session.lastErr = update.Err
			session.mu.Unlock()

			srv.logger.Warn("Location unavailable",
				slog.Any("error", update.Err),
				slog.Any("user_id", userID))

			continue
		}

		sample := *update.Coordinate
		session.mu.Lock()
		session.lastSample = &sample
		session.lastErr = nil
		session.mu.Unlock()

		at := sample.ObservedAt
		if at.IsZero() {
			at = time.Now()
		}

		for _, event := range session.monitor.Observe(sample, at) {
			srv.dispatch(ctx, userID, event)
		}
	}
}

// dispatch routes one membership transition to the visit ledger. Ledger
// failures are already logged and surfaced by the ledger itself; they are
// deliberately not retried here.
func (srv *trackingService) dispatch(ctx context.Context, userID uuid.UUID, event geofence.Event) {
	switch event.Type {
	case geofence.Entered:
		if _, err := srv.visits.RecordEntry(ctx, userID, event.OutletID, event.OutletName, event.Sample, event.At); err != nil {
			srv.logger.Warn("Entry not recorded",
				slog.Any("error", err),
				slog.Any("outlet_id", event.OutletID))
		}
	case geofence.Exited:
		if _, err := srv.visits.RecordExit(ctx, userID, event.OutletID, event.OutletName, event.Sample, event.At); err != nil {
			srv.logger.Warn("Exit not recorded",
				slog.Any("error", err),
				slog.Any("outlet_id", event.OutletID))
		}
	}
}