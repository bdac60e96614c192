package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fieldforce/internal/delivery/context"
	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// outletService implements the OutletUsecase interface.
type outletService struct {
	outletRepo repository.OutletRepository
	tracking   usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewOutletService is the constructor for outletService.
func NewOutletService(
	outletRepo repository.OutletRepository,
	tracking usecase.TrackingUsecase,
	logger *slog.Logger,
) usecase.OutletUsecase {
	return &outletService{
		outletRepo: outletRepo,
		tracking:   tracking,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *outletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOutlets returns all active outlets.
func (srv *outletService) ListOutlets(ctx context.Context) ([]*entity.Outlet, error) {
	outlets, err := srv.outletRepo.FindActiveOutlets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list outlets")
	}

	return outlets, nil
}

// GetOutlet retrieves a single outlet.
func (srv *outletService) GetOutlet(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	outlet, err := srv.outletRepo.FindOutletByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOutletNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOutletNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to find outlet")
	}

	return outlet, nil
}

// UpdateOutletAddress changes an outlet's address and geofence center and
// pushes the new fence set to running tracking sessions. The radius is
// deployment-fixed and never changed here.
func (srv *outletService) UpdateOutletAddress(ctx context.Context, id uuid.UUID, input *usecase.UpdateOutletAddressInput) (*entity.Outlet, error) {
	outlet, err := srv.GetOutlet(ctx, id)
	if err != nil {
		return nil, err
	}

	outlet.FullAddress = input.FullAddress
	outlet.Latitude = input.Latitude
	outlet.Longitude = input.Longitude
	outlet.UpdatedAt = time.Now()

	if err := srv.outletRepo.UpdateOutlet(ctx, outlet); err != nil {
		return nil, errors.Wrap(err, "failed to update outlet")
	}

	// Live sessions keep evaluating against the old center until the fence
	// set is swapped.
	if err := srv.tracking.RefreshGeofences(ctx); err != nil {
		srv.log(ctx).Warn("Failed to refresh geofences after address change",
			slog.Any("error", err),
			slog.Any("outlet_id", id))
	}

	srv.log(ctx).Info("Outlet address updated", slog.Any("outlet_id", id))

	return outlet, nil
}
