package postgres

import (
	"context"
	"time"

	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// CreateVisit persists a new open visit.
func (repo *visitRepository) CreateVisit(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	visit.ID = visitM.ID
	visit.CreatedAt = visitM.CreatedAt
	visit.UpdatedAt = visitM.UpdatedAt

	return nil
}

// CloseVisit sets the exit time and duration on an open visit. The
// exit_time IS NULL guard makes closing idempotent at the row level: a
// second close finds no open row and reports the state instead of
// overwriting it.
func (repo *visitRepository) CloseVisit(ctx context.Context, visitID uuid.UUID, exitTime time.Time, durationMinutes int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("id = ? AND exit_time IS NULL", visitID).
		Updates(map[string]any{
			"exit_time":        exitTime,
			"duration_minutes": durationMinutes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to close visit")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.VisitModel{}).
			Where("id = ?", visitID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check visit existence")
		}
		if count == 0 {
			return repository.ErrVisitNotFound
		}

		return repository.ErrVisitAlreadyClosed
	}

	return nil
}

// FindOpenVisit retrieves the single open visit for a (user, outlet) pair.
func (repo *visitRepository) FindOpenVisit(ctx context.Context, userID, outletID uuid.UUID) (*entity.Visit, error) {
	var visitM model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND outlet_id = ? AND exit_time IS NULL", userID, outletID).
		Order("entry_time DESC").
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find open visit")
	}

	return toVisitDomain(&visitM), nil
}

// FindVisitsByUser retrieves a user's visits, most recent first.
func (repo *visitRepository) FindVisitsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visits by user")
	}

	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits, nil
}

// FindVisitsByOutlet retrieves an outlet's visits, most recent first.
func (repo *visitRepository) FindVisitsByOutlet(ctx context.Context, outletID uuid.UUID, limit int) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	query := repo.db.WithContext(ctx).
		Where("outlet_id = ?", outletID).
		Order("entry_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visits by outlet")
	}

	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits, nil
}

// toVisitDomain converts a GORM VisitModel to a domain Visit entity.
func toVisitDomain(data *model.VisitModel) *entity.Visit {
	if data == nil {
		return nil
	}

	return &entity.Visit{
		ID:              data.ID,
		UserID:          data.UserID,
		OutletID:        data.OutletID,
		EntryTime:       data.EntryTime,
		ExitTime:        data.ExitTime,
		DurationMinutes: data.DurationMinutes,
		WithinRadius:    data.WithinRadius,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromVisitDomain converts a domain Visit entity to a GORM VisitModel.
func fromVisitDomain(data *entity.Visit) *model.VisitModel {
	if data == nil {
		return nil
	}

	return &model.VisitModel{
		ID:              data.ID,
		UserID:          data.UserID,
		OutletID:        data.OutletID,
		EntryTime:       data.EntryTime,
		ExitTime:        data.ExitTime,
		DurationMinutes: data.DurationMinutes,
		WithinRadius:    data.WithinRadius,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
