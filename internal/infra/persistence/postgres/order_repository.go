package postgres

import (
	"context"

	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists an order together with all of its lines. GORM
// inserts the associated line models in the same statement batch.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid outlet or SKU reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order with its lines.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByUser retrieves a user's orders, most recent first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]entity.OrderLine, 0, len(data.Lines))
	for _, lineM := range data.Lines {
		lines = append(lines, entity.OrderLine{
			ID:                lineM.ID,
			OrderID:           lineM.OrderID,
			SKUID:             lineM.SKUID,
			UnitType:          entity.OrderUnitType(lineM.UnitType),
			Quantity:          lineM.Quantity,
			ApplyScheme:       lineM.ApplyScheme,
			UnitPrice:         lineM.UnitPrice,
			TotalUnits:        lineM.TotalUnits,
			ExtendedPrice:     lineM.ExtendedPrice,
			SchemeDiscountPct: lineM.SchemeDiscountPct,
			FinalPrice:        lineM.FinalPrice,
		})
	}

	return &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		OutletID:      data.OutletID,
		DistributorID: data.DistributorID,
		Lines:         lines,
		Subtotal:      data.Subtotal,
		TotalDiscount: data.TotalDiscount,
		FinalTotal:    data.FinalTotal,
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		AmountPaid:    data.AmountPaid,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make([]model.OrderLineModel, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, model.OrderLineModel{
			ID:                line.ID,
			OrderID:           line.OrderID,
			SKUID:             line.SKUID,
			UnitType:          line.UnitType.String(),
			Quantity:          line.Quantity,
			ApplyScheme:       line.ApplyScheme,
			UnitPrice:         line.UnitPrice,
			TotalUnits:        line.TotalUnits,
			ExtendedPrice:     line.ExtendedPrice,
			SchemeDiscountPct: line.SchemeDiscountPct,
			FinalPrice:        line.FinalPrice,
		})
	}

	return &model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		OutletID:      data.OutletID,
		DistributorID: data.DistributorID,
		Subtotal:      data.Subtotal,
		TotalDiscount: data.TotalDiscount,
		FinalTotal:    data.FinalTotal,
		PaymentStatus: data.PaymentStatus.String(),
		AmountPaid:    data.AmountPaid,
		Lines:         lines,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
