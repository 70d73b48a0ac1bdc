package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sewakita/sewakita-backend/internal/availability"
	"github.com/sewakita/sewakita-backend/pkg/db/models"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// Repository defines persistence operations for rental orders.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) (*models.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]models.Order, int64, error)
	List(ctx context.Context, params pagination.Params) ([]models.Order, int64, error)
	FindConflicting(ctx context.Context, vehicleID uuid.UUID, window availability.Interval, excludeOrderID *uuid.UUID) ([]models.Order, error)
	BookedVehicleIDs(ctx context.Context, window availability.Interval, excludeOrderID *uuid.UUID) ([]uuid.UUID, error)
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) Update(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Vehicle").
		Preload("Vehicle.Images").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]models.Order, int64, error) {
	return r.list(ctx, params, func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ?", userID)
	})
}

func (r *repository) List(ctx context.Context, params pagination.Params) ([]models.Order, int64, error) {
	return r.list(ctx, params, nil)
}

func (r *repository) list(ctx context.Context, params pagination.Params, scope func(*gorm.DB) *gorm.DB) ([]models.Order, int64, error) {
	params = pagination.Normalize(params)

	base := r.db.WithContext(ctx).Model(&models.Order{})
	if scope != nil {
		base = scope(base)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Order
	err := base.
		Preload("User").
		Preload("Vehicle").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// FindConflicting returns blocking orders for the vehicle whose inclusive
// date range touches the candidate window. A shared boundary day counts as
// a conflict. Orders in a terminal status never block, and excludeOrderID
// keeps an order from conflicting with itself on edit.
func (r *repository) FindConflicting(ctx context.Context, vehicleID uuid.UUID, window availability.Interval, excludeOrderID *uuid.UUID) ([]models.Order, error) {
	query := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Where("start_date <= ? AND end_date >= ?", window.End, window.Start).
		Where("status NOT IN ?", enums.NonBlockingOrderStatuses)
	if excludeOrderID != nil {
		query = query.Where("id <> ?", *excludeOrderID)
	}

	var conflicts []models.Order
	if err := query.Find(&conflicts).Error; err != nil {
		return nil, err
	}
	return conflicts, nil
}

// BookedVehicleIDs returns the distinct vehicles holding a blocking order
// that overlaps the window. Used to suppress them from availability listings.
func (r *repository) BookedVehicleIDs(ctx context.Context, window availability.Interval, excludeOrderID *uuid.UUID) ([]uuid.UUID, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("start_date <= ? AND end_date >= ?", window.End, window.Start).
		Where("status NOT IN ?", enums.NonBlockingOrderStatuses)
	if excludeOrderID != nil {
		query = query.Where("id <> ?", *excludeOrderID)
	}

	var ids []uuid.UUID
	if err := query.Distinct().Pluck("vehicle_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
