package vehicles

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sewakita/sewakita-backend/pkg/db/models"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
)

// ListFilter narrows the vehicle catalog queries.
type ListFilter struct {
	Type          *enums.VehicleType
	Transmission  *enums.TransmissionType
	Fuel          *enums.FuelType
	Search        string
	OnlyAvailable bool
	ExcludeIDs    []uuid.UUID
	Pagination    pagination.Params
}

type repository struct {
	db *gorm.DB
}

// Repository defines persistence operations for the vehicle catalog.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	FindBySlug(ctx context.Context, slug string) (*models.Vehicle, error)
	List(ctx context.Context, filter ListFilter) ([]models.Vehicle, int64, error)
}

// NewRepository builds a vehicles repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (r *repository) Update(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: false}).Save(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Images").
		First(&vehicle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// FindByIDForUpdate locks the vehicle row for the duration of the enclosing
// transaction so overlapping booking attempts serialize on it. SQLite has no
// row locks; its single-writer model covers the same case in tests.
func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var vehicle models.Vehicle
	if err := query.First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Images").
		First(&vehicle, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]models.Vehicle, int64, error) {
	params := pagination.Normalize(filter.Pagination)

	base := r.db.WithContext(ctx).Model(&models.Vehicle{})
	base = applyFilter(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Vehicle
	err := base.
		Preload("Images").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func applyFilter(query *gorm.DB, filter ListFilter) *gorm.DB {
	if filter.OnlyAvailable {
		query = query.Where("is_available = ?", true)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Transmission != nil {
		query = query.Where("transmission_type = ?", *filter.Transmission)
	}
	if filter.Fuel != nil {
		query = query.Where("fuel_type = ?", *filter.Fuel)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(license_plate) LIKE ?", needle, needle)
	}
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}
	return query
}
