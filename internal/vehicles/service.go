package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sewakita/sewakita-backend/internal/availability"
	"github.com/sewakita/sewakita-backend/pkg/db"
	"github.com/sewakita/sewakita-backend/pkg/db/models"
	apperrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
)

// ListQuery captures the public and admin catalog listing parameters.
type ListQuery struct {
	Window         *availability.Interval
	ExcludeOrderID *uuid.UUID
	Filter         ListFilter
}

type bookedVehicleLister interface {
	BookedVehicleIDs(ctx context.Context, window availability.Interval, excludeOrderID *uuid.UUID) ([]uuid.UUID, error)
}

// Service exposes vehicle catalog operations.
type Service interface {
	ListAvailable(ctx context.Context, query ListQuery) (*VehicleListResult, pagination.Page, error)
	GetBySlug(ctx context.Context, slug string) (*VehicleDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleDTO, error)
	Create(ctx context.Context, input CreateVehicleInput) (*VehicleDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateVehicleInput) (*VehicleDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	orders bookedVehicleLister
}

// NewService constructs a vehicle catalog service.
func NewService(repo Repository, orders bookedVehicleLister) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vehicle repository required")
	}
	if orders == nil {
		return nil, fmt.Errorf("booked vehicle lister required")
	}
	return &service{repo: repo, orders: orders}, nil
}

// ListAvailable returns vehicles matching the filter. When a date window is
// provided, vehicles holding a blocking order that overlaps the window are
// suppressed from the result.
func (s *service) ListAvailable(ctx context.Context, query ListQuery) (*VehicleListResult, pagination.Page, error) {
	filter := query.Filter
	if query.Window != nil {
		bookedIDs, err := s.orders.BookedVehicleIDs(ctx, *query.Window, query.ExcludeOrderID)
		if err != nil {
			return nil, pagination.Page{}, apperrors.Wrap(apperrors.CodeInternal, err, "listing booked vehicles")
		}
		filter.ExcludeIDs = append(filter.ExcludeIDs, bookedIDs...)
	}

	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.CodeInternal, err, "listing vehicles")
	}

	return &VehicleListResult{
		Vehicles: FromModels(rows),
		Total:    total,
	}, pagination.NewPage(filter.Pagination, total), nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*VehicleDTO, error) {
	vehicle, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "vehicle not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading vehicle")
	}
	return FromModel(vehicle), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*VehicleDTO, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "vehicle not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading vehicle")
	}
	return FromModel(vehicle), nil
}

func (s *service) Create(ctx context.Context, input CreateVehicleInput) (*VehicleDTO, error) {
	vehicle := &models.Vehicle{
		ID:               uuid.New(),
		OwnerID:          input.OwnerID,
		Name:             input.Name,
		Slug:             input.Slug,
		Description:      input.Description,
		Type:             input.Type,
		Capacity:         input.Capacity,
		TransmissionType: input.TransmissionType,
		FuelType:         input.FuelType,
		DailyRate:        input.DailyRate,
		LateFeePerDay:    input.LateFeePerDay,
		MainImageURL:     input.MainImageURL,
		IsAvailable:      input.IsAvailable,
		LicensePlate:     input.LicensePlate,
		City:             input.City,
		Address:          input.Address,
	}
	for _, url := range input.ImageURLs {
		vehicle.Images = append(vehicle.Images, models.VehicleImage{ID: uuid.New(), ImageURL: url})
	}

	created, err := s.repo.Create(ctx, vehicle)
	if err != nil {
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			return nil, conflictErr
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "creating vehicle")
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateVehicleInput) (*VehicleDTO, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "vehicle not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading vehicle")
	}

	applyVehicleUpdate(vehicle, input)

	updated, err := s.repo.Update(ctx, vehicle)
	if err != nil {
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			return nil, conflictErr
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "updating vehicle")
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "vehicle not found")
		}
		return apperrors.Wrap(apperrors.CodeInternal, err, "deleting vehicle")
	}
	return nil
}

func applyVehicleUpdate(vehicle *models.Vehicle, input UpdateVehicleInput) {
	if input.Name != nil {
		vehicle.Name = *input.Name
	}
	if input.Slug != nil {
		vehicle.Slug = *input.Slug
	}
	if input.Description != nil {
		vehicle.Description = input.Description
	}
	if input.Type != nil {
		vehicle.Type = *input.Type
	}
	if input.Capacity != nil {
		vehicle.Capacity = *input.Capacity
	}
	if input.TransmissionType != nil {
		vehicle.TransmissionType = *input.TransmissionType
	}
	if input.FuelType != nil {
		vehicle.FuelType = *input.FuelType
	}
	if input.DailyRate != nil {
		vehicle.DailyRate = *input.DailyRate
	}
	if input.LateFeePerDay != nil {
		vehicle.LateFeePerDay = *input.LateFeePerDay
	}
	if input.MainImageURL != nil {
		vehicle.MainImageURL = *input.MainImageURL
	}
	if input.IsAvailable != nil {
		vehicle.IsAvailable = *input.IsAvailable
	}
	if input.LicensePlate != nil {
		vehicle.LicensePlate = *input.LicensePlate
	}
	if input.City != nil {
		vehicle.City = *input.City
	}
	if input.Address != nil {
		vehicle.Address = input.Address
	}
}

func mapUniqueViolation(err error) error {
	if !db.IsUniqueViolation(err, "") {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "slug"):
		return apperrors.New(apperrors.CodeConflict, "vehicle slug already exists")
	case strings.Contains(msg, "license_plate"):
		return apperrors.New(apperrors.CodeConflict, "license plate already registered")
	default:
		return apperrors.New(apperrors.CodeConflict, "vehicle already exists")
	}
}
