package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sewakita/sewakita-backend/internal/availability"
	"github.com/sewakita/sewakita-backend/internal/users"
	"github.com/sewakita/sewakita-backend/internal/vehicles"
	"github.com/sewakita/sewakita-backend/pkg/db"
	"github.com/sewakita/sewakita-backend/pkg/db/models"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	apperrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/logger"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes rental order operations.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*OrderDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*OrderDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	ListForUser(ctx context.Context, userID uuid.UUID, params pagination.Params) (*OrderListResult, pagination.Page, error)
	List(ctx context.Context, params pagination.Params) (*OrderListResult, pagination.Page, error)
}

type service struct {
	repo         Repository
	usersRepo    users.Repository
	vehiclesRepo vehicles.Repository
	tx           txRunner
	logg         *logger.Logger
}

// NewService constructs an orders service instance.
func NewService(repo Repository, usersRepo users.Repository, vehiclesRepo vehicles.Repository, tx txRunner, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if usersRepo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if vehiclesRepo == nil {
		return nil, fmt.Errorf("vehicles repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:         repo,
		usersRepo:    usersRepo,
		vehiclesRepo: vehiclesRepo,
		tx:           tx,
		logg:         logg,
	}, nil
}

// Create books a vehicle for the requested window. The conflict check and the
// insert run inside one transaction holding the vehicle row lock, so two
// concurrent requests for the same vehicle serialize and the loser gets a
// conflict error. The Postgres exclusion constraint backstops the same
// invariant at the storage layer.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*OrderDTO, error) {
	interval, err := availability.NewInterval(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if err := validateOrderEnums(input.PaymentMethod, input.Status); err != nil {
		return nil, err
	}

	var created *models.Order
	txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		usersRepo := s.usersRepo.WithTx(tx)
		vehiclesRepo := s.vehiclesRepo.WithTx(tx)

		if _, err := usersRepo.FindByID(ctx, input.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.CodeNotFound, "user not found")
			}
			return apperrors.Wrap(apperrors.CodeInternal, err, "loading user")
		}

		vehicle, err := vehiclesRepo.FindByIDForUpdate(ctx, input.VehicleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.CodeNotFound, "vehicle not found")
			}
			return apperrors.Wrap(apperrors.CodeInternal, err, "loading vehicle")
		}

		quote, err := availability.ComputeQuote(vehicle.DailyRate, interval.Start, interval.End, input.DepositAmount)
		if err != nil {
			return err
		}

		conflicts, err := repo.FindConflicting(ctx, vehicle.ID, interval, nil)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeInternal, err, "checking booking conflicts")
		}
		if len(conflicts) > 0 {
			return apperrors.New(apperrors.CodeConflict, "vehicle is already booked for the selected dates")
		}

		order := &models.Order{
			ID:              uuid.New(),
			UserID:          input.UserID,
			VehicleID:       vehicle.ID,
			StartDate:       interval.Start,
			EndDate:         interval.End,
			RentalDays:      quote.RentalDays,
			TotalPrice:      quote.TotalPrice,
			DepositAmount:   quote.DepositAmount,
			RemainingAmount: quote.RemainingAmount,
			PaymentMethod:   input.PaymentMethod,
			Status:          resolveStatus(input.Status, quote, nil),
			AdminNotes:      input.AdminNotes,
			PickupLocation:  input.PickupLocation,
			ReturnLocation:  input.ReturnLocation,
		}

		created, err = repo.Create(ctx, order)
		if err != nil {
			if db.IsExclusionViolation(err) {
				return apperrors.New(apperrors.CodeConflict, "vehicle is already booked for the selected dates")
			}
			return apperrors.Wrap(apperrors.CodeInternal, err, "creating order")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	ctx = s.logg.WithField(ctx, "order_id", created.ID.String())
	ctx = s.logg.WithVehicleID(ctx, created.VehicleID.String())
	s.logg.Info(ctx, "order created")

	return s.GetByID(ctx, created.ID)
}

// Update edits an order. The conflict check excludes the order itself so a
// no-op edit against its own dates never reports a conflict.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*OrderDTO, error) {
	if err := validateOrderEnumPtrs(input.PaymentMethod, input.Status); err != nil {
		return nil, err
	}

	txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		usersRepo := s.usersRepo.WithTx(tx)
		vehiclesRepo := s.vehiclesRepo.WithTx(tx)

		order, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.CodeNotFound, "order not found")
			}
			return apperrors.Wrap(apperrors.CodeInternal, err, "loading order")
		}

		if input.UserID != nil {
			if _, err := usersRepo.FindByID(ctx, *input.UserID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.New(apperrors.CodeNotFound, "user not found")
				}
				return apperrors.Wrap(apperrors.CodeInternal, err, "loading user")
			}
			order.UserID = *input.UserID
		}

		vehicleID := order.VehicleID
		if input.VehicleID != nil {
			vehicleID = *input.VehicleID
		}
		vehicle, err := vehiclesRepo.FindByIDForUpdate(ctx, vehicleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.CodeNotFound, "vehicle not found")
			}
			return apperrors.Wrap(apperrors.CodeInternal, err, "loading vehicle")
		}

		start := order.StartDate
		end := order.EndDate
		if input.StartDate != nil {
			start = *input.StartDate
		}
		if input.EndDate != nil {
			end = *input.EndDate
		}
		interval, err := availability.NewInterval(start, end)
		if err != nil {
			return err
		}

		deposit := order.DepositAmount
		if input.DepositAmount != nil {
			deposit = *input.DepositAmount
		}

		quote, err := availability.ComputeQuote(vehicle.DailyRate, interval.Start, interval.End, deposit)
		if err != nil {
			return err
		}

		conflicts, err := repo.FindConflicting(ctx, vehicle.ID, interval, &id)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeInternal, err, "checking booking conflicts")
		}
		if len(conflicts) > 0 {
			return apperrors.New(apperrors.CodeConflict, "vehicle is already booked for the selected dates")
		}

		currentStatus := order.Status
		order.VehicleID = vehicle.ID
		order.StartDate = interval.Start
		order.EndDate = interval.End
		order.RentalDays = quote.RentalDays
		order.TotalPrice = quote.TotalPrice
		order.DepositAmount = quote.DepositAmount
		order.RemainingAmount = quote.RemainingAmount
		order.Status = resolveStatus(input.Status, quote, &currentStatus)
		if input.PaymentMethod != nil {
			order.PaymentMethod = *input.PaymentMethod
		}
		if input.PickupLocation != nil {
			order.PickupLocation = *input.PickupLocation
		}
		if input.ReturnLocation != nil {
			order.ReturnLocation = *input.ReturnLocation
		}
		if input.AdminNotes != nil {
			order.AdminNotes = input.AdminNotes
		}
		order.User = nil
		order.Vehicle = nil

		if _, err := repo.Update(ctx, order); err != nil {
			if db.IsExclusionViolation(err) {
				return apperrors.New(apperrors.CodeConflict, "vehicle is already booked for the selected dates")
			}
			return apperrors.Wrap(apperrors.CodeInternal, err, "updating order")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "order not found")
		}
		return apperrors.Wrap(apperrors.CodeInternal, err, "deleting order")
	}
	return nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "order not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading order")
	}
	return FromModel(order), nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID, params pagination.Params) (*OrderListResult, pagination.Page, error) {
	rows, total, err := s.repo.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.CodeInternal, err, "listing orders")
	}
	return &OrderListResult{Orders: FromModels(rows), Total: total}, pagination.NewPage(params, total), nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*OrderListResult, pagination.Page, error) {
	rows, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.CodeInternal, err, "listing orders")
	}
	return &OrderListResult{Orders: FromModels(rows), Total: total}, pagination.NewPage(params, total), nil
}

// resolveStatus picks the order status: an explicit status always wins, a
// full deposit upgrades to PAID, and an order already PAID is never
// downgraded by a later deposit change.
func resolveStatus(explicit *enums.OrderStatus, quote availability.Quote, current *enums.OrderStatus) enums.OrderStatus {
	if explicit != nil {
		return *explicit
	}
	if current != nil && *current == enums.OrderStatusPaid {
		return enums.OrderStatusPaid
	}
	if quote.StatusHint == enums.OrderStatusPaid {
		return enums.OrderStatusPaid
	}
	if current != nil {
		return *current
	}
	return enums.OrderStatusPendingReview
}

func validateOrderEnums(method enums.PaymentMethod, status *enums.OrderStatus) error {
	if !method.IsValid() {
		return apperrors.New(apperrors.CodeValidation, fmt.Sprintf("invalid payment method %q", method))
	}
	if status != nil && !status.IsValid() {
		return apperrors.New(apperrors.CodeValidation, fmt.Sprintf("invalid order status %q", *status))
	}
	return nil
}

func validateOrderEnumPtrs(method *enums.PaymentMethod, status *enums.OrderStatus) error {
	if method != nil && !method.IsValid() {
		return apperrors.New(apperrors.CodeValidation, fmt.Sprintf("invalid payment method %q", *method))
	}
	if status != nil && !status.IsValid() {
		return apperrors.New(apperrors.CodeValidation, fmt.Sprintf("invalid order status %q", *status))
	}
	return nil
}
