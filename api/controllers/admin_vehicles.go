package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/sewakita/sewakita-backend/api/responses"
	"github.com/sewakita/sewakita-backend/api/validators"
	"github.com/sewakita/sewakita-backend/internal/users"
	"github.com/sewakita/sewakita-backend/internal/vehicles"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	pkgerrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/logger"
)

type createVehicleRequest struct {
	OwnerID       string   `json:"ownerId" validate:"required,uuid"`
	Name          string   `json:"name" validate:"required,min=2,max=150"`
	Slug          string   `json:"slug" validate:"required,min=2,max=150"`
	Description   *string  `json:"description,omitempty"`
	Type          string   `json:"type" validate:"required"`
	Capacity      int      `json:"capacity" validate:"required,gt=0"`
	Transmission  string   `json:"transmissionType" validate:"required"`
	FuelType      string   `json:"fuelType" validate:"required"`
	DailyRate     int64    `json:"dailyRate" validate:"required,gt=0"`
	LateFeePerDay int64    `json:"lateFeePerDay" validate:"omitempty,gte=0"`
	MainImageURL  string   `json:"mainImageUrl" validate:"required,url"`
	IsAvailable   *bool    `json:"isAvailable,omitempty"`
	LicensePlate  string   `json:"licensePlate" validate:"required"`
	City          string   `json:"city" validate:"required"`
	Address       *string  `json:"address,omitempty"`
	ImageURLs     []string `json:"imageUrls,omitempty" validate:"omitempty,dive,url"`
}

type updateVehicleRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Slug          *string  `json:"slug,omitempty" validate:"omitempty,min=2,max=150"`
	Description   *string  `json:"description,omitempty"`
	Type          *string  `json:"type,omitempty"`
	Capacity      *int     `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Transmission  *string  `json:"transmissionType,omitempty"`
	FuelType      *string  `json:"fuelType,omitempty"`
	DailyRate     *int64   `json:"dailyRate,omitempty" validate:"omitempty,gt=0"`
	LateFeePerDay *int64   `json:"lateFeePerDay,omitempty" validate:"omitempty,gte=0"`
	MainImageURL  *string  `json:"mainImageUrl,omitempty" validate:"omitempty,url"`
	IsAvailable   *bool    `json:"isAvailable,omitempty"`
	LicensePlate  *string  `json:"licensePlate,omitempty"`
	City          *string  `json:"city,omitempty"`
	Address       *string  `json:"address,omitempty"`
}

// AdminVehiclesList lists generally-available vehicles, minus window
// conflicts when dates are supplied. excludeOrderId keeps the booking
// under edit from blocking its own vehicle.
func AdminVehiclesList(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vehicles service unavailable"))
			return
		}

		query, err := buildVehicleListQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, page, err := svc.ListAvailable(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, vehicleListResponse{Vehicles: result.Vehicles, Pagination: page})
	}
}

// AdminVehicleCreate registers a catalog entry under an existing owner.
func AdminVehicleCreate(svc vehicles.Service, usersSvc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || usersSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vehicles service unavailable"))
			return
		}

		var body createVehicleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := body.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := usersSvc.GetByID(r.Context(), input.OwnerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vehicle, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, vehicle)
	}
}

func AdminVehicleGet(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vehicles service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vehicle, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, vehicle)
	}
}

func AdminVehicleUpdate(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vehicles service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateVehicleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := body.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vehicle, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, vehicle)
	}
}

func AdminVehicleDelete(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vehicles service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "vehicle deleted"})
	}
}

func (req createVehicleRequest) toInput() (vehicles.CreateVehicleInput, error) {
	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return vehicles.CreateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid owner id")
	}

	vehicleType, err := enums.ParseVehicleType(strings.TrimSpace(req.Type))
	if err != nil {
		return vehicles.CreateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vehicle type")
	}
	transmission, err := enums.ParseTransmissionType(strings.TrimSpace(req.Transmission))
	if err != nil {
		return vehicles.CreateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transmission type")
	}
	fuel, err := enums.ParseFuelType(strings.TrimSpace(req.FuelType))
	if err != nil {
		return vehicles.CreateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid fuel type")
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	return vehicles.CreateVehicleInput{
		OwnerID:          ownerID,
		Name:             strings.TrimSpace(req.Name),
		Slug:             strings.TrimSpace(req.Slug),
		Description:      req.Description,
		Type:             vehicleType,
		Capacity:         req.Capacity,
		TransmissionType: transmission,
		FuelType:         fuel,
		DailyRate:        req.DailyRate,
		LateFeePerDay:    req.LateFeePerDay,
		MainImageURL:     strings.TrimSpace(req.MainImageURL),
		IsAvailable:      available,
		LicensePlate:     strings.TrimSpace(req.LicensePlate),
		City:             strings.TrimSpace(req.City),
		Address:          req.Address,
		ImageURLs:        req.ImageURLs,
	}, nil
}

func (req updateVehicleRequest) toInput() (vehicles.UpdateVehicleInput, error) {
	input := vehicles.UpdateVehicleInput{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Capacity:      req.Capacity,
		DailyRate:     req.DailyRate,
		LateFeePerDay: req.LateFeePerDay,
		MainImageURL:  req.MainImageURL,
		IsAvailable:   req.IsAvailable,
		LicensePlate:  req.LicensePlate,
		City:          req.City,
		Address:       req.Address,
	}

	if req.Type != nil {
		vehicleType, err := enums.ParseVehicleType(strings.TrimSpace(*req.Type))
		if err != nil {
			return vehicles.UpdateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vehicle type")
		}
		input.Type = &vehicleType
	}
	if req.Transmission != nil {
		transmission, err := enums.ParseTransmissionType(strings.TrimSpace(*req.Transmission))
		if err != nil {
			return vehicles.UpdateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transmission type")
		}
		input.TransmissionType = &transmission
	}
	if req.FuelType != nil {
		fuel, err := enums.ParseFuelType(strings.TrimSpace(*req.FuelType))
		if err != nil {
			return vehicles.UpdateVehicleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid fuel type")
		}
		input.FuelType = &fuel
	}

	return input, nil
}
