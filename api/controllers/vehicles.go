package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sewakita/sewakita-backend/api/responses"
	"github.com/sewakita/sewakita-backend/api/validators"
	"github.com/sewakita/sewakita-backend/internal/vehicles"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	pkgerrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/logger"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
)

type vehicleListResponse struct {
	Vehicles   []vehicles.VehicleDTO `json:"vehicles"`
	Pagination pagination.Page       `json:"pagination"`
}

// VehiclesList serves the public catalog, window-filtered when dates are given.
func VehiclesList(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
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

// VehicleBySlug serves the public vehicle detail page.
func VehicleBySlug(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vehicles service unavailable"))
			return
		}

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "slug is required"))
			return
		}

		vehicle, err := svc.GetBySlug(r.Context(), slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, vehicle)
	}
}

// buildVehicleListQuery parses the shared listing query string. Listings
// only ever offer generally-available vehicles.
func buildVehicleListQuery(r *http.Request) (vehicles.ListQuery, error) {
	window, err := validators.ParseQueryWindow(r)
	if err != nil {
		return vehicles.ListQuery{}, err
	}

	excludeOrderID, err := validators.ParseQueryUUID(r, "excludeOrderId")
	if err != nil {
		return vehicles.ListQuery{}, err
	}

	params, err := validators.ParsePagination(r)
	if err != nil {
		return vehicles.ListQuery{}, err
	}

	filter := vehicles.ListFilter{
		Search:        strings.TrimSpace(r.URL.Query().Get("search")),
		OnlyAvailable: true,
		Pagination:    params,
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("type")); raw != "" {
		parsed, err := enums.ParseVehicleType(raw)
		if err != nil {
			return vehicles.ListQuery{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vehicle type")
		}
		filter.Type = &parsed
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("transmission")); raw != "" {
		parsed, err := enums.ParseTransmissionType(raw)
		if err != nil {
			return vehicles.ListQuery{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transmission type")
		}
		filter.Transmission = &parsed
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("fuel")); raw != "" {
		parsed, err := enums.ParseFuelType(raw)
		if err != nil {
			return vehicles.ListQuery{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid fuel type")
		}
		filter.Fuel = &parsed
	}

	return vehicles.ListQuery{
		Window:         window,
		ExcludeOrderID: excludeOrderID,
		Filter:         filter,
	}, nil
}
