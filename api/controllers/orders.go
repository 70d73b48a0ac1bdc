package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sewakita/sewakita-backend/api/middleware"
	"github.com/sewakita/sewakita-backend/api/responses"
	"github.com/sewakita/sewakita-backend/api/validators"
	"github.com/sewakita/sewakita-backend/internal/availability"
	"github.com/sewakita/sewakita-backend/internal/orders"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	pkgerrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/logger"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
)

type orderListResponse struct {
	Orders     []orders.OrderDTO `json:"orders"`
	Pagination pagination.Page   `json:"pagination"`
}

type createOrderRequest struct {
	VehicleID      string  `json:"vehicleId" validate:"required,uuid"`
	StartDate      string  `json:"startDate" validate:"required"`
	EndDate        string  `json:"endDate" validate:"required"`
	DepositAmount  int64   `json:"depositAmount" validate:"omitempty,gte=0"`
	PaymentMethod  string  `json:"paymentMethod" validate:"required"`
	PickupLocation string  `json:"pickupLocation" validate:"required"`
	ReturnLocation string  `json:"returnLocation" validate:"required"`
	AdminNotes     *string `json:"adminNotes,omitempty"`
}

func (req createOrderRequest) toInput(userID uuid.UUID) (orders.CreateOrderInput, error) {
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return orders.CreateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vehicle id")
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return orders.CreateOrderInput{}, err
	}

	method, err := enums.ParsePaymentMethod(strings.TrimSpace(req.PaymentMethod))
	if err != nil {
		return orders.CreateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method")
	}

	return orders.CreateOrderInput{
		UserID:         userID,
		VehicleID:      vehicleID,
		StartDate:      start,
		EndDate:        end,
		DepositAmount:  req.DepositAmount,
		PaymentMethod:  method,
		PickupLocation: strings.TrimSpace(req.PickupLocation),
		ReturnLocation: strings.TrimSpace(req.ReturnLocation),
		AdminNotes:     req.AdminNotes,
	}, nil
}

// OrdersCreate books a rental for the authenticated customer.
func OrdersCreate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user context"))
			return
		}

		var body createOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := body.toInput(userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		// renters never set their own status or notes
		input.Status = nil
		input.AdminNotes = nil

		order, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// OrdersListMine returns the caller's own orders, newest first.
func OrdersListMine(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user context"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, page, err := svc.ListForUser(r.Context(), userID, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orderListResponse{Orders: result.Orders, Pagination: page})
	}
}

func parseDateRange(rawStart, rawEnd string) (time.Time, time.Time, error) {
	start, err := availability.ParseDate(rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid start date")
	}
	end, err := availability.ParseDate(rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid end date")
	}
	return start, end, nil
}
