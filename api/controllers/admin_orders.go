package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sewakita/sewakita-backend/api/responses"
	"github.com/sewakita/sewakita-backend/api/validators"
	"github.com/sewakita/sewakita-backend/internal/availability"
	"github.com/sewakita/sewakita-backend/internal/orders"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	pkgerrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/logger"
)

type adminCreateOrderRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	createOrderRequest
	Status *string `json:"status,omitempty"`
}

type adminUpdateOrderRequest struct {
	UserID         *string `json:"userId,omitempty" validate:"omitempty,uuid"`
	VehicleID      *string `json:"vehicleId,omitempty" validate:"omitempty,uuid"`
	StartDate      *string `json:"startDate,omitempty"`
	EndDate        *string `json:"endDate,omitempty"`
	DepositAmount  *int64  `json:"depositAmount,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod  *string `json:"paymentMethod,omitempty"`
	PickupLocation *string `json:"pickupLocation,omitempty"`
	ReturnLocation *string `json:"returnLocation,omitempty"`
	AdminNotes     *string `json:"adminNotes,omitempty"`
	Status         *string `json:"status,omitempty"`
}

// AdminOrdersList returns every order, newest first.
func AdminOrdersList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, page, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orderListResponse{Orders: result.Orders, Pagination: page})
	}
}

// AdminOrderCreate books a rental on behalf of any user.
func AdminOrderCreate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		var body adminCreateOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := uuid.Parse(body.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		input, err := body.toInput(userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if body.Status != nil {
			status, err := enums.ParseOrderStatus(strings.TrimSpace(*body.Status))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status"))
				return
			}
			input.Status = &status
		}

		order, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// AdminOrderGet returns a single order with its relations.
func AdminOrderGet(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

// AdminOrderUpdate applies a full or partial order update. The conflict
// query excludes the order being edited.
func AdminOrderUpdate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body adminUpdateOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := body.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

// AdminOrderDelete removes an order outright.
func AdminOrderDelete(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
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

		responses.WriteSuccess(w, map[string]string{"message": "order deleted"})
	}
}

func (req adminUpdateOrderRequest) toInput() (orders.UpdateOrderInput, error) {
	var input orders.UpdateOrderInput

	if req.UserID != nil {
		id, err := uuid.Parse(*req.UserID)
		if err != nil {
			return orders.UpdateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id")
		}
		input.UserID = &id
	}
	if req.VehicleID != nil {
		id, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			return orders.UpdateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vehicle id")
		}
		input.VehicleID = &id
	}
	if req.StartDate != nil {
		start, err := availability.ParseDate(*req.StartDate)
		if err != nil {
			return orders.UpdateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid start date")
		}
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := availability.ParseDate(*req.EndDate)
		if err != nil {
			return orders.UpdateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid end date")
		}
		input.EndDate = &end
	}
	if req.PaymentMethod != nil {
		method, err := enums.ParsePaymentMethod(strings.TrimSpace(*req.PaymentMethod))
		if err != nil {
			return orders.UpdateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method")
		}
		input.PaymentMethod = &method
	}
	if req.Status != nil {
		status, err := enums.ParseOrderStatus(strings.TrimSpace(*req.Status))
		if err != nil {
			return orders.UpdateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status")
		}
		input.Status = &status
	}

	input.DepositAmount = req.DepositAmount
	input.PickupLocation = req.PickupLocation
	input.ReturnLocation = req.ReturnLocation
	input.AdminNotes = req.AdminNotes
	return input, nil
}

func pathUUID(r *http.Request, key string) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid "+key)
	}
	return id, nil
}
