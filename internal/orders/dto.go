package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/sewakita/sewakita-backend/internal/users"
	"github.com/sewakita/sewakita-backend/internal/vehicles"
	"github.com/sewakita/sewakita-backend/pkg/db/models"
	"github.com/sewakita/sewakita-backend/pkg/enums"
)

// OrderDTO is the transport shape for a rental order with its relations.
type OrderDTO struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"userId"`
	VehicleID       uuid.UUID            `json:"vehicleId"`
	StartDate       time.Time            `json:"startDate"`
	EndDate         time.Time            `json:"endDate"`
	RentalDays      int                  `json:"rentalDays"`
	TotalPrice      int64                `json:"totalPrice"`
	DepositAmount   int64                `json:"depositAmount"`
	RemainingAmount int64                `json:"remainingAmount"`
	PaymentMethod   enums.PaymentMethod  `json:"paymentMethod"`
	Status          enums.OrderStatus    `json:"status"`
	AdminNotes      *string              `json:"adminNotes,omitempty"`
	PickupLocation  string               `json:"pickupLocation"`
	ReturnLocation  string               `json:"returnLocation"`
	User            *users.UserDTO       `json:"user,omitempty"`
	Vehicle         *vehicles.VehicleDTO `json:"vehicle,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// CreateOrderInput holds the validated payload to create an order.
type CreateOrderInput struct {
	UserID         uuid.UUID
	VehicleID      uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	DepositAmount  int64
	PaymentMethod  enums.PaymentMethod
	PickupLocation string
	ReturnLocation string
	AdminNotes     *string
	// Status, when set, overrides the computed status hint.
	Status *enums.OrderStatus
}

// UpdateOrderInput holds optional mutation values for an order.
type UpdateOrderInput struct {
	UserID         *uuid.UUID
	VehicleID      *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	DepositAmount  *int64
	PaymentMethod  *enums.PaymentMethod
	PickupLocation *string
	ReturnLocation *string
	AdminNotes     *string
	Status         *enums.OrderStatus
}

// OrderListResult pairs a page of orders with the total row count.
type OrderListResult struct {
	Orders []OrderDTO
	Total  int64
}

func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		ID:              o.ID,
		UserID:          o.UserID,
		VehicleID:       o.VehicleID,
		StartDate:       o.StartDate,
		EndDate:         o.EndDate,
		RentalDays:      o.RentalDays,
		TotalPrice:      o.TotalPrice,
		DepositAmount:   o.DepositAmount,
		RemainingAmount: o.RemainingAmount,
		PaymentMethod:   o.PaymentMethod,
		Status:          o.Status,
		AdminNotes:      o.AdminNotes,
		PickupLocation:  o.PickupLocation,
		ReturnLocation:  o.ReturnLocation,
		User:            users.FromModel(o.User),
		Vehicle:         vehicles.FromModel(o.Vehicle),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// FromModels maps a list of order rows into DTOs.
func FromModels(rows []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
