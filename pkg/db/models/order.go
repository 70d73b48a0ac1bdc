package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/sewakita/sewakita-backend/pkg/enums"
)

// Order is the booking fact row joining a renter to a vehicle for an
// inclusive [start_date, end_date] window. Dates are stored at midnight UTC.
//
// Invariant: per vehicle, no two orders whose status blocks availability may
// hold overlapping windows. Enforced at write time inside a transaction that
// locks the vehicle row, with a filtered exclusion constraint as the Postgres
// backstop (see pkg/migrate/migrations).
type Order struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	VehicleID       uuid.UUID           `gorm:"column:vehicle_id;type:uuid;not null;index"`
	StartDate       time.Time           `gorm:"column:start_date;not null"`
	EndDate         time.Time           `gorm:"column:end_date;not null"`
	RentalDays      int                 `gorm:"column:rental_days;not null"`
	TotalPrice      int64               `gorm:"column:total_price;not null"`
	DepositAmount   int64               `gorm:"column:deposit_amount;not null;default:0"`
	RemainingAmount int64               `gorm:"column:remaining_amount;not null;default:0"`
	PaymentMethod   enums.PaymentMethod `gorm:"column:payment_method;type:text;not null"`
	Status          enums.OrderStatus   `gorm:"column:status;type:text;not null;default:'PENDING_REVIEW'"`
	AdminNotes      *string             `gorm:"column:admin_notes"`
	PickupLocation  string              `gorm:"column:pickup_location;not null;default:''"`
	ReturnLocation  string              `gorm:"column:return_location;not null;default:''"`
	User            *User               `gorm:"foreignKey:UserID"`
	Vehicle         *Vehicle            `gorm:"foreignKey:VehicleID"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
