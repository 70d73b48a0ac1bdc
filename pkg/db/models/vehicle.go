package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/sewakita/sewakita-backend/pkg/enums"
)

// Vehicle is a rentable listing owned by an OWNER (or ADMIN) account.
// IsAvailable is the general on/off switch; date availability is derived
// from blocking orders, never stored here.
type Vehicle struct {
	ID               uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID          uuid.UUID              `gorm:"column:owner_id;type:uuid;not null;index"`
	Name             string                 `gorm:"column:name;not null"`
	Slug             string                 `gorm:"column:slug;type:text;not null;uniqueIndex"`
	Description      *string                `gorm:"column:description"`
	Type             enums.VehicleType      `gorm:"column:type;type:text;not null"`
	Capacity         int                    `gorm:"column:capacity;not null"`
	TransmissionType enums.TransmissionType `gorm:"column:transmission_type;type:text;not null"`
	FuelType         enums.FuelType         `gorm:"column:fuel_type;type:text;not null"`
	DailyRate        int64                  `gorm:"column:daily_rate;not null"`
	LateFeePerDay    int64                  `gorm:"column:late_fee_per_day;not null;default:0"`
	MainImageURL     string                 `gorm:"column:main_image_url;not null;default:''"`
	// No default tag: gorm omits zero-value fields that carry one from the
	// INSERT, turning false into the column default. Always set in code.
	IsAvailable      bool                   `gorm:"column:is_available;not null"`
	LicensePlate     string                 `gorm:"column:license_plate;type:text;not null;uniqueIndex"`
	City             string                 `gorm:"column:city;not null"`
	Address          *string                `gorm:"column:address"`
	Owner            *User                  `gorm:"foreignKey:OwnerID"`
	Images           []VehicleImage         `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// VehicleImage is a gallery entry attached to a vehicle.
type VehicleImage struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VehicleID uuid.UUID `gorm:"column:vehicle_id;type:uuid;not null;index"`
	ImageURL  string    `gorm:"column:image_url;not null"`
	AltText   *string   `gorm:"column:alt_text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
