package vehicles

import (
	"time"

	"github.com/google/uuid"

	"github.com/sewakita/sewakita-backend/pkg/db/models"
	"github.com/sewakita/sewakita-backend/pkg/enums"
)

// VehicleDTO is the transport shape for a catalog entry.
type VehicleDTO struct {
	ID               uuid.UUID              `json:"id"`
	OwnerID          uuid.UUID              `json:"ownerId"`
	Name             string                 `json:"name"`
	Slug             string                 `json:"slug"`
	Description      *string                `json:"description,omitempty"`
	Type             enums.VehicleType      `json:"type"`
	Capacity         int                    `json:"capacity"`
	TransmissionType enums.TransmissionType `json:"transmissionType"`
	FuelType         enums.FuelType         `json:"fuelType"`
	DailyRate        int64                  `json:"dailyRate"`
	LateFeePerDay    int64                  `json:"lateFeePerDay"`
	MainImageURL     string                 `json:"mainImageUrl"`
	IsAvailable      bool                   `json:"isAvailable"`
	LicensePlate     string                 `json:"licensePlate"`
	City             string                 `json:"city"`
	Address          *string                `json:"address,omitempty"`
	Images           []VehicleImageDTO      `json:"images"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

// VehicleImageDTO is a gallery entry attached to a vehicle.
type VehicleImageDTO struct {
	ID       uuid.UUID `json:"id"`
	ImageURL string    `json:"imageUrl"`
	AltText  *string   `json:"altText,omitempty"`
}

// CreateVehicleInput holds the validated payload to create a catalog entry.
type CreateVehicleInput struct {
	OwnerID          uuid.UUID
	Name             string
	Slug             string
	Description      *string
	Type             enums.VehicleType
	Capacity         int
	TransmissionType enums.TransmissionType
	FuelType         enums.FuelType
	DailyRate        int64
	LateFeePerDay    int64
	MainImageURL     string
	IsAvailable      bool
	LicensePlate     string
	City             string
	Address          *string
	ImageURLs        []string
}

// UpdateVehicleInput holds optional mutation values for a catalog entry.
type UpdateVehicleInput struct {
	Name             *string
	Slug             *string
	Description      *string
	Type             *enums.VehicleType
	Capacity         *int
	TransmissionType *enums.TransmissionType
	FuelType         *enums.FuelType
	DailyRate        *int64
	LateFeePerDay    *int64
	MainImageURL     *string
	IsAvailable      *bool
	LicensePlate     *string
	City             *string
	Address          *string
}

// VehicleListResult pairs a page of vehicles with pagination metadata.
type VehicleListResult struct {
	Vehicles []VehicleDTO
	Total    int64
}

func FromModel(v *models.Vehicle) *VehicleDTO {
	if v == nil {
		return nil
	}
	images := make([]VehicleImageDTO, 0, len(v.Images))
	for _, img := range v.Images {
		images = append(images, VehicleImageDTO{
			ID:       img.ID,
			ImageURL: img.ImageURL,
			AltText:  img.AltText,
		})
	}
	return &VehicleDTO{
		ID:               v.ID,
		OwnerID:          v.OwnerID,
		Name:             v.Name,
		Slug:             v.Slug,
		Description:      v.Description,
		Type:             v.Type,
		Capacity:         v.Capacity,
		TransmissionType: v.TransmissionType,
		FuelType:         v.FuelType,
		DailyRate:        v.DailyRate,
		LateFeePerDay:    v.LateFeePerDay,
		MainImageURL:     v.MainImageURL,
		IsAvailable:      v.IsAvailable,
		LicensePlate:     v.LicensePlate,
		City:             v.City,
		Address:          v.Address,
		Images:           images,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

// FromModels maps a list of vehicle rows into DTOs.
func FromModels(rows []models.Vehicle) []VehicleDTO {
	out := make([]VehicleDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
