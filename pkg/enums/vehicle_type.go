package enums

import "fmt"

// VehicleType classifies the body style of a listed vehicle.
type VehicleType string

const (
	VehicleTypeMPV       VehicleType = "MPV"
	VehicleTypeSUV       VehicleType = "SUV"
	VehicleTypeSedan     VehicleType = "SEDAN"
	VehicleTypeHatchback VehicleType = "HATCHBACK"
	VehicleTypeMinibus   VehicleType = "MINIBUS"
	VehicleTypePickup    VehicleType = "PICKUP"
)

var validVehicleTypes = []VehicleType{
	VehicleTypeMPV,
	VehicleTypeSUV,
	VehicleTypeSedan,
	VehicleTypeHatchback,
	VehicleTypeMinibus,
	VehicleTypePickup,
}

// String implements fmt.Stringer.
func (v VehicleType) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VehicleType.
func (v VehicleType) IsValid() bool {
	for _, candidate := range validVehicleTypes {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVehicleType converts raw input into a VehicleType.
func ParseVehicleType(value string) (VehicleType, error) {
	for _, candidate := range validVehicleTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vehicle type %q", value)
}
