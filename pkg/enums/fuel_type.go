package enums

import "fmt"

// FuelType identifies what powers a vehicle.
type FuelType string

const (
	FuelTypeBensin  FuelType = "BENSIN"
	FuelTypeSolar   FuelType = "SOLAR"
	FuelTypeListrik FuelType = "LISTRIK"
	FuelTypeHybrid  FuelType = "HYBRID"
)

var validFuelTypes = []FuelType{
	FuelTypeBensin,
	FuelTypeSolar,
	FuelTypeListrik,
	FuelTypeHybrid,
}

// String implements fmt.Stringer.
func (f FuelType) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FuelType.
func (f FuelType) IsValid() bool {
	for _, candidate := range validFuelTypes {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFuelType converts raw input into a FuelType.
func ParseFuelType(value string) (FuelType, error) {
	for _, candidate := range validFuelTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fuel type %q", value)
}
