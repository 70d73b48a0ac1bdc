package enums

import "fmt"

// TransmissionType distinguishes gearbox kinds.
type TransmissionType string

const (
	TransmissionAutomatic TransmissionType = "AUTOMATIC"
	TransmissionManual    TransmissionType = "MANUAL"
)

var validTransmissionTypes = []TransmissionType{
	TransmissionAutomatic,
	TransmissionManual,
}

// String implements fmt.Stringer.
func (tr TransmissionType) String() string {
	return string(tr)
}

// IsValid reports whether the value is a known TransmissionType.
func (tr TransmissionType) IsValid() bool {
	for _, candidate := range validTransmissionTypes {
		if candidate == tr {
			return true
		}
	}
	return false
}

// ParseTransmissionType converts raw input into a TransmissionType.
func ParseTransmissionType(value string) (TransmissionType, error) {
	for _, candidate := range validTransmissionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transmission type %q", value)
}
