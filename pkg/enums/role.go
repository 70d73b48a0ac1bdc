package enums

import "fmt"

// Role is the flat permission tier assigned to an account. There is no
// hierarchy; authorization is plain set membership.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOwner    Role = "OWNER"
	RoleCustomer Role = "CUSTOMER"
)

var validRoles = []Role{
	RoleAdmin,
	RoleOwner,
	RoleCustomer,
}

// AdminRoles are the roles allowed onto the admin surface.
var AdminRoles = []Role{RoleAdmin, RoleOwner}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
