package staff

import (
	"fmt"
	"strings"

	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"
)

// Role is the closed set of staff roles. Each role carries a distinct
// maximum number of concurrently assigned orders.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Server waits tables; capacity 6 concurrent orders.
	Server

	// Cook prepares orders; capacity 8 concurrent orders.
	Cook

	// Supervisor oversees the floor; capacity 10 concurrent orders.
	Supervisor
)

// Per-role maximum concurrent-order capacity.
const (
	serverCapacity     = 6
	cookCapacity       = 8
	supervisorCapacity = 10
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Server:      "Server",
		Cook:        "Cook",
		Supervisor:  "Supervisor",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Server:     "Server",
		Cook:       "Cook",
		Supervisor: "Supervisor",
	}
}

// RoleFromString parses a Role from its name, case-insensitively.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if strings.EqualFold(name, s) {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Capacity returns the role's maximum number of concurrently assigned
// orders. Unknown roles have zero capacity.
func (r Role) Capacity() int {
	switch r {
	case Server:
		return serverCapacity
	case Cook:
		return cookCapacity
	case Supervisor:
		return supervisorCapacity
	default:
		return 0
	}
}
