package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
)

// Role is the single role a user holds. It is a closed set; the zero value
// is not a valid role and is denied everything by the policy engine.
type Role uint8

const (
	RoleUnspecified Role = iota
	RolePlayer
	RoleCoach
	RoleStatistician
	RoleAdmin
)

var roleNames = [...]string{
	RoleUnspecified: "",
	RolePlayer:       "player",
	RoleCoach:        "coach",
	RoleStatistician: "statistician",
	RoleAdmin:        "admin",
}

// ParseRole maps a stored or submitted role name to a Role.
func ParseRole(name string) (Role, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r := RolePlayer; r <= RoleAdmin; r++ {
		if roleNames[r] == name {
			return r, nil
		}
	}
	return RoleUnspecified, common.InvalidInput("unknown role %q", name)
}

func (r Role) Valid() bool { return r >= RolePlayer && r <= RoleAdmin }

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// Display is the human label, e.g. "Statistician".
func (r Role) Display() string {
	if !r.Valid() {
		return "Unknown"
	}
	return displayLabel(r.String())
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid role %d", uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value stores the role by name.
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("Role: invalid value %d", uint8(r))
	}
	return r.String(), nil
}

// Scan reads a role name column.
func (r *Role) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	default:
		return fmt.Errorf("Role: expected string, got %T", src)
	}
}
