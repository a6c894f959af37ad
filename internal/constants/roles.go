package constants

import (
	"database/sql/driver"
	"fmt"
)

// PilotRole mirrors the Postgres ENUM 'pilot_role'
type PilotRole string

const (
	RolePilot PilotRole = "pilot"
	RoleAdmin PilotRole = "admin"
)

// Stringer ­– convenient for fmt / logs
func (r PilotRole) String() string { return string(r) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *PilotRole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = PilotRole(v)
	case []byte:
		*r = PilotRole(v)
	default:
		return fmt.Errorf("PilotRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r PilotRole) Value() (driver.Value, error) { return string(r), nil }
