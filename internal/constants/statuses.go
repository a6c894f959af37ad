package constants

import (
	"database/sql/driver"
	"fmt"
)

// ApplicationStatus mirrors the Postgres ENUM 'application_status'.
// Transitions are pending -> accept or pending -> reject, exactly once.
type ApplicationStatus string

const (
	StatusPending ApplicationStatus = "pending"
	StatusAccept  ApplicationStatus = "accept"
	StatusReject  ApplicationStatus = "reject"
)

func (s ApplicationStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface
func (s *ApplicationStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = ApplicationStatus(v)
	case []byte:
		*s = ApplicationStatus(v)
	default:
		return fmt.Errorf("ApplicationStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s ApplicationStatus) Value() (driver.Value, error) { return string(s), nil }
