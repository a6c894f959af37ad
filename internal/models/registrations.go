package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RegistrationMap maps an aircraft model name to the tail number assigned to
// the pilot for it. Stored as a JSON column.
type RegistrationMap map[string]string

// Scan implements the sql.Scanner interface
func (m *RegistrationMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("RegistrationMap: cannot scan type %T", src)
	}
	if len(data) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(data, m)
}

// Value implements the driver.Valuer interface
func (m RegistrationMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
