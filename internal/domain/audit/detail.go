package audit

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Detail is the free-form payload of an audit entry: the submitted fields on
// create, the changed fields on update, the pre-deletion snapshot on delete.
// Stored as a JSON column.
type Detail map[string]any

// Value implements driver.Valuer
func (d Detail) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner
func (d *Detail) Scan(value any) error {
	if value == nil {
		*d = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("cannot scan %T into audit.Detail", value)
	}
}
