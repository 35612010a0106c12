package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONDoc holds a free-form jsonb document (achievement requirements, earn
// progress, level data, gateway config). Keys are documented per use-site.
type JSONDoc map[string]any

func (d JSONDoc) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}

func (d *JSONDoc) Scan(value any) error {
	if value == nil {
		*d = JSONDoc{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("cannot scan %T into JSONDoc", value)
	}
}

func (JSONDoc) GormDataType() string {
	return "jsonb"
}
