package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SheriffAssignment describes who is currently on duty and since when.
type SheriffAssignment struct {
	UserID  string    `json:"userId"`
	Started time.Time `json:"started"`
}

// SheriffDuty is the persisted duty record - one per workspace. Absence of a
// record is a valid state ("no sheriff assigned"), not an error.
type SheriffDuty struct {
	Current SheriffAssignment `json:"current"`
}

// Value implements driver.Valuer so the duty can be stored as JSONB.
func (d SheriffDuty) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for reading the JSONB duty column.
func (d *SheriffDuty) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported type for SheriffDuty: %T", src)
	}
}

// SheriffDutyRecord is the stored row wrapping a duty record with its key
// and bookkeeping timestamps.
type SheriffDutyRecord struct {
	ID        string      `json:"id"         db:"id"`
	DutyKey   string      `json:"duty_key"   db:"duty_key"`
	Duty      SheriffDuty `json:"duty"       db:"duty"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}
