package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// Date is a calendar date that travels over JSON as "2006-01-02".
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf converts a stored column value.
func DateOf(d datatypes.Date) Date {
	return Date{time.Time(d).UTC()}
}

func (d Date) Column() datatypes.Date {
	return datatypes.Date(d.Time)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return fmt.Errorf("date must use the YYYY-MM-DD format: %w", err)
	}
	d.Time = parsed
	return nil
}
