package request

import (
	"encoding/json"
	"fmt"
	"time"
)

// Accepted timestamp forms, tried in order. Values without an offset are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// DateTime is a JSON timestamp that also accepts a bare calendar day or a
// timestamp without offset.
type DateTime struct {
	time.Time
}

// DateTimeError reports a value none of the accepted layouts could parse.
type DateTimeError struct {
	Value string
}

func (e *DateTimeError) Error() string {
	return fmt.Sprintf("data inválida: %s", e.Value)
}

func ParseDateTime(raw string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &DateTimeError{Value: raw}
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return &DateTimeError{Value: string(b)}
	}
	t, err := ParseDateTime(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Value returns the parsed time, the zero time for a missing value.
func (d *DateTime) Value() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

// Ptr returns the parsed time, nil for a missing value.
func (d *DateTime) Ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
