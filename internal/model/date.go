package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// dateLayouts are accepted when decoding dates from JSON
var dateLayouts = []string{
	"2006-01-02",
	"20060102",
	time.RFC3339,
}

// NullDate is a date that may be absent. The zero value is absent.
type NullDate struct {
	Time  time.Time
	Valid bool
}

// NewNullDate returns a present date
func NewNullDate(t time.Time) NullDate {
	return NullDate{Time: t, Valid: true}
}

// Date returns a present date at midnight UTC
func Date(year int, month time.Month, day int) NullDate {
	return NewNullDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// MarshalJSON renders a present date as "YYYY-MM-DD" and an absent one as null
func (d NullDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format("2006-01-02"))
}

// UnmarshalJSON accepts null, "" or a date in one of dateLayouts
func (d *NullDate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = NullDate{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return NewDecodeError("date", "expected a string", err)
	}
	if s == "" {
		*d = NullDate{}
		return nil
	}

	t, err := parseDate(s)
	if err != nil {
		return err
	}
	*d = NewNullDate(t)
	return nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewDecodeError("date", "cannot parse date "+s, nil)
}
