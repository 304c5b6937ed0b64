package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the canonical wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar day without a time component.  Reservations are
// booked against whole days, so all range arithmetic in the booking
// engine works on Date values normalized to midnight UTC.  The type
// marshals as "YYYY-MM-DD" in JSON and stores as a DATE column.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{t.UTC()}, nil
}

// DaysUntil returns the number of whole days from d to other, truncating.
// The end day itself is not counted: day 10 to day 15 is 5 days.
func (d Date) DaysUntil(other Date) int {
	return int(other.Sub(d.Time) / (24 * time.Hour))
}

// String renders the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string, or null
// when the date is unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD", a full RFC3339 timestamp (the time
// part is discarded), or null.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t.UTC()
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

// Value implements driver.Valuer so a Date can be bound to a DATE column.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Format(dateLayout), nil
}

// Scan implements sql.Scanner.  The MySQL driver returns DATE columns as
// time.Time when parseTime=true and as []byte otherwise; both are handled.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		d.Time = parsed.Time
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		d.Time = parsed.Time
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
