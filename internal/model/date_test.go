package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	start := NewDate(2026, time.September, 10)
	end := NewDate(2026, time.September, 15)
	assert.Equal(t, 5, start.DaysUntil(end))
	assert.Equal(t, 0, start.DaysUntil(start))
	assert.Equal(t, -5, end.DaysUntil(start))
}

func TestDaysUntilAcrossMonths(t *testing.T) {
	start := NewDate(2026, time.September, 28)
	end := NewDate(2026, time.October, 3)
	assert.Equal(t, 5, start.DaysUntil(end))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-10", d.String())

	_, err = ParseDate("10/09/2026")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.September, 10)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-10"`, string(b))

	var zero Date
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-09-10"`), &parsed))
	assert.Equal(t, d, parsed)

	// RFC3339 timestamps are accepted, the time part is discarded.
	require.NoError(t, json.Unmarshal([]byte(`"2026-09-10T14:30:00Z"`), &parsed))
	assert.Equal(t, d, parsed)

	require.NoError(t, json.Unmarshal([]byte("null"), &parsed))
	assert.True(t, parsed.IsZero())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, time.September, 10, 14, 30, 0, 0, time.Local)))
	assert.Equal(t, "2026-09-10", d.String())

	require.NoError(t, d.Scan([]byte("2026-09-11")))
	assert.Equal(t, "2026-09-11", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(12345))
}

func TestReservationOverlaps(t *testing.T) {
	r := Reservation{
		StartDate: NewDate(2026, time.September, 1),
		EndDate:   NewDate(2026, time.September, 5),
	}

	cases := []struct {
		name       string
		start, end Date
		want       bool
	}{
		{"inside", NewDate(2026, time.September, 2), NewDate(2026, time.September, 4), true},
		{"straddles end", NewDate(2026, time.September, 3), NewDate(2026, time.September, 7), true},
		{"shares boundary", NewDate(2026, time.September, 5), NewDate(2026, time.September, 9), true},
		{"after", NewDate(2026, time.September, 6), NewDate(2026, time.September, 10), false},
		{"before", NewDate(2026, time.August, 20), NewDate(2026, time.August, 31), false},
		{"covers", NewDate(2026, time.August, 20), NewDate(2026, time.September, 10), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Overlaps(tc.start, tc.end))
		})
	}
}
