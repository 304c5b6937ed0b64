package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation status values.  Only confirmed reservations block the
// calendar; pending ones await owner approval and never prevent another
// booking from being submitted for the same dates.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Reservation represents a row of the `reservations` table plus two
// display-only fields populated from joins on read.  Start and end dates
// are an inclusive calendar range.  Days is derived from the range when
// the caller leaves it at zero.  Extras is persisted as a JSON text blob.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – renting user.
//  CarID         – reserved car.
//  StartDate     – first rental day (inclusive).
//  EndDate       – last rental day (inclusive).
//  Days          – whole day count; derived as end minus start when zero.
//  InsuranceType – "basic", "premium" or "full".
//  Extras        – ordered extras such as "gps" or "babySeat" (JSON blob).
//  TotalPrice    – total at two-decimal scale.
//  Status        – pending/confirmed/cancelled/completed.
//  CreatedAt     – timestamp of creation.
//  UpdatedAt     – timestamp of last update.
//  UserName      – renter's full name, read-only, filled by join.
//  CarName       – car name, read-only, filled by join.
type Reservation struct {
	ID            int64           `json:"id"`            // reservations.id
	UserID        int64           `json:"userId"`        // reservations.user_id
	CarID         int64           `json:"carId"`         // reservations.car_id
	StartDate     Date            `json:"startDate"`     // reservations.start_date
	EndDate       Date            `json:"endDate"`       // reservations.end_date
	Days          int             `json:"days"`          // reservations.days
	InsuranceType string          `json:"insuranceType"` // reservations.insurance_type
	Extras        []string        `json:"extras"`        // reservations.extras (JSON blob)
	TotalPrice    decimal.Decimal `json:"totalPrice"`    // reservations.total_price
	Status        string          `json:"status"`        // reservations.status
	CreatedAt     time.Time       `json:"createdAt"`     // reservations.created_at
	UpdatedAt     time.Time       `json:"updatedAt"`     // reservations.updated_at

	// Populated only on read via joins, never persisted.
	UserName string `json:"userName,omitempty"` // users.full_name
	CarName  string `json:"carName,omitempty"`  // cars.name
}

// Overlaps reports whether the reservation's inclusive date range shares
// at least one day with [start, end].  This is the single canonical
// interval test used everywhere the engine reasons about conflicts:
// existing.start <= newEnd AND existing.end >= newStart.
func (r Reservation) Overlaps(start, end Date) bool {
	return !r.StartDate.After(end.Time) && !r.EndDate.Before(start.Time)
}
