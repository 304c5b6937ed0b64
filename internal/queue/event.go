// Package queue carries reservation lifecycle events over the message
// broker: a publisher invoked by the backend service after a booking is
// created or cancelled, and a background consumer that turns the events
// into an audit log.  Broker trouble never fails a booking; publishing
// is strictly best-effort.
package queue

// Actions a reservation event can carry.
const (
	ActionCreated   = "created"
	ActionCancelled = "cancelled"
)

// ReservationEvent is published on every reservation lifecycle change.
// It carries enough context for downstream consumers to log or notify
// without querying the primary database.
type ReservationEvent struct {
	Action        string `json:"action"`
	ReservationID int64  `json:"reservation_id"`
	UserID        int64  `json:"user_id"`
	UserName      string `json:"user_name,omitempty"`
	CarID         int64  `json:"car_id"`
	CarName       string `json:"car_name,omitempty"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Days          int    `json:"days"`
	TotalPrice    string `json:"total_price"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}
