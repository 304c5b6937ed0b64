package service

import (
	"context"
	"log"

	"github.com/iliyamo/car-rental-platform/internal/apperr"
	"github.com/iliyamo/car-rental-platform/internal/model"
)

// CancelPolicy decides how a successful cancellation touches the car's
// advertised availability.
type CancelPolicy int

const (
	// ReleaseAlways marks the car available unconditionally after a
	// cancellation, without checking for other confirmed reservations.
	// This is the historical behavior: availability is advisory display
	// metadata, so a momentarily wrong value cannot cause a double
	// booking.  Pending product confirmation on whether it is intended.
	ReleaseAlways CancelPolicy = iota
	// ReleaseIfFree marks the car available only when no other pending
	// or confirmed reservation covers today's date.
	ReleaseIfFree
)

// CancelReservation flips a reservation to cancelled, keeping the row,
// and then applies the cancel policy to the car's availability.  A
// failure while updating the car is logged but does not undo the
// cancellation: the booking state machine owns the status, the
// availability column is only a display hint.
func (s *RentalService) CancelReservation(ctx context.Context, id int64) (bool, error) {
	if id == 0 {
		return false, apperr.New(apperr.Validation, "reservation id is required")
	}
	res, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return false, storeErr(err, "reservation id=%d", id)
	}
	cancelled, err := s.reservations.Cancel(ctx, id)
	if err != nil {
		return false, apperr.Wrap(apperr.Persistence, err, "cancel reservation id=%d", id)
	}
	if !cancelled {
		return false, nil
	}

	if s.releaseCarAfterCancel(ctx, res) {
		if err := s.cars.SetAvailability(ctx, res.CarID, model.AvailabilityAvailable); err != nil {
			log.Printf("service: release car id=%d after cancel: %v", res.CarID, err)
		}
	}
	if s.events != nil {
		res.Status = model.StatusCancelled
		s.events.ReservationCancelled(ctx, res)
	}
	return true, nil
}

// releaseCarAfterCancel evaluates the configured CancelPolicy.
func (s *RentalService) releaseCarAfterCancel(ctx context.Context, res *model.Reservation) bool {
	switch s.cancelPolicy {
	case ReleaseIfFree:
		today := model.Today()
		busy, err := s.reservations.HasActiveOverlap(ctx, res.CarID, today, today)
		if err != nil {
			log.Printf("service: active overlap check car_id=%d: %v", res.CarID, err)
			return false
		}
		return !busy
	default: // ReleaseAlways
		return true
	}
}

// UpdateReservation overwrites every mutable field of an existing
// reservation, status included.  Any status may be set to any other; the
// owner approval flow drives pending to confirmed through this call.
func (s *RentalService) UpdateReservation(ctx context.Context, res model.Reservation) (*model.Reservation, error) {
	if res.ID == 0 {
		return nil, apperr.New(apperr.Validation, "reservation id is required for update")
	}
	res.TotalPrice = model.NormalizePrice(res.TotalPrice)
	updated, err := s.reservations.Update(ctx, &res)
	if err != nil {
		return nil, storeErr(err, "reservation id=%d", res.ID)
	}
	return updated, nil
}

// ChangePassword replaces a user's password after verifying the current
// one by plain equality.  A wrong current password is a Conflict and
// leaves the stored credential untouched.
func (s *RentalService) ChangePassword(ctx context.Context, userID int64, current, newPassword string) (bool, error) {
	if userID == 0 {
		return false, apperr.New(apperr.Validation, "user id is required")
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return false, storeErr(err, "user id=%d", userID)
	}
	if u.Password != current {
		return false, apperr.New(apperr.Conflict, "current password is incorrect")
	}
	u.Password = newPassword
	if _, err := s.users.Update(ctx, u); err != nil {
		return false, apperr.Wrap(apperr.Persistence, err, "change password user_id=%d", userID)
	}
	return true, nil
}

// UpdateUser merges a partial update onto the stored record: nil patch
// fields keep their stored values, the password only changes when the
// incoming value is non-nil and non-empty.  The merged record is
// persisted and reloaded.
func (s *RentalService) UpdateUser(ctx context.Context, patch model.UserPatch) (*model.User, error) {
	if patch.ID == 0 {
		return nil, apperr.New(apperr.Validation, "user id is required for update")
	}
	existing, err := s.users.FindByID(ctx, patch.ID)
	if err != nil {
		return nil, storeErr(err, "user id=%d", patch.ID)
	}
	merged := model.MergeUser(*existing, patch)
	updated, err := s.users.Update(ctx, &merged)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "update user id=%d", patch.ID)
	}
	return updated, nil
}
