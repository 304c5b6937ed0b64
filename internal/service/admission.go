package service

import (
	"context"

	"github.com/iliyamo/car-rental-platform/internal/apperr"
	"github.com/iliyamo/car-rental-platform/internal/model"
)

// CreateReservation is the admission engine.  It validates the request,
// checks the target car and the calendar, fills derived fields and
// commits the booking.  Policy, in order:
//
//  1. user id and car id must be present (Validation);
//  2. the car must exist (NotFound);
//  3. the car must not be in maintenance (Conflict); the advisory
//     "reserved"/"available" display state never blocks a submission;
//  4. when both dates are present, no confirmed reservation on the same
//     car may overlap the requested inclusive range (Conflict); pending
//     reservations do not reserve the calendar;
//  5. a missing day count is derived as end minus start in whole days;
//  6. a missing status defaults to pending; a booking is never
//     auto-confirmed.
//
// The check-then-insert sequence is serialized per car id so two
// concurrent submissions for the same car cannot both pass the overlap
// check.  The car's availability column is deliberately not touched:
// bookability is governed by confirmed reservations, not by that field.
func (s *RentalService) CreateReservation(ctx context.Context, res model.Reservation) (*model.Reservation, error) {
	if res.UserID == 0 {
		return nil, apperr.New(apperr.Validation, "user id is required")
	}
	if res.CarID == 0 {
		return nil, apperr.New(apperr.Validation, "car id is required")
	}

	mu := s.lockCar(res.CarID)
	mu.Lock()
	defer mu.Unlock()

	car, err := s.cars.FindByID(ctx, res.CarID)
	if err != nil {
		return nil, storeErr(err, "car id=%d", res.CarID)
	}
	if car.InMaintenance() {
		return nil, apperr.New(apperr.Conflict, "car %d is currently in maintenance", car.ID)
	}

	hasDates := !res.StartDate.IsZero() && !res.EndDate.IsZero()
	if hasDates {
		overlap, err := s.reservations.HasConfirmedOverlap(ctx, res.CarID, res.StartDate, res.EndDate)
		if err != nil {
			return nil, apperr.Wrap(apperr.Persistence, err, "overlap check car_id=%d", res.CarID)
		}
		if overlap {
			return nil, apperr.New(apperr.Conflict,
				"car %d is already reserved between %s and %s", res.CarID, res.StartDate, res.EndDate)
		}
	}

	if res.Days == 0 && hasDates {
		res.Days = res.StartDate.DaysUntil(res.EndDate)
	}
	if res.Status == "" {
		res.Status = model.StatusPending
	}
	res.TotalPrice = model.NormalizePrice(res.TotalPrice)

	created, err := s.reservations.Create(ctx, &res)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "create reservation car_id=%d", res.CarID)
	}
	if s.events != nil {
		s.events.ReservationCreated(ctx, created)
	}
	return created, nil
}
