package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/car-rental-platform/internal/model"
)

// ReservationRepo provides CRUD operations for the `reservations` table.
// Every read joins users and cars so the display-only UserName and
// CarName fields come back populated; they are never written.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationSelect = `SELECT r.id, r.user_id, r.car_id, r.start_date,
	r.end_date, r.days, r.insurance_type, r.extras, r.total_price, r.status,
	r.created_at, r.updated_at, u.full_name AS user_name, c.name AS car_name
	FROM reservations r
	LEFT JOIN users u ON u.id = r.user_id
	LEFT JOIN cars c ON c.id = r.car_id`

// Create inserts a new reservation and returns the fully reloaded record,
// including the joined display fields.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) (*model.Reservation, error) {
	const q = `INSERT INTO reservations (user_id, car_id, start_date, end_date,
		days, insurance_type, extras, total_price, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q,
		res.UserID, res.CarID, res.StartDate, res.EndDate, res.Days,
		res.InsuranceType, encodeStringList(res.Extras),
		model.PriceString(res.TotalPrice), res.Status)
	if err != nil {
		return nil, fmt.Errorf("insert reservation car_id=%d: %w", res.CarID, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return nil, fmt.Errorf("insert reservation car_id=%d: no rows affected", res.CarID)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert reservation car_id=%d: read id: %w", res.CarID, err)
	}
	return r.FindByID(ctx, id)
}

// FindByID fetches a reservation by primary key, ErrNotFound when absent.
func (r *ReservationRepo) FindByID(ctx context.Context, id int64) (*model.Reservation, error) {
	row := r.db.QueryRowContext(ctx, reservationSelect+` WHERE r.id = ?`, id)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find reservation id=%d: %w", id, err)
	}
	return res, nil
}

// FindAll lists every reservation ordered by id.
func (r *ReservationRepo) FindAll(ctx context.Context) ([]model.Reservation, error) {
	return r.queryReservations(ctx, reservationSelect+` ORDER BY r.id`)
}

// FindByUser lists the reservations created by one user.
func (r *ReservationRepo) FindByUser(ctx context.Context, userID int64) ([]model.Reservation, error) {
	return r.queryReservations(ctx,
		reservationSelect+` WHERE r.user_id = ? ORDER BY r.id`, userID)
}

// FindByCar lists the reservations booked against one car.
func (r *ReservationRepo) FindByCar(ctx context.Context, carID int64) ([]model.Reservation, error) {
	return r.queryReservations(ctx,
		reservationSelect+` WHERE r.car_id = ? ORDER BY r.id`, carID)
}

// HasConfirmedOverlap reports whether any confirmed reservation on the
// car shares at least one day with the inclusive range [start, end].
// Pending reservations never count.  The predicate is the canonical
// interval test: existing.start <= newEnd AND existing.end >= newStart.
func (r *ReservationRepo) HasConfirmedOverlap(ctx context.Context, carID int64, start, end model.Date) (bool, error) {
	const q = `SELECT COUNT(*) FROM reservations
		WHERE car_id = ? AND status = 'confirmed'
		AND start_date <= ? AND end_date >= ?`
	var count int
	if err := r.db.QueryRowContext(ctx, q, carID, end, start).Scan(&count); err != nil {
		return false, fmt.Errorf("overlap check car_id=%d [%s..%s]: %w", carID, start, end, err)
	}
	return count > 0, nil
}

// HasActiveOverlap is like HasConfirmedOverlap but counts pending
// reservations as well.  The strict cancel policy uses it to decide
// whether a car may be advertised as available again.
func (r *ReservationRepo) HasActiveOverlap(ctx context.Context, carID int64, start, end model.Date) (bool, error) {
	const q = `SELECT COUNT(*) FROM reservations
		WHERE car_id = ? AND status IN ('pending', 'confirmed')
		AND start_date <= ? AND end_date >= ?`
	var count int
	if err := r.db.QueryRowContext(ctx, q, carID, end, start).Scan(&count); err != nil {
		return false, fmt.Errorf("active overlap check car_id=%d [%s..%s]: %w", carID, start, end, err)
	}
	return count > 0, nil
}

// Update overwrites every mutable column, status included, and returns
// the reloaded record.  No transition table is enforced here.
func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) (*model.Reservation, error) {
	const q = `UPDATE reservations SET user_id = ?, car_id = ?, start_date = ?,
		end_date = ?, days = ?, insurance_type = ?, extras = ?,
		total_price = ?, status = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q,
		res.UserID, res.CarID, res.StartDate, res.EndDate, res.Days,
		res.InsuranceType, encodeStringList(res.Extras),
		model.PriceString(res.TotalPrice), res.Status, res.ID); err != nil {
		return nil, fmt.Errorf("update reservation id=%d: %w", res.ID, err)
	}
	return r.FindByID(ctx, res.ID)
}

// Cancel flips a reservation's status to cancelled, keeping the row.  It
// reports whether a row was updated.
func (r *ReservationRepo) Cancel(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = 'cancelled' WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("cancel reservation id=%d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("cancel reservation id=%d: %w", id, err)
	}
	return affected > 0, nil
}

func (r *ReservationRepo) queryReservations(ctx context.Context, q string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			logSkippedRow("reservations", err)
			continue
		}
		reservations = append(reservations, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	return reservations, nil
}

func scanReservation(s scanner) (*model.Reservation, error) {
	var res model.Reservation
	var extras sql.NullString
	var userName, carName sql.NullString
	err := s.Scan(&res.ID, &res.UserID, &res.CarID, &res.StartDate,
		&res.EndDate, &res.Days, &res.InsuranceType, &extras,
		&res.TotalPrice, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		&userName, &carName)
	if err != nil {
		return nil, err
	}
	res.Extras = decodeStringList(extras, "reservations.extras", res.ID)
	res.UserName = userName.String
	res.CarName = carName.String
	return &res, nil
}
