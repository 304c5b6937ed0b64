package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/car-rental-platform/internal/model"
)

// CarRepo provides CRUD and search operations for the `cars` table.
// Prices are normalized to two decimals before they reach this layer;
// the repo persists what it is given.
type CarRepo struct {
	db *sql.DB
}

// NewCarRepo returns a CarRepo bound to the given database.
func NewCarRepo(db *sql.DB) *CarRepo { return &CarRepo{db: db} }

const carColumns = `id, name, brand, price_per_day, city, availability,
	owner_id, owner_name, main_image_url, images_url, seats, fuel_type,
	gearbox, latitude, longitude, created_at, updated_at`

// Create inserts a new car and returns the fully reloaded record.
func (r *CarRepo) Create(ctx context.Context, c *model.Car) (*model.Car, error) {
	const q = `INSERT INTO cars (name, brand, price_per_day, city, availability,
		owner_id, owner_name, main_image_url, images_url, seats, fuel_type,
		gearbox, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		c.Name, c.Brand, model.PriceString(c.PricePerDay), c.City, c.Availability,
		c.OwnerID, c.OwnerName, c.MainImageURL, encodeStringList(c.ImagesURL),
		c.Seats, c.FuelType, c.Gearbox, nullDecimal(c.Latitude), nullDecimal(c.Longitude))
	if err != nil {
		return nil, fmt.Errorf("insert car owner_id=%d: %w", c.OwnerID, err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return nil, fmt.Errorf("insert car owner_id=%d: no rows affected", c.OwnerID)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert car owner_id=%d: read id: %w", c.OwnerID, err)
	}
	return r.FindByID(ctx, id)
}

// FindByID fetches a car by primary key, ErrNotFound when absent.
func (r *CarRepo) FindByID(ctx context.Context, id int64) (*model.Car, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+carColumns+` FROM cars WHERE id = ?`, id)
	c, err := scanCar(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find car id=%d: %w", id, err)
	}
	return c, nil
}

// FindAll lists every car ordered by id.
func (r *CarRepo) FindAll(ctx context.Context) ([]model.Car, error) {
	return r.queryCars(ctx, `SELECT `+carColumns+` FROM cars ORDER BY id`)
}

// FindByOwner lists the cars belonging to one owner.
func (r *CarRepo) FindByOwner(ctx context.Context, ownerID int64) ([]model.Car, error) {
	return r.queryCars(ctx,
		`SELECT `+carColumns+` FROM cars WHERE owner_id = ? ORDER BY id`, ownerID)
}

// Search filters cars by any subset of brand, city and availability.
// Empty filter values are skipped; with no filters it behaves as FindAll.
func (r *CarRepo) Search(ctx context.Context, brand, city, availability string) ([]model.Car, error) {
	where := []string{}
	args := []any{}
	if brand != "" {
		where = append(where, "brand = ?")
		args = append(args, brand)
	}
	if city != "" {
		where = append(where, "city = ?")
		args = append(args, city)
	}
	if availability != "" {
		where = append(where, "availability = ?")
		args = append(args, availability)
	}
	q := `SELECT ` + carColumns + ` FROM cars`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY id`
	return r.queryCars(ctx, q, args...)
}

// Update overwrites every mutable column and returns the reloaded record.
func (r *CarRepo) Update(ctx context.Context, c *model.Car) (*model.Car, error) {
	const q = `UPDATE cars SET name = ?, brand = ?, price_per_day = ?, city = ?,
		availability = ?, owner_id = ?, owner_name = ?, main_image_url = ?,
		images_url = ?, seats = ?, fuel_type = ?, gearbox = ?,
		latitude = ?, longitude = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q,
		c.Name, c.Brand, model.PriceString(c.PricePerDay), c.City, c.Availability,
		c.OwnerID, c.OwnerName, c.MainImageURL, encodeStringList(c.ImagesURL),
		c.Seats, c.FuelType, c.Gearbox, nullDecimal(c.Latitude), nullDecimal(c.Longitude),
		c.ID); err != nil {
		return nil, fmt.Errorf("update car id=%d: %w", c.ID, err)
	}
	return r.FindByID(ctx, c.ID)
}

// SetAvailability updates only the advisory availability column.
func (r *CarRepo) SetAvailability(ctx context.Context, id int64, availability string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE cars SET availability = ? WHERE id = ?`, availability, id); err != nil {
		return fmt.Errorf("set car id=%d availability=%s: %w", id, availability, err)
	}
	return nil
}

// Delete hard-deletes a car.  It reports whether a row was removed.
func (r *CarRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete car id=%d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete car id=%d: %w", id, err)
	}
	return affected > 0, nil
}

func (r *CarRepo) queryCars(ctx context.Context, q string, args ...any) ([]model.Car, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}
	defer rows.Close()

	cars := make([]model.Car, 0)
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			logSkippedRow("cars", err)
			continue
		}
		cars = append(cars, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}
	return cars, nil
}

func scanCar(s scanner) (*model.Car, error) {
	var c model.Car
	var images sql.NullString
	var lat, lng decimal.NullDecimal
	err := s.Scan(&c.ID, &c.Name, &c.Brand, &c.PricePerDay, &c.City,
		&c.Availability, &c.OwnerID, &c.OwnerName, &c.MainImageURL, &images,
		&c.Seats, &c.FuelType, &c.Gearbox, &lat, &lng,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.ImagesURL = decodeStringList(images, "cars.images_url", c.ID)
	if lat.Valid {
		c.Latitude = &lat.Decimal
	}
	if lng.Valid {
		c.Longitude = &lng.Decimal
	}
	return &c, nil
}

// nullDecimal converts an optional coordinate to a bindable value.
func nullDecimal(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}
