package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/car-rental-platform/internal/model"
)

// UserRepo provides CRUD operations for the `users` table.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, full_name, email, password, role, phone_country_code,
	phone_number, address, profile_picture_url, driving_card_url,
	national_card_url, is_company, created_at, updated_at`

// Create inserts a new user and returns the fully reloaded record so the
// caller sees database-assigned defaults and timestamps.
func (r *UserRepo) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `INSERT INTO users (full_name, email, password, role,
		phone_country_code, phone_number, address, profile_picture_url,
		driving_card_url, national_card_url, is_company)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		u.FullName, u.Email, u.Password, u.Role,
		u.PhoneCountryCode, u.PhoneNumber, u.Address, u.ProfilePictureURL,
		u.DrivingCardURL, u.NationalCardURL, u.IsCompany)
	if err != nil {
		// MySQL error 1062: duplicate entry on the unique email index.
		if strings.Contains(err.Error(), "1062") {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user email=%s: %w", u.Email, err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return nil, fmt.Errorf("insert user email=%s: no rows affected", u.Email)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user email=%s: read id: %w", u.Email, err)
	}
	return r.FindByID(ctx, id)
}

// FindByID fetches a user by primary key, ErrNotFound when absent.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user id=%d: %w", id, err)
	}
	return u, nil
}

// FindByEmail fetches a user by exact email, ErrNotFound when absent.
// Emails are compared as stored; no case folding is applied.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user email=%s: %w", email, err)
	}
	return u, nil
}

// FindAll lists every user ordered by id.  Rows that fail to map are
// logged and skipped rather than failing the whole listing.
func (r *UserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			logSkippedRow("users", err)
			continue
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update overwrites every mutable column and returns the reloaded record.
// Field-level merge decisions belong to the service layer; by the time a
// record reaches here it is the effective state to persist.
func (r *UserRepo) Update(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `UPDATE users SET full_name = ?, email = ?, password = ?, role = ?,
		phone_country_code = ?, phone_number = ?, address = ?,
		profile_picture_url = ?, driving_card_url = ?, national_card_url = ?,
		is_company = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q,
		u.FullName, u.Email, u.Password, u.Role,
		u.PhoneCountryCode, u.PhoneNumber, u.Address,
		u.ProfilePictureURL, u.DrivingCardURL, u.NationalCardURL,
		u.IsCompany, u.ID); err != nil {
		return nil, fmt.Errorf("update user id=%d: %w", u.ID, err)
	}
	return r.FindByID(ctx, u.ID)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*model.User, error) {
	var u model.User
	var isCompany sql.NullBool
	err := s.Scan(&u.ID, &u.FullName, &u.Email, &u.Password, &u.Role,
		&u.PhoneCountryCode, &u.PhoneNumber, &u.Address,
		&u.ProfilePictureURL, &u.DrivingCardURL, &u.NationalCardURL,
		&isCompany, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	// Tri-state is_company collapses to false when NULL.
	u.IsCompany = isCompany.Valid && isCompany.Bool
	return &u, nil
}
