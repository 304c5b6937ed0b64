package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental-platform/internal/model"
)

var reservationCols = []string{"id", "user_id", "car_id", "start_date",
	"end_date", "days", "insurance_type", "extras", "total_price", "status",
	"created_at", "updated_at", "user_name", "car_name"}

func reservationRow(id int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(reservationCols).AddRow(
		id, int64(7), int64(3), "2026-09-01", "2026-09-05", 4,
		"full", `["gps"]`, "180.00", "confirmed", now, now, "Ada", "Clio")
}

func TestHasConfirmedOverlapBindsRangeReversed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	start := model.NewDate(2026, time.September, 3)
	end := model.NewDate(2026, time.September, 7)

	// The predicate is start_date <= newEnd AND end_date >= newStart, so
	// the query binds the end of the requested range first.
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WithArgs(int64(3), "2026-09-07", "2026-09-03").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	overlap, err := repo.HasConfirmedOverlap(context.Background(), 3, start, end)
	require.NoError(t, err)
	assert.True(t, overlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasActiveOverlapCountsPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	today := model.NewDate(2026, time.September, 3)

	mock.ExpectQuery(`status IN \('pending', 'confirmed'\)`).
		WithArgs(int64(3), "2026-09-03", "2026-09-03").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	busy, err := repo.HasActiveOverlap(context.Background(), 3, today, today)
	require.NoError(t, err)
	assert.False(t, busy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationFindByIDJoinsDisplayFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectQuery(`LEFT JOIN users u ON u.id = r.user_id`).
		WithArgs(int64(1)).
		WillReturnRows(reservationRow(1))

	res, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", res.UserName)
	assert.Equal(t, "Clio", res.CarName)
	assert.Equal(t, "2026-09-01", res.StartDate.String())
	assert.Equal(t, []string{"gps"}, res.Extras)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelReportsAffectedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectExec(`UPDATE reservations SET status = 'cancelled' WHERE id = \?`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Cancel(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(`UPDATE reservations SET status = 'cancelled' WHERE id = \?`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.Cancel(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
