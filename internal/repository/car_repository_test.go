package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var carCols = []string{"id", "name", "brand", "price_per_day", "city",
	"availability", "owner_id", "owner_name", "main_image_url", "images_url",
	"seats", "fuel_type", "gearbox", "latitude", "longitude",
	"created_at", "updated_at"}

func carRow(id int64, images any) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(carCols).AddRow(
		id, "Clio", "Renault", "45.00", "Lyon",
		"available", int64(1), "Ada", "http://img/main.jpg", images,
		5, "Gasoline", "Manual", nil, nil, now, now)
}

func TestCarSearchBuildsFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCarRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE brand = ? AND city = ? ORDER BY id`)).
		WithArgs("Renault", "Lyon").
		WillReturnRows(carRow(1, `["http://img/1.jpg"]`))

	cars, err := repo.Search(context.Background(), "Renault", "Lyon", "")
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Renault", cars[0].Brand)
	assert.Equal(t, []string{"http://img/1.jpg"}, cars[0].ImagesURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarSearchNoFiltersListsAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCarRepo(db)

	mock.ExpectQuery(`FROM cars ORDER BY id`).
		WillReturnRows(carRow(1, "[]"))

	cars, err := repo.Search(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Len(t, cars, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCarRepo(db)

	mock.ExpectQuery(`FROM cars WHERE id = \?`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(carCols))

	_, err = repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarCorruptImagesBlob(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCarRepo(db)

	mock.ExpectQuery(`FROM cars WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(carRow(1, "not-json"))

	car, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err, "a corrupt blob must not fail the read")
	assert.Equal(t, []string{}, car.ImagesURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarNullImagesBlob(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCarRepo(db)

	mock.ExpectQuery(`FROM cars WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(carRow(1, nil))

	car, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{}, car.ImagesURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCarRepo(db)

	mock.ExpectExec(`DELETE FROM cars WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(`DELETE FROM cars WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err = repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
