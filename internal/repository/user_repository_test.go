package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental-platform/internal/model"
)

var userCols = []string{"id", "full_name", "email", "password", "role",
	"phone_country_code", "phone_number", "address", "profile_picture_url",
	"driving_card_url", "national_card_url", "is_company",
	"created_at", "updated_at"}

func userRow(id int64, isCompany any) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userCols).AddRow(
		id, "Ada", "ada@example.com", "pw", "client",
		"+33", "600000000", "1 Main St", "", "", "", isCompany, now, now)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepo(db)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'ada@example.com' for key 'users.email'"))

	_, err = repo.Create(context.Background(), &model.User{Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepo(db)

	mock.ExpectQuery(`FROM users WHERE email = \?`).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err = repo.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserNullIsCompanyCollapsesToFalse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepo(db)

	mock.ExpectQuery(`FROM users WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(userRow(1, nil))

	u, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, u.IsCompany)
	assert.NoError(t, mock.ExpectationsWereMet())
}
