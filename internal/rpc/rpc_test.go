package rpc

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental-platform/internal/apperr"
	"github.com/iliyamo/car-rental-platform/internal/model"
	"github.com/iliyamo/car-rental-platform/internal/repository"
	"github.com/iliyamo/car-rental-platform/internal/service"
)

// The stubs embed the store interfaces so only the methods a test
// actually exercises need implementations.

type stubUsers struct{ service.UserStore }

func (stubUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if email == "ada@example.com" {
		return &model.User{ID: 1, Email: email, Password: "pw"}, nil
	}
	return nil, repository.ErrNotFound
}

type stubCars struct{ service.CarStore }

func (stubCars) FindByID(_ context.Context, id int64) (*model.Car, error) {
	switch id {
	case 1:
		return &model.Car{ID: 1, Name: "Clio", Availability: model.AvailabilityAvailable}, nil
	case 2:
		return &model.Car{ID: 2, Name: "Golf", Availability: model.AvailabilityMaintenance}, nil
	default:
		return nil, repository.ErrNotFound
	}
}

type stubReservations struct{ service.ReservationStore }

func (stubReservations) HasConfirmedOverlap(context.Context, int64, model.Date, model.Date) (bool, error) {
	return false, nil
}

func (stubReservations) Create(_ context.Context, r *model.Reservation) (*model.Reservation, error) {
	created := *r
	created.ID = 10
	return &created, nil
}

func newTestService() *service.RentalService {
	return service.New(stubUsers{}, stubCars{}, stubReservations{})
}

// startServer serves the test service on an ephemeral port and returns
// host and port.
func startServer(t *testing.T, serviceName string) (string, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	go ServeListener(ln, serviceName, NewHandler(newTestService()))
	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	return host, port
}

func TestRoundTrip(t *testing.T) {
	host, port := startServer(t, "CarRentalService")
	client := NewClient(host, port, "CarRentalService")

	car, err := client.GetCarByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Clio", car.Name)

	u, err := client.AuthenticateUser("ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	created, err := client.CreateReservation(model.Reservation{
		UserID:    1,
		CarID:     1,
		StartDate: model.NewDate(2026, time.September, 10),
		EndDate:   model.NewDate(2026, time.September, 15),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, 5, created.Days)
	assert.Equal(t, model.StatusPending, created.Status)
}

func TestErrorKindsSurviveTheWire(t *testing.T) {
	host, port := startServer(t, "CarRentalService")
	client := NewClient(host, port, "CarRentalService")

	_, err := client.GetCarByID(99)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	_, err = client.CreateReservation(model.Reservation{UserID: 1, CarID: 2})
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	_, err = client.CreateReservation(model.Reservation{CarID: 1})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = client.AuthenticateUser("ada@example.com", "wrong")
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestClientRecoversWithoutRestart(t *testing.T) {
	// Reserve a port, then release it so the first call finds nothing
	// listening.
	probe, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(probe.Addr().String())
	require.NoError(t, err)
	require.NoError(t, probe.Close())

	client := NewClient(host, portStr, "CarRentalService")

	_, err = client.GetCarByID(1)
	assert.Equal(t, apperr.Connection, apperr.KindOf(err))

	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	ln, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, port))
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	go ServeListener(ln, "CarRentalService", NewHandler(newTestService()))

	car, err := client.GetCarByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Clio", car.Name)
}
