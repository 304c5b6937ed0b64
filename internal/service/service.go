// Package service implements the business operations exposed over the
// remote boundary: user management, the car catalogue, the reservation
// admission engine and the booking lifecycle manager.  It talks to the
// persistence gateway through narrow store interfaces and reports
// failures through the apperr taxonomy so callers can tell a business
// rejection from a store failure.
package service

import (
	"context"
	"errors"
	"sync"

	"github.com/iliyamo/car-rental-platform/internal/apperr"
	"github.com/iliyamo/car-rental-platform/internal/model"
	"github.com/iliyamo/car-rental-platform/internal/repository"
)

// UserStore is the persistence gateway surface for users.
type UserStore interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u *model.User) (*model.User, error)
}

// CarStore is the persistence gateway surface for cars.
type CarStore interface {
	Create(ctx context.Context, c *model.Car) (*model.Car, error)
	FindByID(ctx context.Context, id int64) (*model.Car, error)
	FindAll(ctx context.Context) ([]model.Car, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]model.Car, error)
	Search(ctx context.Context, brand, city, availability string) ([]model.Car, error)
	Update(ctx context.Context, c *model.Car) (*model.Car, error)
	SetAvailability(ctx context.Context, id int64, availability string) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// ReservationStore is the persistence gateway surface for reservations.
type ReservationStore interface {
	Create(ctx context.Context, r *model.Reservation) (*model.Reservation, error)
	FindByID(ctx context.Context, id int64) (*model.Reservation, error)
	FindAll(ctx context.Context) ([]model.Reservation, error)
	FindByUser(ctx context.Context, userID int64) ([]model.Reservation, error)
	FindByCar(ctx context.Context, carID int64) ([]model.Reservation, error)
	HasConfirmedOverlap(ctx context.Context, carID int64, start, end model.Date) (bool, error)
	HasActiveOverlap(ctx context.Context, carID int64, start, end model.Date) (bool, error)
	Update(ctx context.Context, r *model.Reservation) (*model.Reservation, error)
	Cancel(ctx context.Context, id int64) (bool, error)
}

// EventPublisher receives reservation lifecycle notifications.  Publish
// failures are logged by the implementation and never fail the booking.
type EventPublisher interface {
	ReservationCreated(ctx context.Context, r *model.Reservation)
	ReservationCancelled(ctx context.Context, r *model.Reservation)
}

// RentalService holds the full business surface of the backend process.
type RentalService struct {
	users        UserStore
	cars         CarStore
	reservations ReservationStore
	events       EventPublisher
	cancelPolicy CancelPolicy

	// carLocks serializes the overlap-check-then-insert sequence per car
	// id so two concurrent submissions cannot both pass the check.
	carLocks struct {
		mu sync.Mutex
		m  map[int64]*sync.Mutex
	}
}

// Option customises a RentalService.
type Option func(*RentalService)

// WithCancelPolicy selects how cancellation touches the car's advertised
// availability.  The default is ReleaseAlways.
func WithCancelPolicy(p CancelPolicy) Option {
	return func(s *RentalService) { s.cancelPolicy = p }
}

// WithEvents attaches a reservation event publisher.
func WithEvents(p EventPublisher) Option {
	return func(s *RentalService) { s.events = p }
}

// New constructs a RentalService over the given stores.
func New(users UserStore, cars CarStore, reservations ReservationStore, opts ...Option) *RentalService {
	s := &RentalService{
		users:        users,
		cars:         cars,
		reservations: reservations,
		cancelPolicy: ReleaseAlways,
	}
	s.carLocks.m = make(map[int64]*sync.Mutex)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lockCar returns the mutex serializing bookings for one car.
func (s *RentalService) lockCar(carID int64) *sync.Mutex {
	s.carLocks.mu.Lock()
	defer s.carLocks.mu.Unlock()
	mu, ok := s.carLocks.m[carID]
	if !ok {
		mu = &sync.Mutex{}
		s.carLocks.m[carID] = mu
	}
	return mu
}

// storeErr classifies a persistence gateway failure: absent rows become
// NotFound, everything else is a Persistence failure carrying the
// operation and key for diagnostics.
func storeErr(err error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.Wrap(apperr.NotFound, nil, format, args...)
	}
	return apperr.Wrap(apperr.Persistence, err, format, args...)
}

// ---- User operations ----

// RegisterUser creates a new account.  Duplicate emails are rejected with
// a Conflict so the caller can distinguish them from store failures.
func (s *RentalService) RegisterUser(ctx context.Context, u model.User) (*model.User, error) {
	if u.Email == "" {
		return nil, apperr.New(apperr.Validation, "email is required")
	}
	if _, err := s.users.FindByEmail(ctx, u.Email); err == nil {
		return nil, apperr.New(apperr.Conflict, "user with email %s already exists", u.Email)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Wrap(apperr.Persistence, err, "register user email=%s", u.Email)
	}
	created, err := s.users.Create(ctx, &u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.New(apperr.Conflict, "user with email %s already exists", u.Email)
		}
		return nil, apperr.Wrap(apperr.Persistence, err, "register user email=%s", u.Email)
	}
	return created, nil
}

// AuthenticateUser verifies the credential pair by plain equality against
// the stored password and returns the matching user.
func (s *RentalService) AuthenticateUser(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeErr(err, "user with email %s", email)
	}
	if u.Password != password {
		return nil, apperr.New(apperr.Conflict, "invalid password")
	}
	return u, nil
}

// GetUserByID fetches one user.
func (s *RentalService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	if id == 0 {
		return nil, apperr.New(apperr.Validation, "user id is required")
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "user id=%d", id)
	}
	return u, nil
}

// GetAllUsers lists every user.
func (s *RentalService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list users")
	}
	return users, nil
}

// ---- Car operations ----

// AddCar registers a car for an owner.  The daily price is normalized to
// two decimals before it is stored.
func (s *RentalService) AddCar(ctx context.Context, c model.Car) (*model.Car, error) {
	if c.OwnerID == 0 {
		return nil, apperr.New(apperr.Validation, "owner id is required")
	}
	c.PricePerDay = model.NormalizePrice(c.PricePerDay)
	created, err := s.cars.Create(ctx, &c)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "add car owner_id=%d", c.OwnerID)
	}
	return created, nil
}

// GetCarByID fetches one car.
func (s *RentalService) GetCarByID(ctx context.Context, id int64) (*model.Car, error) {
	if id == 0 {
		return nil, apperr.New(apperr.Validation, "car id is required")
	}
	c, err := s.cars.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "car id=%d", id)
	}
	return c, nil
}

// GetAllCars lists the whole catalogue.
func (s *RentalService) GetAllCars(ctx context.Context) ([]model.Car, error) {
	cars, err := s.cars.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list cars")
	}
	return cars, nil
}

// GetCarsByOwner lists one owner's cars.
func (s *RentalService) GetCarsByOwner(ctx context.Context, ownerID int64) ([]model.Car, error) {
	if ownerID == 0 {
		return nil, apperr.New(apperr.Validation, "owner id is required")
	}
	cars, err := s.cars.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list cars owner_id=%d", ownerID)
	}
	return cars, nil
}

// SearchCars filters the catalogue by any subset of brand, city and
// availability.
func (s *RentalService) SearchCars(ctx context.Context, brand, city, availability string) ([]model.Car, error) {
	cars, err := s.cars.Search(ctx, brand, city, availability)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "search cars brand=%q city=%q availability=%q", brand, city, availability)
	}
	return cars, nil
}

// UpdateCar overwrites a car record, normalizing the price.
func (s *RentalService) UpdateCar(ctx context.Context, c model.Car) (*model.Car, error) {
	if c.ID == 0 {
		return nil, apperr.New(apperr.Validation, "car id is required for update")
	}
	c.PricePerDay = model.NormalizePrice(c.PricePerDay)
	updated, err := s.cars.Update(ctx, &c)
	if err != nil {
		return nil, storeErr(err, "car id=%d", c.ID)
	}
	return updated, nil
}

// DeleteCar hard-deletes a car and reports whether a row was removed.
func (s *RentalService) DeleteCar(ctx context.Context, id int64) (bool, error) {
	if id == 0 {
		return false, apperr.New(apperr.Validation, "car id is required")
	}
	deleted, err := s.cars.Delete(ctx, id)
	if err != nil {
		return false, apperr.Wrap(apperr.Persistence, err, "delete car id=%d", id)
	}
	return deleted, nil
}

// ---- Reservation reads ----

// GetReservationByID fetches one reservation with its display fields.
func (s *RentalService) GetReservationByID(ctx context.Context, id int64) (*model.Reservation, error) {
	if id == 0 {
		return nil, apperr.New(apperr.Validation, "reservation id is required")
	}
	r, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "reservation id=%d", id)
	}
	return r, nil
}

// GetReservationsByUser lists a user's reservations.
func (s *RentalService) GetReservationsByUser(ctx context.Context, userID int64) ([]model.Reservation, error) {
	if userID == 0 {
		return nil, apperr.New(apperr.Validation, "user id is required")
	}
	list, err := s.reservations.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list reservations user_id=%d", userID)
	}
	return list, nil
}

// GetReservationsByCar lists a car's reservations.
func (s *RentalService) GetReservationsByCar(ctx context.Context, carID int64) ([]model.Reservation, error) {
	if carID == 0 {
		return nil, apperr.New(apperr.Validation, "car id is required")
	}
	list, err := s.reservations.FindByCar(ctx, carID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list reservations car_id=%d", carID)
	}
	return list, nil
}

// GetAllReservations lists every reservation.
func (s *RentalService) GetAllReservations(ctx context.Context) ([]model.Reservation, error) {
	list, err := s.reservations.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list reservations")
	}
	return list, nil
}
