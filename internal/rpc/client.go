package rpc

import (
	"errors"
	"log"
	"net"
	netrpc "net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/iliyamo/car-rental-platform/internal/apperr"
	"github.com/iliyamo/car-rental-platform/internal/model"
)

// dialTimeout bounds only the connection attempt, not the calls made on
// an established handle.
const dialTimeout = 3 * time.Second

// Client is the remote call boundary: a process-wide handle to the
// backend service, dialed once at construction and re-dialed lazily when
// a call finds it unset.  A startup failure is logged, not fatal.  The
// handle is never proactively invalidated: a call failing mid-flight
// does not clear it, only an explicitly unset handle triggers a new
// lookup.  Concurrent reconnect attempts collapse into one dial through
// the singleflight group; the lookup is idempotent so this only avoids
// wasted dials, it is not needed for safety.
type Client struct {
	addr    string
	service string

	mu     sync.RWMutex
	handle *netrpc.Client

	dials singleflight.Group
}

// NewClient builds the boundary for the backend at host:port publishing
// under serviceName, and attempts the initial connection.
func NewClient(host, port, serviceName string) *Client {
	c := &Client{
		addr:    net.JoinHostPort(host, port),
		service: serviceName,
	}
	if err := c.connect(); err != nil {
		log.Printf("rpc: backend at %s not reachable at startup: %v (will retry on demand)", c.addr, err)
	}
	return c
}

// connect performs the lookup and stores the handle on success.
func (c *Client) connect() error {
	conn, err := net.DialTimeout("tcp", c.addr, dialTimeout)
	if err != nil {
		return err
	}
	handle := jsonrpc.NewClient(conn)
	c.mu.Lock()
	c.handle = handle
	c.mu.Unlock()
	log.Printf("rpc: connected to %s at %s", c.service, c.addr)
	return nil
}

// ensureConnected returns the current handle, dialing first if none is
// set.  When the backend stays unreachable the call fails with a
// Connection error naming the expected address.
func (c *Client) ensureConnected() (*netrpc.Client, error) {
	c.mu.RLock()
	h := c.handle
	c.mu.RUnlock()
	if h != nil {
		return h, nil
	}

	_, err, _ := c.dials.Do("connect", func() (any, error) {
		return nil, c.connect()
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Connection, err,
			"backend service %s is not available at %s", c.service, c.addr)
	}

	c.mu.RLock()
	h = c.handle
	c.mu.RUnlock()
	if h == nil {
		return nil, apperr.New(apperr.Connection,
			"backend service %s is not available at %s", c.service, c.addr)
	}
	return h, nil
}

// call invokes one remote operation synchronously.  Errors returned by
// the remote service arrive as strings and are re-typed through the
// taxonomy decoder; transport failures surface as Connection errors.
func (c *Client) call(method string, args, reply any) error {
	h, err := c.ensureConnected()
	if err != nil {
		return err
	}
	err = h.Call(c.service+"."+method, args, reply)
	if err == nil {
		return nil
	}
	var remote netrpc.ServerError
	if errors.As(err, &remote) {
		return apperr.Decode(string(remote))
	}
	return apperr.Wrap(apperr.Connection, err,
		"call %s.%s at %s", c.service, method, c.addr)
}

// ---- User operations ----

func (c *Client) RegisterUser(u model.User) (*model.User, error) {
	var reply model.User
	if err := c.call("RegisterUser", u, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) AuthenticateUser(email, password string) (*model.User, error) {
	var reply model.User
	if err := c.call("AuthenticateUser", Credentials{Email: email, Password: password}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) GetUserByID(id int64) (*model.User, error) {
	var reply model.User
	if err := c.call("GetUserById", id, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) UpdateUser(patch model.UserPatch) (*model.User, error) {
	var reply model.User
	if err := c.call("UpdateUser", patch, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) ChangePassword(userID int64, current, newPassword string) (bool, error) {
	var reply bool
	err := c.call("ChangePassword", PasswordChange{
		UserID: userID, CurrentPassword: current, NewPassword: newPassword,
	}, &reply)
	return reply, err
}

func (c *Client) GetAllUsers() ([]model.User, error) {
	var reply []model.User
	if err := c.call("GetAllUsers", Empty{}, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// ---- Car operations ----

func (c *Client) GetAllCars() ([]model.Car, error) {
	var reply []model.Car
	if err := c.call("GetAllCars", Empty{}, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (c *Client) GetCarByID(id int64) (*model.Car, error) {
	var reply model.Car
	if err := c.call("GetCarById", id, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) AddCar(car model.Car) (*model.Car, error) {
	var reply model.Car
	if err := c.call("AddCar", car, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) UpdateCar(car model.Car) (*model.Car, error) {
	var reply model.Car
	if err := c.call("UpdateCar", car, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) DeleteCar(id int64) (bool, error) {
	var reply bool
	err := c.call("DeleteCar", id, &reply)
	return reply, err
}

func (c *Client) SearchCars(brand, city, availability string) ([]model.Car, error) {
	var reply []model.Car
	err := c.call("SearchCars", CarSearchFilter{
		Brand: brand, City: city, Availability: availability,
	}, &reply)
	if err != nil {
		return nil, err
	}
	return reply, nil
}

func (c *Client) GetCarsByOwner(ownerID int64) ([]model.Car, error) {
	var reply []model.Car
	if err := c.call("GetCarsByOwner", ownerID, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// ---- Reservation operations ----

func (c *Client) CreateReservation(r model.Reservation) (*model.Reservation, error) {
	var reply model.Reservation
	if err := c.call("CreateReservation", r, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) GetReservationByID(id int64) (*model.Reservation, error) {
	var reply model.Reservation
	if err := c.call("GetReservationById", id, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) GetReservationsByUser(userID int64) ([]model.Reservation, error) {
	var reply []model.Reservation
	if err := c.call("GetReservationsByUser", userID, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (c *Client) GetReservationsByCar(carID int64) ([]model.Reservation, error) {
	var reply []model.Reservation
	if err := c.call("GetReservationsByCar", carID, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (c *Client) CancelReservation(id int64) (bool, error) {
	var reply bool
	err := c.call("CancelReservation", id, &reply)
	return reply, err
}

func (c *Client) UpdateReservation(r model.Reservation) (*model.Reservation, error) {
	var reply model.Reservation
	if err := c.call("UpdateReservation", r, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) GetAllReservations() ([]model.Reservation, error) {
	var reply []model.Reservation
	if err := c.call("GetAllReservations", Empty{}, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}
