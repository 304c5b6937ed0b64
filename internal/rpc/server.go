package rpc

import (
	"context"
	"fmt"
	"log"
	"net"
	netrpc "net/rpc"
	"net/rpc/jsonrpc"

	"github.com/iliyamo/car-rental-platform/internal/model"
	"github.com/iliyamo/car-rental-platform/internal/service"
)

// Handler adapts RentalService to the net/rpc method shape
// (args, *reply) error.  Remote calls carry no deadline by design: every
// operation is synchronous and callers wanting bounded latency impose an
// external deadline around the whole call, so handlers run on a
// background context.
type Handler struct {
	svc *service.RentalService
}

// NewHandler wraps a RentalService for registration.
func NewHandler(svc *service.RentalService) *Handler { return &Handler{svc: svc} }

// Serve binds the handler under serviceName, listens on addr and serves
// every accepted connection on its own goroutine until the listener is
// closed.  It blocks.
func Serve(addr, serviceName string, h *Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	log.Printf("rpc: %s bound at %s", serviceName, addr)
	return ServeListener(ln, serviceName, h)
}

// ServeListener serves an already bound listener.  It blocks until the
// listener is closed.
func ServeListener(ln net.Listener, serviceName string, h *Handler) error {
	srv := netrpc.NewServer()
	if err := srv.RegisterName(serviceName, h); err != nil {
		return fmt.Errorf("register %s: %w", serviceName, err)
	}
	for {
		conn, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("accept: %w", err)
		}
		go srv.ServeCodec(jsonrpc.NewServerCodec(conn))
	}
}

// ---- User operations ----

func (h *Handler) RegisterUser(u model.User, reply *model.User) error {
	created, err := h.svc.RegisterUser(context.Background(), u)
	if err != nil {
		return err
	}
	*reply = *created
	return nil
}

func (h *Handler) AuthenticateUser(creds Credentials, reply *model.User) error {
	u, err := h.svc.AuthenticateUser(context.Background(), creds.Email, creds.Password)
	if err != nil {
		return err
	}
	*reply = *u
	return nil
}

func (h *Handler) GetUserById(id int64, reply *model.User) error {
	u, err := h.svc.GetUserByID(context.Background(), id)
	if err != nil {
		return err
	}
	*reply = *u
	return nil
}

func (h *Handler) UpdateUser(patch model.UserPatch, reply *model.User) error {
	u, err := h.svc.UpdateUser(context.Background(), patch)
	if err != nil {
		return err
	}
	*reply = *u
	return nil
}

func (h *Handler) ChangePassword(change PasswordChange, reply *bool) error {
	ok, err := h.svc.ChangePassword(context.Background(),
		change.UserID, change.CurrentPassword, change.NewPassword)
	if err != nil {
		return err
	}
	*reply = ok
	return nil
}

func (h *Handler) GetAllUsers(_ Empty, reply *[]model.User) error {
	users, err := h.svc.GetAllUsers(context.Background())
	if err != nil {
		return err
	}
	*reply = users
	return nil
}

// ---- Car operations ----

func (h *Handler) GetAllCars(_ Empty, reply *[]model.Car) error {
	cars, err := h.svc.GetAllCars(context.Background())
	if err != nil {
		return err
	}
	*reply = cars
	return nil
}

func (h *Handler) GetCarById(id int64, reply *model.Car) error {
	c, err := h.svc.GetCarByID(context.Background(), id)
	if err != nil {
		return err
	}
	*reply = *c
	return nil
}

func (h *Handler) AddCar(c model.Car, reply *model.Car) error {
	created, err := h.svc.AddCar(context.Background(), c)
	if err != nil {
		return err
	}
	*reply = *created
	return nil
}

func (h *Handler) UpdateCar(c model.Car, reply *model.Car) error {
	updated, err := h.svc.UpdateCar(context.Background(), c)
	if err != nil {
		return err
	}
	*reply = *updated
	return nil
}

func (h *Handler) DeleteCar(id int64, reply *bool) error {
	deleted, err := h.svc.DeleteCar(context.Background(), id)
	if err != nil {
		return err
	}
	*reply = deleted
	return nil
}

func (h *Handler) SearchCars(filter CarSearchFilter, reply *[]model.Car) error {
	cars, err := h.svc.SearchCars(context.Background(),
		filter.Brand, filter.City, filter.Availability)
	if err != nil {
		return err
	}
	*reply = cars
	return nil
}

func (h *Handler) GetCarsByOwner(ownerID int64, reply *[]model.Car) error {
	cars, err := h.svc.GetCarsByOwner(context.Background(), ownerID)
	if err != nil {
		return err
	}
	*reply = cars
	return nil
}

// ---- Reservation operations ----

func (h *Handler) CreateReservation(r model.Reservation, reply *model.Reservation) error {
	created, err := h.svc.CreateReservation(context.Background(), r)
	if err != nil {
		return err
	}
	*reply = *created
	return nil
}

func (h *Handler) GetReservationById(id int64, reply *model.Reservation) error {
	r, err := h.svc.GetReservationByID(context.Background(), id)
	if err != nil {
		return err
	}
	*reply = *r
	return nil
}

func (h *Handler) GetReservationsByUser(userID int64, reply *[]model.Reservation) error {
	list, err := h.svc.GetReservationsByUser(context.Background(), userID)
	if err != nil {
		return err
	}
	*reply = list
	return nil
}

func (h *Handler) GetReservationsByCar(carID int64, reply *[]model.Reservation) error {
	list, err := h.svc.GetReservationsByCar(context.Background(), carID)
	if err != nil {
		return err
	}
	*reply = list
	return nil
}

func (h *Handler) CancelReservation(id int64, reply *bool) error {
	cancelled, err := h.svc.CancelReservation(context.Background(), id)
	if err != nil {
		return err
	}
	*reply = cancelled
	return nil
}

func (h *Handler) UpdateReservation(r model.Reservation, reply *model.Reservation) error {
	updated, err := h.svc.UpdateReservation(context.Background(), r)
	if err != nil {
		return err
	}
	*reply = *updated
	return nil
}

func (h *Handler) GetAllReservations(_ Empty, reply *[]model.Reservation) error {
	list, err := h.svc.GetAllReservations(context.Background())
	if err != nil {
		return err
	}
	*reply = list
	return nil
}
