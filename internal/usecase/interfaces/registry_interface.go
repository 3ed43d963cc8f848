package interfaces

import (
	"context"
	"errors"
	"fmt"
	"purchase_sale/internal/domain/entities"
)

// ErrRegistryNotFound is returned (wrapped) by registry clients when the
// remote system answers 404 for the requested record.
var ErrRegistryNotFound = errors.New("registry record not found")

// UpstreamError reports a registry failure other than "not found": a non-404
// status, a transport error or an undecodable body.
type UpstreamError struct {
	Service    string
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: upstream status %d: %s", e.Service, e.Operation, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: %v", e.Service, e.Operation, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IClientRegistry looks up clients, which are either persons or companies.
type IClientRegistry interface {
	GetPersonByID(ctx context.Context, id int64) (entities.Person, error)
	GetCompanyByID(ctx context.Context, id int64) (entities.Company, error)
}

// IUserRegistry looks up staff members.
type IUserRegistry interface {
	GetUserByID(ctx context.Context, id int64) (entities.User, error)
}

// IVehicleRegistry looks up and registers cars and motorcycles.
type IVehicleRegistry interface {
	GetCarByID(ctx context.Context, id int64) (entities.Car, error)
	GetMotorcycleByID(ctx context.Context, id int64) (entities.Motorcycle, error)
	CreateCar(ctx context.Context, car entities.Car) (entities.Car, error)
	CreateMotorcycle(ctx context.Context, motorcycle entities.Motorcycle) (entities.Motorcycle, error)
}
