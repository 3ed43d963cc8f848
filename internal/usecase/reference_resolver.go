package usecase

import (
	"context"
	"errors"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"
)

// ReferenceResolver validates client, user and vehicle ids against their
// registries. Subtypes are looked up in a fixed order and the first hit wins:
// person before company, car before motorcycle.
type ReferenceResolver struct {
	clients  interfaces.IClientRegistry
	users    interfaces.IUserRegistry
	vehicles interfaces.IVehicleRegistry
}

func NewReferenceResolver(
	clients interfaces.IClientRegistry,
	users interfaces.IUserRegistry,
	vehicles interfaces.IVehicleRegistry,
) *ReferenceResolver {
	return &ReferenceResolver{clients: clients, users: users, vehicles: vehicles}
}

func (r *ReferenceResolver) ResolveClient(ctx context.Context, clientID *int64) (entities.ResolvedClient, error) {
	if clientID == nil {
		return entities.ResolvedClient{}, reject(ErrMissingReference, "client id must be provided")
	}
	id := *clientID

	person, err := r.clients.GetPersonByID(ctx, id)
	if err == nil {
		if person.ID == 0 {
			person.ID = id
		}
		return entities.ResolvedPerson(person), nil
	}
	if !errors.Is(err, interfaces.ErrRegistryNotFound) {
		return entities.ResolvedClient{}, err
	}

	company, err := r.clients.GetCompanyByID(ctx, id)
	if err == nil {
		if company.ID == 0 {
			company.ID = id
		}
		return entities.ResolvedCompany(company), nil
	}
	if errors.Is(err, interfaces.ErrRegistryNotFound) {
		return entities.ResolvedClient{}, reject(ErrClientNotFound, "client not found with id: %d", id)
	}
	return entities.ResolvedClient{}, err
}

func (r *ReferenceResolver) ResolveUser(ctx context.Context, userID *int64) (entities.User, error) {
	if userID == nil {
		return entities.User{}, reject(ErrMissingReference, "user id must be provided")
	}
	user, err := r.users.GetUserByID(ctx, *userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrRegistryNotFound) {
			return entities.User{}, reject(ErrUserNotFound, "user not found with id: %d", *userID)
		}
		return entities.User{}, err
	}
	if user.ID == 0 {
		user.ID = *userID
	}
	return user, nil
}

func (r *ReferenceResolver) ResolveVehicle(ctx context.Context, vehicleID *int64) (entities.ResolvedVehicle, error) {
	if vehicleID == nil {
		return entities.ResolvedVehicle{}, reject(ErrMissingReference, "vehicle id must be provided")
	}
	id := *vehicleID

	car, err := r.vehicles.GetCarByID(ctx, id)
	if err == nil {
		if car.ID == 0 {
			car.ID = id
		}
		return entities.ResolvedCar(car), nil
	}
	if !errors.Is(err, interfaces.ErrRegistryNotFound) {
		return entities.ResolvedVehicle{}, err
	}

	motorcycle, err := r.vehicles.GetMotorcycleByID(ctx, id)
	if err == nil {
		if motorcycle.ID == 0 {
			motorcycle.ID = id
		}
		return entities.ResolvedMotorcycle(motorcycle), nil
	}
	if errors.Is(err, interfaces.ErrRegistryNotFound) {
		return entities.ResolvedVehicle{}, reject(ErrVehicleNotFound, "vehicle not found with id: %d", id)
	}
	return entities.ResolvedVehicle{}, err
}
