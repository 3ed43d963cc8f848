package registry

import (
	"context"
	"fmt"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"
)

// VehicleRegistry reads and registers cars and motorcycles in the vehicle
// inventory service.
type VehicleRegistry struct {
	http *httpClient
}

var _ interfaces.IVehicleRegistry = (*VehicleRegistry)(nil)

func NewVehicleRegistry(opts Options) *VehicleRegistry {
	return &VehicleRegistry{http: newHTTPClient("vehicle-service", opts)}
}

func (r *VehicleRegistry) GetCarByID(ctx context.Context, id int64) (entities.Car, error) {
	var car entities.Car
	if err := r.http.get(ctx, "get car", fmt.Sprintf("/v1/cars/%d", id), &car); err != nil {
		return entities.Car{}, err
	}
	return car, nil
}

func (r *VehicleRegistry) GetMotorcycleByID(ctx context.Context, id int64) (entities.Motorcycle, error) {
	var motorcycle entities.Motorcycle
	if err := r.http.get(ctx, "get motorcycle", fmt.Sprintf("/v1/motorcycles/%d", id), &motorcycle); err != nil {
		return entities.Motorcycle{}, err
	}
	return motorcycle, nil
}

func (r *VehicleRegistry) CreateCar(ctx context.Context, car entities.Car) (entities.Car, error) {
	var created entities.Car
	if err := r.http.post(ctx, "create car", "/v1/cars", car, &created); err != nil {
		return entities.Car{}, err
	}
	return created, nil
}

func (r *VehicleRegistry) CreateMotorcycle(ctx context.Context, motorcycle entities.Motorcycle) (entities.Motorcycle, error) {
	var created entities.Motorcycle
	if err := r.http.post(ctx, "create motorcycle", "/v1/motorcycles", motorcycle, &created); err != nil {
		return entities.Motorcycle{}, err
	}
	return created, nil
}
