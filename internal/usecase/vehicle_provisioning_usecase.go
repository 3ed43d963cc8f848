package usecase

import (
	"context"
	"errors"
	"strings"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"
)

const (
	minVehicleYear = 1950
	maxVehicleYear = 2050

	vehicleRegistryService = "vehicle-service"
)

// IVehicleProvisioner registers a vehicle described inline by a purchase.
type IVehicleProvisioner interface {
	RegisterForPurchase(ctx context.Context, data *entities.VehicleProvisioningRequest, fallbackPurchasePrice *float64) (int64, error)
}

type VehicleProvisioner struct {
	vehicles interfaces.IVehicleRegistry
}

var _ IVehicleProvisioner = (*VehicleProvisioner)(nil)

func NewVehicleProvisioner(vehicles interfaces.IVehicleRegistry) *VehicleProvisioner {
	return &VehicleProvisioner{vehicles: vehicles}
}

// RegisterForPurchase validates data and creates the car or motorcycle it
// describes, returning the id assigned by the vehicle registry. Nothing is
// sent unless every field is valid.
func (p *VehicleProvisioner) RegisterForPurchase(
	ctx context.Context,
	data *entities.VehicleProvisioningRequest,
	fallbackPurchasePrice *float64,
) (int64, error) {
	if data == nil {
		return 0, reject(ErrInvalidVehicleData, "vehicle data must be provided to register a purchase")
	}
	if data.VehicleType == nil || !data.VehicleType.IsValid() {
		return 0, reject(ErrInvalidVehicleData, "vehicle type must be CAR or MOTORCYCLE")
	}

	switch *data.VehicleType {
	case entities.VehicleKindCar:
		car, err := buildCar(data, fallbackPurchasePrice)
		if err != nil {
			return 0, err
		}
		created, err := p.vehicles.CreateCar(ctx, car)
		if err != nil {
			return 0, err
		}
		return assignedVehicleID("create car", created.ID)
	default:
		motorcycle, err := buildMotorcycle(data, fallbackPurchasePrice)
		if err != nil {
			return 0, err
		}
		created, err := p.vehicles.CreateMotorcycle(ctx, motorcycle)
		if err != nil {
			return 0, err
		}
		return assignedVehicleID("create motorcycle", created.ID)
	}
}

// assignedVehicleID rejects a create the registry acknowledged without an id.
func assignedVehicleID(operation string, id int64) (int64, error) {
	if id <= 0 {
		return 0, &interfaces.UpstreamError{
			Service:   vehicleRegistryService,
			Operation: operation,
			Err:       errors.New("registry returned no vehicle id"),
		}
	}
	return id, nil
}

func buildCar(data *entities.VehicleProvisioningRequest, fallback *float64) (entities.Car, error) {
	attrs, err := buildVehicleAttributes(data, fallback)
	if err != nil {
		return entities.Car{}, err
	}
	car := entities.Car{VehicleAttributes: attrs}
	if car.BodyType, err = requireText(data.BodyType, "car body type is required"); err != nil {
		return entities.Car{}, err
	}
	if car.FuelType, err = requireText(data.FuelType, "car fuel type is required"); err != nil {
		return entities.Car{}, err
	}
	if car.NumberOfDoors, err = requirePositive(data.NumberOfDoors, "car number of doors is required"); err != nil {
		return entities.Car{}, err
	}
	return car, nil
}

func buildMotorcycle(data *entities.VehicleProvisioningRequest, fallback *float64) (entities.Motorcycle, error) {
	attrs, err := buildVehicleAttributes(data, fallback)
	if err != nil {
		return entities.Motorcycle{}, err
	}
	motorcycle := entities.Motorcycle{VehicleAttributes: attrs}
	if motorcycle.MotorcycleType, err = requireText(data.MotorcycleType, "motorcycle type is required"); err != nil {
		return entities.Motorcycle{}, err
	}
	return motorcycle, nil
}

func buildVehicleAttributes(data *entities.VehicleProvisioningRequest, fallback *float64) (entities.VehicleAttributes, error) {
	var (
		attrs entities.VehicleAttributes
		err   error
	)
	texts := []struct {
		dst   *string
		value string
		msg   string
	}{
		{&attrs.Brand, data.Brand, "vehicle brand is required"},
		{&attrs.Model, data.Model, "vehicle model is required"},
		{&attrs.Line, data.Line, "vehicle line is required"},
		{&attrs.Plate, data.Plate, "vehicle plate is required"},
		{&attrs.MotorNumber, data.MotorNumber, "vehicle motor number is required"},
		{&attrs.SerialNumber, data.SerialNumber, "vehicle serial number is required"},
		{&attrs.ChassisNumber, data.ChassisNumber, "vehicle chassis number is required"},
		{&attrs.Color, data.Color, "vehicle color is required"},
		{&attrs.CityRegistered, data.CityRegistered, "vehicle registration city is required"},
		{&attrs.Transmission, data.Transmission, "vehicle transmission is required"},
	}
	for _, f := range texts {
		if *f.dst, err = requireText(f.value, f.msg); err != nil {
			return entities.VehicleAttributes{}, err
		}
	}
	attrs.Plate = strings.ToUpper(attrs.Plate)

	if attrs.Capacity, err = requirePositive(data.Capacity, "vehicle passenger capacity is required"); err != nil {
		return entities.VehicleAttributes{}, err
	}
	if data.Mileage == nil || *data.Mileage < 0 {
		return entities.VehicleAttributes{}, reject(ErrInvalidVehicleData, "vehicle mileage is required")
	}
	attrs.Mileage = *data.Mileage
	if attrs.Year, err = requireYear(data.Year); err != nil {
		return entities.VehicleAttributes{}, err
	}
	if attrs.PurchasePrice, err = vehiclePurchasePrice(data.PurchasePrice, fallback); err != nil {
		return entities.VehicleAttributes{}, err
	}
	if attrs.SalePrice, err = vehicleSalePrice(data.SalePrice); err != nil {
		return entities.VehicleAttributes{}, err
	}
	attrs.PhotoURL = trimToNil(data.PhotoURL)
	attrs.Status = entities.VehicleStatusAvailable
	return attrs, nil
}

// vehiclePurchasePrice prefers the vehicle's own price and falls back to the
// contract's; whichever is used must be positive.
func vehiclePurchasePrice(own, fallback *float64) (float64, error) {
	if own != nil && *own > 0 {
		return *own, nil
	}
	if fallback != nil && *fallback > 0 {
		return *fallback, nil
	}
	return 0, reject(ErrInvalidVehicleData, "vehicle purchase price must be greater than zero")
}

func vehicleSalePrice(v *float64) (float64, error) {
	if v == nil {
		return 0, nil
	}
	if *v < 0 {
		return 0, reject(ErrInvalidVehicleData, "vehicle sale price cannot be negative")
	}
	return *v, nil
}

func requireText(v, msg string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", reject(ErrInvalidVehicleData, "%s", msg)
	}
	return v, nil
}

func requirePositive(v *int, msg string) (int, error) {
	if v == nil || *v <= 0 {
		return 0, reject(ErrInvalidVehicleData, "%s", msg)
	}
	return *v, nil
}

func requireYear(v *int) (int, error) {
	year, err := requirePositive(v, "vehicle year is required")
	if err != nil {
		return 0, err
	}
	if year < minVehicleYear || year > maxVehicleYear {
		return 0, reject(ErrInvalidVehicleData, "vehicle year must be between %d and %d", minVehicleYear, maxVehicleYear)
	}
	return year, nil
}

func trimToNil(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}
