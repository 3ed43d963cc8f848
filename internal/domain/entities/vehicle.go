package entities

// VehicleKind tags car and motorcycle records. It is also the
// discriminator of a provisioning request.
type VehicleKind string

const (
	VehicleKindCar        VehicleKind = "CAR"
	VehicleKindMotorcycle VehicleKind = "MOTORCYCLE"
)

func (k VehicleKind) IsValid() bool {
	return k == VehicleKindCar || k == VehicleKindMotorcycle
}

// VehicleStatusAvailable marks a vehicle that is not attached to a contract yet.
const VehicleStatusAvailable = "AVAILABLE"

// VehicleAttributes are shared by cars and motorcycles in the vehicle registry.
type VehicleAttributes struct {
	ID             int64   `json:"id,omitempty"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	Capacity       int     `json:"capacity"`
	Line           string  `json:"line"`
	Plate          string  `json:"plate"`
	MotorNumber    string  `json:"motorNumber"`
	SerialNumber   string  `json:"serialNumber"`
	ChassisNumber  string  `json:"chassisNumber"`
	Color          string  `json:"color"`
	CityRegistered string  `json:"cityRegistered"`
	Year           int     `json:"year"`
	Mileage        int     `json:"mileage"`
	Transmission   string  `json:"transmission"`
	PurchasePrice  float64 `json:"purchasePrice"`
	SalePrice      float64 `json:"salePrice"`
	Status         string  `json:"status"`
	PhotoURL       *string `json:"photoUrl"`
}

type Car struct {
	VehicleAttributes
	BodyType      string `json:"bodyType"`
	FuelType      string `json:"fuelType"`
	NumberOfDoors int    `json:"numberOfDoors"`
}

type Motorcycle struct {
	VehicleAttributes
	MotorcycleType string `json:"motorcycleType"`
}

// ResolvedVehicle is the outcome of resolving a vehicle id: exactly one of
// Car or Motorcycle is set, as indicated by Kind.
type ResolvedVehicle struct {
	Kind       VehicleKind
	Car        *Car
	Motorcycle *Motorcycle
}

func ResolvedCar(c Car) ResolvedVehicle {
	return ResolvedVehicle{Kind: VehicleKindCar, Car: &c}
}

func ResolvedMotorcycle(m Motorcycle) ResolvedVehicle {
	return ResolvedVehicle{Kind: VehicleKindMotorcycle, Motorcycle: &m}
}

// Attributes returns the shared attributes of whichever record is set.
func (r ResolvedVehicle) Attributes() VehicleAttributes {
	switch r.Kind {
	case VehicleKindCar:
		if r.Car != nil {
			return r.Car.VehicleAttributes
		}
	case VehicleKindMotorcycle:
		if r.Motorcycle != nil {
			return r.Motorcycle.VehicleAttributes
		}
	}
	return VehicleAttributes{}
}

func (r ResolvedVehicle) ID() int64 {
	return r.Attributes().ID
}

// VehicleProvisioningRequest describes a vehicle to register when a purchase
// does not reference an existing one. Every field is optional on the wire;
// the provisioning use case decides what is mandatory.
type VehicleProvisioningRequest struct {
	VehicleType    *VehicleKind `json:"vehicleType"`
	Brand          string       `json:"brand"`
	Model          string       `json:"model"`
	Capacity       *int         `json:"capacity"`
	Line           string       `json:"line"`
	Plate          string       `json:"plate"`
	MotorNumber    string       `json:"motorNumber"`
	SerialNumber   string       `json:"serialNumber"`
	ChassisNumber  string       `json:"chassisNumber"`
	Color          string       `json:"color"`
	CityRegistered string       `json:"cityRegistered"`
	Year           *int         `json:"year"`
	Mileage        *int         `json:"mileage"`
	Transmission   string       `json:"transmission"`
	PurchasePrice  *float64     `json:"purchasePrice"`
	SalePrice      *float64     `json:"salePrice"`
	PhotoURL       *string      `json:"photoUrl"`
	BodyType       string       `json:"bodyType"`
	FuelType       string       `json:"fuelType"`
	NumberOfDoors  *int         `json:"numberOfDoors"`
	MotorcycleType string       `json:"motorcycleType"`
}
