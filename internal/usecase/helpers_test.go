package usecase

import (
	"context"
	"testing"

	"purchase_sale/internal/adapter/persistence/repository"
	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/infrastructure/lock"
	"purchase_sale/internal/usecase/interfaces"
	mock_interfaces "purchase_sale/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func notFound(what string) error {
	return &wrappedNotFound{what: what}
}

type wrappedNotFound struct{ what string }

func (e *wrappedNotFound) Error() string { return e.what + ": " + interfaces.ErrRegistryNotFound.Error() }

func (e *wrappedNotFound) Unwrap() error { return interfaces.ErrRegistryNotFound }

type engineFixture struct {
	clients  *mock_interfaces.MockIClientRegistry
	users    *mock_interfaces.MockIUserRegistry
	vehicles *mock_interfaces.MockIVehicleRegistry
	repo     *repository.ContractMemoryRepository
	uc       *ContractUseCase
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &engineFixture{
		clients:  mock_interfaces.NewMockIClientRegistry(ctrl),
		users:    mock_interfaces.NewMockIUserRegistry(ctrl),
		vehicles: mock_interfaces.NewMockIVehicleRegistry(ctrl),
		repo:     repository.NewContractMemoryRepository(lock.NewLocalVehicleLocker()),
	}
	resolver := NewReferenceResolver(f.clients, f.users, f.vehicles)
	f.uc = NewContractUseCase(f.repo, resolver, NewVehicleProvisioner(f.vehicles))
	return f
}

// knownReferences makes client 1 a person, user 2 a staff member and the
// given vehicle ids cars.
func (f *engineFixture) knownReferences(vehicleIDs ...int64) {
	f.clients.EXPECT().GetPersonByID(gomock.Any(), int64(1)).
		Return(entities.Person{ID: 1, FirstName: "Ana", LastName: "Ruiz"}, nil).AnyTimes()
	f.users.EXPECT().GetUserByID(gomock.Any(), int64(2)).
		Return(entities.User{ID: 2, Username: "seller"}, nil).AnyTimes()
	for _, id := range vehicleIDs {
		f.vehicles.EXPECT().GetCarByID(gomock.Any(), id).
			Return(entities.Car{VehicleAttributes: entities.VehicleAttributes{ID: id, Plate: "XYZ987"}}, nil).AnyTimes()
	}
}

// seed stores a contract directly, bypassing the engine rules.
func (f *engineFixture) seed(t *testing.T, c entities.Contract) entities.Contract {
	t.Helper()
	saved, err := f.repo.Save(context.Background(), c)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return saved
}

func purchaseInput(vehicleID int64, status entities.ContractStatus, price float64) ContractInput {
	return ContractInput{
		ClientID:           ptr(int64(1)),
		UserID:             ptr(int64(2)),
		VehicleID:          ptr(vehicleID),
		PurchasePrice:      ptr(price),
		ContractType:       ptr(entities.ContractTypePurchase),
		ContractStatus:     ptr(status),
		PaymentMethod:      entities.PaymentMethodBankTransfer,
		PaymentTerms:       "50% upfront, 50% on delivery",
		PaymentLimitations: "Transfers only from the client's account",
	}
}

func saleInput(vehicleID int64, status entities.ContractStatus, salePrice float64) ContractInput {
	in := purchaseInput(vehicleID, status, 0)
	in.PurchasePrice = nil
	in.ContractType = ptr(entities.ContractTypeSale)
	in.SalePrice = ptr(salePrice)
	return in
}

func storedContract(vehicleID int64, typ entities.ContractType, status entities.ContractStatus, purchasePrice float64) entities.Contract {
	return entities.Contract{
		ClientID:           1,
		UserID:             2,
		VehicleID:          vehicleID,
		PurchasePrice:      purchasePrice,
		ContractType:       typ,
		ContractStatus:     status,
		PaymentMethod:      entities.PaymentMethodCash,
		PaymentTerms:       "cash",
		PaymentLimitations: "none",
	}
}

func validCarData() *entities.VehicleProvisioningRequest {
	return &entities.VehicleProvisioningRequest{
		VehicleType:    ptr(entities.VehicleKindCar),
		Brand:          " Toyota ",
		Model:          "2019",
		Capacity:       ptr(5),
		Line:           "Corolla",
		Plate:          "abc123",
		MotorNumber:    "M-1",
		SerialNumber:   "S-1",
		ChassisNumber:  "C-1",
		Color:          "Gray",
		CityRegistered: "Bogota",
		Year:           ptr(2019),
		Mileage:        ptr(45000),
		Transmission:   "Automatic",
		BodyType:       "Sedan",
		FuelType:       "Gasoline",
		NumberOfDoors:  ptr(4),
	}
}
