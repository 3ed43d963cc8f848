package usecase

import (
	"context"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"
)

// IContractUseCase exposes the contract lifecycle.
//
// Create and Update enforce the per-vehicle rules over the whole contract
// history of the vehicle:
//   - at most one PURCHASE in PENDING or ACTIVE
//   - a SALE in PENDING, ACTIVE or COMPLETED needs an ACTIVE or COMPLETED PURCHASE
//   - at most one SALE in PENDING, ACTIVE or COMPLETED
//   - a SALE takes its purchase price from the latest qualifying PURCHASE
//
// Missing contracts are reported through the boolean result, never as errors.

type IContractUseCase interface {
	Create(ctx context.Context, in ContractInput) (entities.Contract, error)
	Update(ctx context.Context, id int64, in ContractInput) (entities.Contract, bool, error)
	FindByID(ctx context.Context, id int64) (entities.Contract, bool, error)
	FindAll(ctx context.Context) ([]entities.Contract, error)
	FindAllPaged(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Contract], error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	FindByClientID(ctx context.Context, clientID int64) ([]entities.Contract, error)
	FindByUserID(ctx context.Context, userID int64) ([]entities.Contract, error)
	FindByVehicleID(ctx context.Context, vehicleID int64) ([]entities.Contract, error)
	Search(ctx context.Context, criteria entities.ContractFilterCriteria, page entities.PageRequest) (entities.Page[entities.Contract], error)
}

type ContractUseCase struct {
	repo        interfaces.IContractRepository
	resolver    *ReferenceResolver
	provisioner IVehicleProvisioner
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository, resolver *ReferenceResolver, provisioner IVehicleProvisioner) *ContractUseCase {
	return &ContractUseCase{repo: repo, resolver: resolver, provisioner: provisioner}
}

func (u *ContractUseCase) Create(ctx context.Context, in ContractInput) (entities.Contract, error) {
	n, err := normalize(in)
	if err != nil {
		return entities.Contract{}, err
	}
	if err := precheckPrices(n); err != nil {
		return entities.Contract{}, err
	}

	client, err := u.resolver.ResolveClient(ctx, n.ClientID)
	if err != nil {
		return entities.Contract{}, err
	}
	user, err := u.resolver.ResolveUser(ctx, n.UserID)
	if err != nil {
		return entities.Contract{}, err
	}
	vehicleID, err := u.vehicleForCreate(ctx, n)
	if err != nil {
		return entities.Contract{}, err
	}

	var saved entities.Contract
	err = u.repo.RunInVehicleScope(ctx, vehicleID, func(ctx context.Context) error {
		history, err := u.repo.FindByVehicleID(ctx, vehicleID)
		if err != nil {
			return err
		}
		prices, err := applyContractRules(n, history, vehicleID)
		if err != nil {
			return err
		}

		c := entities.Contract{ContractType: n.Type}
		assignFields(&c, n, prices, client.ID(), user.ID, vehicleID)
		if err := validatePurchasePrice(c.PurchasePrice); err != nil {
			return err
		}
		saved, err = u.repo.Save(ctx, c)
		return err
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return saved, nil
}

func (u *ContractUseCase) Update(ctx context.Context, id int64, in ContractInput) (entities.Contract, bool, error) {
	n, err := normalize(in)
	if err != nil {
		return entities.Contract{}, false, err
	}
	if err := precheckPrices(n); err != nil {
		return entities.Contract{}, false, err
	}

	client, err := u.resolver.ResolveClient(ctx, n.ClientID)
	if err != nil {
		return entities.Contract{}, false, err
	}
	user, err := u.resolver.ResolveUser(ctx, n.UserID)
	if err != nil {
		return entities.Contract{}, false, err
	}
	vehicle, err := u.resolver.ResolveVehicle(ctx, n.VehicleID)
	if err != nil {
		return entities.Contract{}, false, err
	}
	vehicleID := vehicle.ID()

	var (
		saved entities.Contract
		found bool
	)
	err = u.repo.RunInVehicleScope(ctx, vehicleID, func(ctx context.Context) error {
		history, err := u.repo.FindByVehicleID(ctx, vehicleID)
		if err != nil {
			return err
		}
		existing, err := u.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing.ID == 0 {
			return nil
		}
		found = true

		if existing.ContractType != n.Type {
			return reject(ErrContractTypeChange, "contract type cannot be changed once created")
		}
		prices, err := applyContractRules(n, excluding(history, existing.ID), vehicleID)
		if err != nil {
			return err
		}

		assignFields(&existing, n, prices, client.ID(), user.ID, vehicleID)
		if err := validatePurchasePrice(existing.PurchasePrice); err != nil {
			return err
		}
		saved, err = u.repo.Save(ctx, existing)
		return err
	})
	if err != nil {
		return entities.Contract{}, false, err
	}
	return saved, found, nil
}

func (u *ContractUseCase) FindByID(ctx context.Context, id int64) (entities.Contract, bool, error) {
	c, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Contract{}, false, err
	}
	return c, c.ID != 0, nil
}

func (u *ContractUseCase) FindAll(ctx context.Context) ([]entities.Contract, error) {
	return u.repo.FindAll(ctx)
}

func (u *ContractUseCase) FindAllPaged(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Contract], error) {
	return u.repo.FindAllPaged(ctx, page.Normalize())
}

func (u *ContractUseCase) DeleteByID(ctx context.Context, id int64) (bool, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing.ID == 0 {
		return false, nil
	}
	if err := u.repo.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (u *ContractUseCase) FindByClientID(ctx context.Context, clientID int64) ([]entities.Contract, error) {
	client, err := u.resolver.ResolveClient(ctx, &clientID)
	if err != nil {
		return nil, err
	}
	return u.repo.FindByClientID(ctx, client.ID())
}

func (u *ContractUseCase) FindByUserID(ctx context.Context, userID int64) ([]entities.Contract, error) {
	if _, err := u.resolver.ResolveUser(ctx, &userID); err != nil {
		return nil, err
	}
	return u.repo.FindByUserID(ctx, userID)
}

func (u *ContractUseCase) FindByVehicleID(ctx context.Context, vehicleID int64) ([]entities.Contract, error) {
	vehicle, err := u.resolver.ResolveVehicle(ctx, &vehicleID)
	if err != nil {
		return nil, err
	}
	return u.repo.FindByVehicleID(ctx, vehicle.ID())
}

func (u *ContractUseCase) Search(ctx context.Context, criteria entities.ContractFilterCriteria, page entities.PageRequest) (entities.Page[entities.Contract], error) {
	return u.repo.FindMatching(ctx, criteria, page.Normalize())
}

// vehicleForCreate resolves the vehicle of a new contract. A purchase
// without a vehicle id registers the vehicle described in its data.
func (u *ContractUseCase) vehicleForCreate(ctx context.Context, n normalizedInput) (int64, error) {
	if n.Type == entities.ContractTypeSale {
		if n.VehicleID == nil {
			return 0, reject(ErrMissingReference, "the vehicle of a sale contract must be selected")
		}
		if n.VehicleData != nil {
			return 0, reject(ErrVehicleDataNotAllowed, "vehicle details can only be sent for purchase contracts")
		}
	}
	if n.VehicleID != nil {
		vehicle, err := u.resolver.ResolveVehicle(ctx, n.VehicleID)
		if err != nil {
			return 0, err
		}
		return vehicle.ID(), nil
	}
	return u.provisioner.RegisterForPurchase(ctx, n.VehicleData, n.PurchasePrice)
}

// precheckPrices rejects prices that no contract history could fix, before
// any registry call is made.
func precheckPrices(n normalizedInput) error {
	if n.Type == entities.ContractTypeSale {
		_, err := requireSalePrice(n.SalePrice)
		return err
	}
	if n.VehicleID == nil {
		// provisioning validates the price of a new vehicle
		return nil
	}
	return validatePurchasePrice(purchasePurchasePrice(n.VehicleData, n.PurchasePrice))
}

func assignFields(c *entities.Contract, n normalizedInput, prices priced, clientID, userID, vehicleID int64) {
	c.ClientID = clientID
	c.UserID = userID
	c.VehicleID = vehicleID
	c.PurchasePrice = prices.PurchasePrice
	c.SalePrice = prices.SalePrice
	c.ContractStatus = n.Status
	c.PaymentMethod = n.PaymentMethod
	c.PaymentTerms = n.PaymentTerms
	c.PaymentLimitations = n.PaymentLimitations
	c.Observations = n.Observations
}
