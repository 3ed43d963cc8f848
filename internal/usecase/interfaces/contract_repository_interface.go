package interfaces

import (
	"context"
	"purchase_sale/internal/domain/entities"
)

// IContractRepository abstracts persistence for Contract.
//
// Lookups return a zero-value Contract (ID == 0) when nothing matches.
// Save assigns an id to new contracts, sets CreatedAt once and refreshes
// UpdatedAt on every call.
//
// RunInVehicleScope runs fn so that no other scope for the same vehicle
// interleaves with it. Reads and writes issued with the ctx handed to fn
// belong to the scope.

type IContractRepository interface {
	FindByID(ctx context.Context, id int64) (entities.Contract, error)
	FindAll(ctx context.Context) ([]entities.Contract, error)
	FindAllPaged(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Contract], error)
	FindByClientID(ctx context.Context, clientID int64) ([]entities.Contract, error)
	FindByUserID(ctx context.Context, userID int64) ([]entities.Contract, error)
	FindByVehicleID(ctx context.Context, vehicleID int64) ([]entities.Contract, error)
	FindMatching(ctx context.Context, criteria entities.ContractFilterCriteria, page entities.PageRequest) (entities.Page[entities.Contract], error)
	Save(ctx context.Context, c entities.Contract) (entities.Contract, error)
	DeleteByID(ctx context.Context, id int64) error
	RunInVehicleScope(ctx context.Context, vehicleID int64, fn func(ctx context.Context) error) error
}
