package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"
)

// ContractMemoryRepository keeps contracts in process memory. It backs
// local runs (DATA_BACKEND=memory) and tests.
type ContractMemoryRepository struct {
	mu     sync.RWMutex
	items  map[int64]entities.Contract
	nextID int64
	locker interfaces.IVehicleLocker
	now    func() time.Time
}

var _ interfaces.IContractRepository = (*ContractMemoryRepository)(nil)

func NewContractMemoryRepository(locker interfaces.IVehicleLocker) *ContractMemoryRepository {
	return &ContractMemoryRepository{
		items:  map[int64]entities.Contract{},
		locker: locker,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the timestamp source used by Save.
func (r *ContractMemoryRepository) WithClock(now func() time.Time) *ContractMemoryRepository {
	r.now = now
	return r
}

func (r *ContractMemoryRepository) FindByID(_ context.Context, id int64) (entities.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *ContractMemoryRepository) FindAll(_ context.Context) ([]entities.Contract, error) {
	return r.filter(func(entities.Contract) bool { return true }), nil
}

func (r *ContractMemoryRepository) FindAllPaged(_ context.Context, page entities.PageRequest) (entities.Page[entities.Contract], error) {
	return entities.Paginate(r.filter(func(entities.Contract) bool { return true }), page), nil
}

func (r *ContractMemoryRepository) FindByClientID(_ context.Context, clientID int64) ([]entities.Contract, error) {
	return r.filter(func(c entities.Contract) bool { return c.ClientID == clientID }), nil
}

func (r *ContractMemoryRepository) FindByUserID(_ context.Context, userID int64) ([]entities.Contract, error) {
	return r.filter(func(c entities.Contract) bool { return c.UserID == userID }), nil
}

func (r *ContractMemoryRepository) FindByVehicleID(_ context.Context, vehicleID int64) ([]entities.Contract, error) {
	return r.filter(func(c entities.Contract) bool { return c.VehicleID == vehicleID }), nil
}

func (r *ContractMemoryRepository) FindMatching(_ context.Context, criteria entities.ContractFilterCriteria, page entities.PageRequest) (entities.Page[entities.Contract], error) {
	return entities.Paginate(r.filter(criteria.Matches), page), nil
}

func (r *ContractMemoryRepository) Save(_ context.Context, c entities.Contract) (entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if c.ID == 0 {
		r.nextID++
		c.ID = r.nextID
	} else if c.ID > r.nextID {
		r.nextID = c.ID
	}
	if existing, ok := r.items[c.ID]; ok && !existing.CreatedAt.IsZero() {
		c.CreatedAt = existing.CreatedAt
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	r.items[c.ID] = c
	return c, nil
}

func (r *ContractMemoryRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *ContractMemoryRepository) RunInVehicleScope(ctx context.Context, vehicleID int64, fn func(ctx context.Context) error) error {
	return runLocked(ctx, r.locker, vehicleID, fn)
}

// filter returns matching contracts ordered by id.
func (r *ContractMemoryRepository) filter(keep func(entities.Contract) bool) []entities.Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Contract, 0, len(r.items))
	for _, c := range r.items {
		if keep(c) {
			out = append(out, c)
		}
	}
	sortByID(out)
	return out
}

func sortByID(contracts []entities.Contract) {
	sort.Slice(contracts, func(i, j int) bool { return contracts[i].ID < contracts[j].ID })
}
