package lock

import (
	"context"
	"sync"

	"purchase_sale/internal/usecase/interfaces"
)

// LocalVehicleLocker serializes work per vehicle inside a single process.
type LocalVehicleLocker struct {
	mu    sync.Mutex
	locks map[int64]*vehicleLock
}

type vehicleLock struct {
	sem  chan struct{}
	refs int
}

var _ interfaces.IVehicleLocker = (*LocalVehicleLocker)(nil)

func NewLocalVehicleLocker() *LocalVehicleLocker {
	return &LocalVehicleLocker{locks: map[int64]*vehicleLock{}}
}

// Lock blocks until the vehicle is free or ctx is done.
func (l *LocalVehicleLocker) Lock(ctx context.Context, vehicleID int64) (func(), error) {
	l.mu.Lock()
	vl, ok := l.locks[vehicleID]
	if !ok {
		vl = &vehicleLock{sem: make(chan struct{}, 1)}
		l.locks[vehicleID] = vl
	}
	vl.refs++
	l.mu.Unlock()

	select {
	case vl.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(vehicleID, vl)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-vl.sem
			l.release(vehicleID, vl)
		})
	}, nil
}

func (l *LocalVehicleLocker) release(vehicleID int64, vl *vehicleLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	vl.refs--
	if vl.refs == 0 {
		delete(l.locks, vehicleID)
	}
}
