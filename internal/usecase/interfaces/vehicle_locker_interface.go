package interfaces

import "context"

// IVehicleLocker serializes contract writes for a single vehicle.
// The returned unlock func must be called exactly once.
type IVehicleLocker interface {
	Lock(ctx context.Context, vehicleID int64) (unlock func(), err error)
}
