package repository

import (
	"context"
	"strconv"

	"purchase_sale/internal/usecase/interfaces"
)

func runLocked(ctx context.Context, locker interfaces.IVehicleLocker, vehicleID int64, fn func(ctx context.Context) error) error {
	unlock, err := locker.Lock(ctx, vehicleID)
	if err != nil {
		return err
	}
	defer unlock()
	return fn(ctx)
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}
