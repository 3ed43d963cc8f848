package usecase

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every rejection caused by the caller's input.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrMissingReference         = errors.New("missing reference")
	ErrClientNotFound           = errors.New("client not found")
	ErrUserNotFound             = errors.New("user not found")
	ErrVehicleNotFound          = errors.New("vehicle not found")
	ErrInvalidVehicleData       = errors.New("invalid vehicle data")
	ErrVehicleDataNotAllowed    = errors.New("vehicle data not allowed for sales")
	ErrInvalidSalePrice         = errors.New("invalid sale price")
	ErrInvalidPurchasePrice     = errors.New("invalid purchase price")
	ErrPurchasePriceUnavailable = errors.New("purchase price unavailable")
	ErrInvalidPaymentData       = errors.New("invalid payment data")
	ErrInvalidContractState     = errors.New("invalid contract type or status")
	ErrDuplicatePurchase        = errors.New("vehicle already has an open purchase")
	ErrNoAvailableStock         = errors.New("vehicle has no available stock")
	ErrDuplicateSale            = errors.New("vehicle already has a sale registered")
	ErrContractTypeChange       = errors.New("contract type cannot be changed")
)

// RejectedInputError carries a human readable reason for a rejection. It
// matches both its Kind and ErrInvalidInput with errors.Is.
type RejectedInputError struct {
	Kind   error
	Reason string
}

func (e *RejectedInputError) Error() string { return e.Reason }

func (e *RejectedInputError) Unwrap() error { return e.Kind }

func (e *RejectedInputError) Is(target error) bool { return target == ErrInvalidInput }

func reject(kind error, format string, args ...any) error {
	return &RejectedInputError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
