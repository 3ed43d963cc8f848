package usecase

import (
	"strings"
	"unicode/utf8"

	"purchase_sale/internal/domain/entities"
)

// ContractInput is the caller's view of a contract on create and update.
// Nil fields are absent; normalization never mutates the input.
type ContractInput struct {
	ClientID           *int64
	UserID             *int64
	VehicleID          *int64
	PurchasePrice      *float64
	SalePrice          *float64
	ContractType       *entities.ContractType
	ContractStatus     *entities.ContractStatus
	PaymentMethod      entities.PaymentMethod
	PaymentTerms       string
	PaymentLimitations string
	Observations       *string
	VehicleData        *entities.VehicleProvisioningRequest
}

// normalizedInput is a ContractInput with type and status defaulted and
// payment metadata trimmed.
type normalizedInput struct {
	ContractInput
	Type   entities.ContractType
	Status entities.ContractStatus
}

func normalize(in ContractInput) (normalizedInput, error) {
	n := normalizedInput{
		ContractInput: in,
		Type:          entities.ContractTypePurchase,
		Status:        entities.ContractStatusPending,
	}
	if in.ContractType != nil {
		n.Type = *in.ContractType
	}
	if in.ContractStatus != nil {
		n.Status = *in.ContractStatus
	}
	if !n.Type.IsValid() {
		return normalizedInput{}, reject(ErrInvalidContractState, "unknown contract type %q", n.Type)
	}
	if !n.Status.IsValid() {
		return normalizedInput{}, reject(ErrInvalidContractState, "unknown contract status %q", n.Status)
	}

	n.PaymentTerms = strings.TrimSpace(in.PaymentTerms)
	n.PaymentLimitations = strings.TrimSpace(in.PaymentLimitations)
	if in.Observations != nil {
		obs := strings.TrimSpace(*in.Observations)
		n.Observations = &obs
		if obs == "" {
			n.Observations = nil
		}
	}
	if err := validatePaymentMetadata(n); err != nil {
		return normalizedInput{}, err
	}
	return n, nil
}

func validatePaymentMetadata(n normalizedInput) error {
	if !n.PaymentMethod.IsValid() {
		return reject(ErrInvalidPaymentData, "payment method %q is not supported", n.PaymentMethod)
	}
	if n.PaymentTerms == "" {
		return reject(ErrInvalidPaymentData, "payment terms are required")
	}
	if utf8.RuneCountInString(n.PaymentTerms) > entities.MaxPaymentTermsLength {
		return reject(ErrInvalidPaymentData, "payment terms cannot exceed %d characters", entities.MaxPaymentTermsLength)
	}
	if n.PaymentLimitations == "" {
		return reject(ErrInvalidPaymentData, "payment limitations are required")
	}
	if utf8.RuneCountInString(n.PaymentLimitations) > entities.MaxPaymentLimitationsLength {
		return reject(ErrInvalidPaymentData, "payment limitations cannot exceed %d characters", entities.MaxPaymentLimitationsLength)
	}
	if n.Observations != nil && utf8.RuneCountInString(*n.Observations) > entities.MaxObservationsLength {
		return reject(ErrInvalidPaymentData, "observations cannot exceed %d characters", entities.MaxObservationsLength)
	}
	if n.PurchasePrice != nil && *n.PurchasePrice < 0 {
		return reject(ErrInvalidPurchasePrice, "purchase price cannot be negative")
	}
	if n.SalePrice != nil && *n.SalePrice < 0 {
		return reject(ErrInvalidSalePrice, "sale price cannot be negative")
	}
	return nil
}

// purchaseSalePrice picks the sale price of a purchase contract: the price
// declared in the vehicle data, then the requested price, then zero.
func purchaseSalePrice(vehicleData *entities.VehicleProvisioningRequest, requested *float64) float64 {
	if vehicleData != nil && vehicleData.SalePrice != nil {
		return *vehicleData.SalePrice
	}
	if requested != nil {
		return *requested
	}
	return 0
}

// purchasePurchasePrice picks the purchase price of a purchase contract: the
// requested price when positive, then the price declared in the vehicle data.
func purchasePurchasePrice(vehicleData *entities.VehicleProvisioningRequest, requested *float64) float64 {
	if requested != nil && *requested > 0 {
		return *requested
	}
	if vehicleData != nil && vehicleData.PurchasePrice != nil {
		return *vehicleData.PurchasePrice
	}
	return 0
}

// requireSalePrice returns the sale price of a sale contract, which must be
// positive.
func requireSalePrice(requested *float64) (float64, error) {
	if requested == nil || *requested <= 0 {
		return 0, reject(ErrInvalidSalePrice, "sale price must be greater than zero")
	}
	return *requested, nil
}

// latestPurchasePrice returns the purchase price of the most recently
// updated ACTIVE or COMPLETED purchase in history. Without one, the fallback
// is used when positive.
func latestPurchasePrice(history []entities.Contract, fallback *float64) (float64, error) {
	var latest *entities.Contract
	for i := range history {
		c := &history[i]
		if !c.IsPurchase() || !c.ContractStatus.In(entities.ContractStatusActive, entities.ContractStatusCompleted) {
			continue
		}
		if latest == nil || c.UpdatedAt.After(latest.UpdatedAt) {
			latest = c
		}
	}
	if latest != nil {
		return latest.PurchasePrice, nil
	}
	if fallback != nil && *fallback > 0 {
		return *fallback, nil
	}
	return 0, reject(ErrPurchasePriceUnavailable, "no valid purchase was found for the vehicle")
}

// excluding drops the contract with the given id from history. Zero keeps
// everything.
func excluding(history []entities.Contract, id int64) []entities.Contract {
	if id == 0 {
		return history
	}
	out := make([]entities.Contract, 0, len(history))
	for _, c := range history {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// ensureNoOpenPurchase enforces a single PENDING or ACTIVE purchase per vehicle.
func ensureNoOpenPurchase(history []entities.Contract, vehicleID int64) error {
	for _, c := range history {
		if c.IsPurchase() && c.ContractStatus.In(entities.ContractStatusPending, entities.ContractStatusActive) {
			return reject(ErrDuplicatePurchase,
				"vehicle with id %d already has a purchase registered in pending or active status", vehicleID)
		}
	}
	return nil
}

// ensureAvailableStock requires an ACTIVE or COMPLETED purchase before a sale.
func ensureAvailableStock(history []entities.Contract, vehicleID int64) error {
	for _, c := range history {
		if c.IsPurchase() && c.ContractStatus.In(entities.ContractStatusActive, entities.ContractStatusCompleted) {
			return nil
		}
	}
	return reject(ErrNoAvailableStock,
		"vehicle with id %d has no active or completed purchase registered", vehicleID)
}

// ensureNoOpenSale enforces a single PENDING, ACTIVE or COMPLETED sale per vehicle.
func ensureNoOpenSale(history []entities.Contract, vehicleID int64) error {
	for _, c := range history {
		if c.IsSale() && c.ContractStatus.In(entities.ContractStatusPending, entities.ContractStatusActive, entities.ContractStatusCompleted) {
			return reject(ErrDuplicateSale,
				"vehicle with id %d already has a sale registered in pending, active or completed status", vehicleID)
		}
	}
	return nil
}

// requiresAvailableStock reports whether a sale in the given status needs stock.
func requiresAvailableStock(status entities.ContractStatus) bool {
	return status.In(entities.ContractStatusPending, entities.ContractStatusActive, entities.ContractStatusCompleted)
}

func validatePurchasePrice(price float64) error {
	if price <= 0 {
		return reject(ErrInvalidPurchasePrice, "purchase price must be greater than zero")
	}
	return nil
}

// priced is the outcome of the type-specific preparation: the prices the
// contract will carry.
type priced struct {
	PurchasePrice float64
	SalePrice     float64
}

// applyContractRules runs the type-specific preparation and the per-vehicle
// invariants against history, which must already exclude the contract being
// updated.
func applyContractRules(in normalizedInput, history []entities.Contract, vehicleID int64) (priced, error) {
	switch in.Type {
	case entities.ContractTypeSale:
		salePrice, err := requireSalePrice(in.SalePrice)
		if err != nil {
			return priced{}, err
		}
		purchasePrice, err := latestPurchasePrice(history, in.PurchasePrice)
		if err != nil {
			return priced{}, err
		}
		if requiresAvailableStock(in.Status) {
			if err := ensureAvailableStock(history, vehicleID); err != nil {
				return priced{}, err
			}
		}
		if err := ensureNoOpenSale(history, vehicleID); err != nil {
			return priced{}, err
		}
		return priced{PurchasePrice: purchasePrice, SalePrice: salePrice}, nil
	default:
		if err := ensureNoOpenPurchase(history, vehicleID); err != nil {
			return priced{}, err
		}
		return priced{
			PurchasePrice: purchasePurchasePrice(in.VehicleData, in.PurchasePrice),
			SalePrice:     purchaseSalePrice(in.VehicleData, in.SalePrice),
		}, nil
	}
}
