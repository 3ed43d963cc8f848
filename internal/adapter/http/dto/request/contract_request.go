package request

import (
	"fmt"
	"strings"
	"time"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase"
)

const dateLayout = "2006-01-02"

// ContractRequest is the body of create and update calls. Omitted type and
// status default to PURCHASE and PENDING.
type ContractRequest struct {
	ClientID           *int64                               `json:"clientId"`
	UserID             *int64                               `json:"userId"`
	VehicleID          *int64                               `json:"vehicleId"`
	PurchasePrice      *float64                             `json:"purchasePrice" binding:"omitempty,gte=0"`
	SalePrice          *float64                             `json:"salePrice" binding:"omitempty,gte=0"`
	ContractType       *string                              `json:"contractType"`
	ContractStatus     *string                              `json:"contractStatus"`
	PaymentMethod      string                               `json:"paymentMethod" binding:"required"`
	PaymentTerms       string                               `json:"paymentTerms" binding:"required,max=200"`
	PaymentLimitations string                               `json:"paymentLimitations" binding:"required,max=200"`
	Observations       *string                              `json:"observations" binding:"omitempty,max=500"`
	VehicleData        *entities.VehicleProvisioningRequest `json:"vehicleData"`
}

// ToInput converts the body into engine input. Enum values are read
// case-insensitively; unknown ones are passed through for the engine to
// reject.
func (r ContractRequest) ToInput() usecase.ContractInput {
	in := usecase.ContractInput{
		ClientID:           r.ClientID,
		UserID:             r.UserID,
		VehicleID:          r.VehicleID,
		PurchasePrice:      r.PurchasePrice,
		SalePrice:          r.SalePrice,
		PaymentTerms:       r.PaymentTerms,
		PaymentLimitations: r.PaymentLimitations,
		Observations:       r.Observations,
		VehicleData:        r.VehicleData,
	}
	if r.ContractType != nil {
		t, _ := entities.ParseContractType(*r.ContractType)
		in.ContractType = &t
	}
	if r.ContractStatus != nil {
		s, _ := entities.ParseContractStatus(*r.ContractStatus)
		in.ContractStatus = &s
	}
	in.PaymentMethod, _ = entities.ParsePaymentMethod(r.PaymentMethod)
	return in
}

// SearchQuery holds the query parameters of the search endpoint. Dates use
// the ISO yyyy-mm-dd form.
type SearchQuery struct {
	Page             int      `form:"page"`
	Size             int      `form:"size"`
	ContractType     string   `form:"contractType"`
	ContractStatus   string   `form:"contractStatus"`
	ClientID         *int64   `form:"clientId"`
	UserID           *int64   `form:"userId"`
	VehicleID        *int64   `form:"vehicleId"`
	PaymentMethod    string   `form:"paymentMethod"`
	StartDate        string   `form:"startDate"`
	EndDate          string   `form:"endDate"`
	MinPurchasePrice *float64 `form:"minPurchasePrice"`
	MaxPurchasePrice *float64 `form:"maxPurchasePrice"`
	MinSalePrice     *float64 `form:"minSalePrice"`
	MaxSalePrice     *float64 `form:"maxSalePrice"`
	Term             string   `form:"term"`
}

func (q SearchQuery) ToCriteria() (entities.ContractFilterCriteria, error) {
	criteria := entities.ContractFilterCriteria{
		ClientID:         q.ClientID,
		UserID:           q.UserID,
		VehicleID:        q.VehicleID,
		MinPurchasePrice: q.MinPurchasePrice,
		MaxPurchasePrice: q.MaxPurchasePrice,
		MinSalePrice:     q.MinSalePrice,
		MaxSalePrice:     q.MaxSalePrice,
		Term:             strings.TrimSpace(q.Term),
	}

	if v := strings.TrimSpace(q.ContractType); v != "" {
		t, ok := entities.ParseContractType(v)
		if !ok {
			return entities.ContractFilterCriteria{}, fmt.Errorf("unknown contract type %q", v)
		}
		criteria.ContractType = &t
	}
	if v := strings.TrimSpace(q.ContractStatus); v != "" {
		s, ok := entities.ParseContractStatus(v)
		if !ok {
			return entities.ContractFilterCriteria{}, fmt.Errorf("unknown contract status %q", v)
		}
		criteria.ContractStatus = &s
	}
	if v := strings.TrimSpace(q.PaymentMethod); v != "" {
		m, ok := entities.ParsePaymentMethod(v)
		if !ok {
			return entities.ContractFilterCriteria{}, fmt.Errorf("unknown payment method %q", v)
		}
		criteria.PaymentMethod = &m
	}

	var err error
	if criteria.StartDate, err = ParseDate(q.StartDate); err != nil {
		return entities.ContractFilterCriteria{}, err
	}
	if criteria.EndDate, err = ParseDate(q.EndDate); err != nil {
		return entities.ContractFilterCriteria{}, err
	}
	return criteria, nil
}

func (q SearchQuery) PageRequest(defaultSize int) entities.PageRequest {
	size := q.Size
	if size <= 0 {
		size = defaultSize
	}
	return entities.PageRequest{Page: q.Page, Size: size}.Normalize()
}

// ParseDate reads an optional yyyy-mm-dd date as a UTC midnight.
func ParseDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", v)
	}
	return &d, nil
}
