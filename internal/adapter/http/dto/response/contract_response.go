package response

import (
	"time"

	"purchase_sale/internal/domain/entities"
)

type ContractResponse struct {
	ID                 int64     `json:"id"`
	ClientID           int64     `json:"clientId"`
	UserID             int64     `json:"userId"`
	VehicleID          int64     `json:"vehicleId"`
	PurchasePrice      float64   `json:"purchasePrice"`
	SalePrice          float64   `json:"salePrice"`
	ContractType       string    `json:"contractType"`
	ContractStatus     string    `json:"contractStatus"`
	PaymentLimitations string    `json:"paymentLimitations"`
	PaymentTerms       string    `json:"paymentTerms"`
	PaymentMethod      string    `json:"paymentMethod"`
	Observations       *string   `json:"observations"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ContractDetailResponse is a contract with the summaries of its client,
// user and vehicle.
type ContractDetailResponse struct {
	ContractResponse
	ClientSummary  *entities.ClientSummary  `json:"clientSummary,omitempty"`
	UserSummary    *entities.UserSummary    `json:"userSummary,omitempty"`
	VehicleSummary *entities.VehicleSummary `json:"vehicleSummary,omitempty"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:                 c.ID,
		ClientID:           c.ClientID,
		UserID:             c.UserID,
		VehicleID:          c.VehicleID,
		PurchasePrice:      c.PurchasePrice,
		SalePrice:          c.SalePrice,
		ContractType:       string(c.ContractType),
		ContractStatus:     string(c.ContractStatus),
		PaymentLimitations: c.PaymentLimitations,
		PaymentTerms:       c.PaymentTerms,
		PaymentMethod:      string(c.PaymentMethod),
		Observations:       c.Observations,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func FromContracts(contracts []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, FromContract(c))
	}
	return out
}

func FromContractDetail(d entities.ContractDetail) ContractDetailResponse {
	return ContractDetailResponse{
		ContractResponse: FromContract(d.Contract),
		ClientSummary:    d.ClientSummary,
		UserSummary:      d.UserSummary,
		VehicleSummary:   d.VehicleSummary,
	}
}

func FromContractDetails(details []entities.ContractDetail) []ContractDetailResponse {
	out := make([]ContractDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, FromContractDetail(d))
	}
	return out
}

// FromContractPage keeps the paging envelope of p around the mapped content.
func FromContractPage(p entities.Page[entities.Contract]) entities.Page[ContractResponse] {
	return entities.MapPage(p, FromContracts(p.Content))
}
