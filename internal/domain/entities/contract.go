package entities

import (
	"strings"
	"time"
)

// ContractType distinguishes the purchase of a vehicle into stock from its
// sale to a client. It is write-once.
type ContractType string

const (
	ContractTypePurchase ContractType = "PURCHASE"
	ContractTypeSale     ContractType = "SALE"
)

func (t ContractType) IsValid() bool {
	return t == ContractTypePurchase || t == ContractTypeSale
}

// ContractStatus is the only mutable lifecycle field of a contract.
type ContractStatus string

const (
	ContractStatusPending   ContractStatus = "PENDING"
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
	ContractStatusCanceled  ContractStatus = "CANCELED"
)

func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractStatusPending, ContractStatusActive, ContractStatusCompleted, ContractStatusCanceled:
		return true
	}
	return false
}

// In reports whether s is one of the given statuses.
func (s ContractStatus) In(statuses ...ContractStatus) bool {
	for _, candidate := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash               PaymentMethod = "CASH"
	PaymentMethodBankTransfer       PaymentMethod = "BANK_TRANSFER"
	PaymentMethodBankDeposit        PaymentMethod = "BANK_DEPOSIT"
	PaymentMethodCashiersCheck      PaymentMethod = "CASHIERS_CHECK"
	PaymentMethodMixed              PaymentMethod = "MIXED"
	PaymentMethodFinancing          PaymentMethod = "FINANCING"
	PaymentMethodDigitalWallet      PaymentMethod = "DIGITAL_WALLET"
	PaymentMethodTradeIn            PaymentMethod = "TRADE_IN"
	PaymentMethodInstallmentPayment PaymentMethod = "INSTALLMENT_PAYMENT"
)

var paymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodBankTransfer,
	PaymentMethodBankDeposit,
	PaymentMethodCashiersCheck,
	PaymentMethodMixed,
	PaymentMethodFinancing,
	PaymentMethodDigitalWallet,
	PaymentMethodTradeIn,
	PaymentMethodInstallmentPayment,
}

func (m PaymentMethod) IsValid() bool {
	for _, known := range paymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// PaymentMethods lists every accepted payment method.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// ParseContractType reads a contract type case-insensitively.
func ParseContractType(s string) (ContractType, bool) {
	t := ContractType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsValid()
}

func ParseContractStatus(s string) (ContractStatus, bool) {
	st := ContractStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.IsValid()
}

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	return m, m.IsValid()
}

const (
	MaxPaymentTermsLength       = 200
	MaxPaymentLimitationsLength = 200
	MaxObservationsLength       = 500
)

// Contract is a purchase or sale of a used vehicle. Client, user and vehicle
// are referenced by id only; their records live in the remote registries.
//
// A zero ID means the contract has not been persisted (or was not found).
type Contract struct {
	ID                 int64          `json:"id"`
	ClientID           int64          `json:"clientId"`
	UserID             int64          `json:"userId"`
	VehicleID          int64          `json:"vehicleId"`
	PurchasePrice      float64        `json:"purchasePrice"`
	SalePrice          float64        `json:"salePrice"`
	ContractType       ContractType   `json:"contractType"`
	ContractStatus     ContractStatus `json:"contractStatus"`
	PaymentLimitations string         `json:"paymentLimitations"`
	PaymentTerms       string         `json:"paymentTerms"`
	PaymentMethod      PaymentMethod  `json:"paymentMethod"`
	Observations       *string        `json:"observations,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func (c Contract) IsPurchase() bool { return c.ContractType == ContractTypePurchase }

func (c Contract) IsSale() bool { return c.ContractType == ContractTypeSale }
