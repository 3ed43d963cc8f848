package request

import (
	"testing"
	"time"

	"purchase_sale/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestContractRequest_ToInput(t *testing.T) {
	req := ContractRequest{
		ContractType:       strPtr("sale"),
		ContractStatus:     strPtr(" active "),
		PaymentMethod:      "bank_transfer",
		PaymentTerms:       "net 30",
		PaymentLimitations: "none",
	}

	in := req.ToInput()
	require.NotNil(t, in.ContractType)
	assert.Equal(t, entities.ContractTypeSale, *in.ContractType)
	assert.Equal(t, entities.ContractStatusActive, *in.ContractStatus)
	assert.Equal(t, entities.PaymentMethodBankTransfer, in.PaymentMethod)
	assert.Nil(t, in.VehicleID)

	req.ContractType = nil
	req.ContractStatus = strPtr("archived")
	in = req.ToInput()
	assert.Nil(t, in.ContractType)
	assert.False(t, in.ContractStatus.IsValid())
}

func TestSearchQuery_ToCriteria(t *testing.T) {
	q := SearchQuery{
		ContractType:   "purchase",
		ContractStatus: "COMPLETED",
		PaymentMethod:  "cash",
		StartDate:      "2024-03-01",
		Term:           "  toyota ",
	}

	criteria, err := q.ToCriteria()
	require.NoError(t, err)
	assert.Equal(t, entities.ContractTypePurchase, *criteria.ContractType)
	assert.Equal(t, entities.ContractStatusCompleted, *criteria.ContractStatus)
	assert.Equal(t, entities.PaymentMethodCash, *criteria.PaymentMethod)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *criteria.StartDate)
	assert.Nil(t, criteria.EndDate)
	assert.Equal(t, "toyota", criteria.Term)
}

func TestSearchQuery_Invalid(t *testing.T) {
	_, err := SearchQuery{ContractStatus: "archived"}.ToCriteria()
	assert.ErrorContains(t, err, "contract status")

	_, err = SearchQuery{EndDate: "01/03/2024"}.ToCriteria()
	assert.ErrorContains(t, err, "yyyy-mm-dd")
}

func TestSearchQuery_PageRequest(t *testing.T) {
	assert.Equal(t, entities.PageRequest{Page: 0, Size: 25}, SearchQuery{Page: -3}.PageRequest(25))
	assert.Equal(t, entities.PageRequest{Page: 2, Size: 5}, SearchQuery{Page: 2, Size: 5}.PageRequest(25))
}
