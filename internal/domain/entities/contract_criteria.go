package entities

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ContractFilterCriteria narrows a contract search. Nil fields are ignored;
// every set field must match. The free-text Term matches when any of its
// textual or numeric interpretations does.
type ContractFilterCriteria struct {
	ClientID         *int64
	UserID           *int64
	VehicleID        *int64
	ContractType     *ContractType
	ContractStatus   *ContractStatus
	PaymentMethod    *PaymentMethod
	StartDate        *time.Time
	EndDate          *time.Time
	MinPurchasePrice *float64
	MaxPurchasePrice *float64
	MinSalePrice     *float64
	MaxSalePrice     *float64
	Term             string
}

// SearchTerm is the parsed form of a free-text term.
type SearchTerm struct {
	Text    string
	Integer *int64
	Decimal *float64
}

// ParsedTerm returns the lower-cased term with its numeric readings, or
// false when no term was given. The integer reading keeps only the digits
// of the term ("id 42" reads as 42); the decimal reading accepts a comma
// as separator.
func (c ContractFilterCriteria) ParsedTerm() (SearchTerm, bool) {
	text := strings.ToLower(strings.TrimSpace(c.Term))
	if text == "" {
		return SearchTerm{}, false
	}
	return SearchTerm{
		Text:    text,
		Integer: parseDigits(c.Term),
		Decimal: parseDecimal(c.Term),
	}, true
}

// UpdatedFrom is the inclusive lower bound on UpdatedAt (start of StartDate).
func (c ContractFilterCriteria) UpdatedFrom() *time.Time {
	if c.StartDate == nil {
		return nil
	}
	y, m, d := c.StartDate.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, c.StartDate.Location())
	return &from
}

// UpdatedUntil is the inclusive upper bound on UpdatedAt (end of EndDate).
func (c ContractFilterCriteria) UpdatedUntil() *time.Time {
	if c.EndDate == nil {
		return nil
	}
	y, m, d := c.EndDate.Date()
	until := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), c.EndDate.Location())
	return &until
}

func (c ContractFilterCriteria) IsEmpty() bool {
	return c == ContractFilterCriteria{}
}

// Matches evaluates the criteria against a single contract.
func (c ContractFilterCriteria) Matches(ct Contract) bool {
	if c.ClientID != nil && ct.ClientID != *c.ClientID {
		return false
	}
	if c.UserID != nil && ct.UserID != *c.UserID {
		return false
	}
	if c.VehicleID != nil && ct.VehicleID != *c.VehicleID {
		return false
	}
	if c.ContractType != nil && ct.ContractType != *c.ContractType {
		return false
	}
	if c.ContractStatus != nil && ct.ContractStatus != *c.ContractStatus {
		return false
	}
	if c.PaymentMethod != nil && ct.PaymentMethod != *c.PaymentMethod {
		return false
	}
	if from := c.UpdatedFrom(); from != nil && ct.UpdatedAt.Before(*from) {
		return false
	}
	if until := c.UpdatedUntil(); until != nil && ct.UpdatedAt.After(*until) {
		return false
	}
	if !inRange(ct.PurchasePrice, c.MinPurchasePrice, c.MaxPurchasePrice) {
		return false
	}
	if !inRange(ct.SalePrice, c.MinSalePrice, c.MaxSalePrice) {
		return false
	}
	if term, ok := c.ParsedTerm(); ok {
		return term.matches(ct)
	}
	return true
}

func (t SearchTerm) matches(ct Contract) bool {
	texts := []string{
		ct.PaymentTerms,
		ct.PaymentLimitations,
		string(ct.ContractStatus),
		string(ct.ContractType),
		string(ct.PaymentMethod),
	}
	if ct.Observations != nil {
		texts = append(texts, *ct.Observations)
	}
	for _, s := range texts {
		if strings.Contains(strings.ToLower(s), t.Text) {
			return true
		}
	}
	if t.Integer != nil {
		n := *t.Integer
		if ct.ID == n || ct.ClientID == n || ct.UserID == n || ct.VehicleID == n {
			return true
		}
	}
	if t.Decimal != nil {
		if ct.PurchasePrice == *t.Decimal || ct.SalePrice == *t.Decimal {
			return true
		}
	}
	return false
}

func inRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func parseDigits(s string) *int64 {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return nil
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func parseDecimal(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
	if err != nil {
		return nil
	}
	return &v
}
