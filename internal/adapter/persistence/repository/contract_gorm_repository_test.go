package repository

import (
	"strings"
	"testing"

	"purchase_sale/internal/domain/entities"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test password=test dbname=test port=5432 sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return db
}

func TestApplyCriteria_BuildsConditions(t *testing.T) {
	db := dryRunDB(t)
	client := int64(7)
	status := entities.ContractStatusActive
	maxSale := 30000.0

	var models []contractModel
	stmt := applyCriteria(db, entities.ContractFilterCriteria{
		ClientID:       &client,
		ContractStatus: &status,
		MaxSalePrice:   &maxSale,
		Term:           "Ref 42",
	}).Find(&models).Statement
	sql := stmt.SQL.String()

	for _, want := range []string{
		`"purchase_sales"`,
		"client_id = $1",
		"contract_status = $2",
		"sale_price <= $3",
		"LOWER(payment_terms) LIKE",
		"LOWER(observations) LIKE",
		"vehicle_id = $",
	} {
		if !strings.Contains(sql, want) {
			t.Fatalf("expected %q in %s", want, sql)
		}
	}
	if strings.Contains(sql, "purchase_price = $") {
		t.Fatalf("non decimal term must not match prices: %s", sql)
	}
	if got := stmt.Vars[3]; got != "%ref 42%" {
		t.Fatalf("unexpected like pattern %v", got)
	}
}

func TestApplyCriteria_EmptyCriteria(t *testing.T) {
	db := dryRunDB(t)
	var models []contractModel
	sql := applyCriteria(db, entities.ContractFilterCriteria{}).Find(&models).Statement.SQL.String()
	if strings.Contains(sql, "WHERE") {
		t.Fatalf("expected no conditions, got %s", sql)
	}
}
