package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type contractModel struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	ClientID           int64     `gorm:"not null;index"`
	UserID             int64     `gorm:"not null;index"`
	VehicleID          int64     `gorm:"not null;index"`
	PurchasePrice      float64   `gorm:"not null"`
	SalePrice          float64   `gorm:"not null;default:0"`
	ContractType       string    `gorm:"size:20;not null"`
	ContractStatus     string    `gorm:"size:20;not null"`
	PaymentMethod      string    `gorm:"size:30;not null"`
	PaymentTerms       string    `gorm:"size:200;not null"`
	PaymentLimitations string    `gorm:"size:200;not null"`
	Observations       *string   `gorm:"size:500"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null;index"`
}

func (contractModel) TableName() string { return "purchase_sales" }

// MigrateContracts creates or updates the purchase_sales table.
func MigrateContracts(db *gorm.DB) error {
	return db.AutoMigrate(&contractModel{})
}

type txKey struct{}

// ContractGormRepository persists Contract entities in PostgreSQL. Vehicle
// scopes run in a transaction holding a transaction-level advisory lock on
// the vehicle id.
type ContractGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IContractRepository = (*ContractGormRepository)(nil)

func NewContractGormRepository(db *gorm.DB) *ContractGormRepository {
	return &ContractGormRepository{db: db}
}

func (r *ContractGormRepository) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *ContractGormRepository) FindByID(ctx context.Context, id int64) (entities.Contract, error) {
	var m contractModel
	err := r.conn(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Contract{}, nil
	}
	if err != nil {
		return entities.Contract{}, err
	}
	return m.toEntity(), nil
}

func (r *ContractGormRepository) FindAll(ctx context.Context) ([]entities.Contract, error) {
	return r.find(r.conn(ctx))
}

func (r *ContractGormRepository) FindAllPaged(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Contract], error) {
	return r.paged(ctx, func(db *gorm.DB) *gorm.DB { return db }, page)
}

func (r *ContractGormRepository) FindByClientID(ctx context.Context, clientID int64) ([]entities.Contract, error) {
	return r.find(r.conn(ctx).Where("client_id = ?", clientID))
}

func (r *ContractGormRepository) FindByUserID(ctx context.Context, userID int64) ([]entities.Contract, error) {
	return r.find(r.conn(ctx).Where("user_id = ?", userID))
}

func (r *ContractGormRepository) FindByVehicleID(ctx context.Context, vehicleID int64) ([]entities.Contract, error) {
	return r.find(r.conn(ctx).Where("vehicle_id = ?", vehicleID))
}

func (r *ContractGormRepository) FindMatching(ctx context.Context, criteria entities.ContractFilterCriteria, page entities.PageRequest) (entities.Page[entities.Contract], error) {
	return r.paged(ctx, func(db *gorm.DB) *gorm.DB { return applyCriteria(db, criteria) }, page)
}

func (r *ContractGormRepository) Save(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	db := r.conn(ctx)
	m := toContractModel(c)

	if m.ID == 0 {
		if err := db.Create(&m).Error; err != nil {
			return entities.Contract{}, fmt.Errorf("create contract: %w", err)
		}
		return m.toEntity(), nil
	}

	if m.CreatedAt.IsZero() {
		existing, err := r.FindByID(ctx, m.ID)
		if err != nil {
			return entities.Contract{}, err
		}
		m.CreatedAt = existing.CreatedAt
	}
	if err := db.Save(&m).Error; err != nil {
		return entities.Contract{}, fmt.Errorf("update contract %d: %w", m.ID, err)
	}
	return m.toEntity(), nil
}

func (r *ContractGormRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.conn(ctx).Delete(&contractModel{}, id).Error
}

func (r *ContractGormRepository) RunInVehicleScope(ctx context.Context, vehicleID int64, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", vehicleID).Error; err != nil {
			return fmt.Errorf("lock vehicle %d: %w", vehicleID, err)
		}
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (r *ContractGormRepository) find(db *gorm.DB) ([]entities.Contract, error) {
	var models []contractModel
	if err := db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toEntities(models), nil
}

func (r *ContractGormRepository) paged(ctx context.Context, scope func(*gorm.DB) *gorm.DB, page entities.PageRequest) (entities.Page[entities.Contract], error) {
	page = page.Normalize()

	var total int64
	if err := scope(r.conn(ctx).Model(&contractModel{})).Count(&total).Error; err != nil {
		return entities.Page[entities.Contract]{}, err
	}

	var models []contractModel
	err := scope(r.conn(ctx)).
		Order("id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&models).Error
	if err != nil {
		return entities.Page[entities.Contract]{}, err
	}
	return entities.NewPage(toEntities(models), page, total), nil
}

// applyCriteria translates the filter criteria into SQL conditions. The
// free-text term becomes a single OR group.
func applyCriteria(db *gorm.DB, c entities.ContractFilterCriteria) *gorm.DB {
	if c.ClientID != nil {
		db = db.Where("client_id = ?", *c.ClientID)
	}
	if c.UserID != nil {
		db = db.Where("user_id = ?", *c.UserID)
	}
	if c.VehicleID != nil {
		db = db.Where("vehicle_id = ?", *c.VehicleID)
	}
	if c.ContractType != nil {
		db = db.Where("contract_type = ?", string(*c.ContractType))
	}
	if c.ContractStatus != nil {
		db = db.Where("contract_status = ?", string(*c.ContractStatus))
	}
	if c.PaymentMethod != nil {
		db = db.Where("payment_method = ?", string(*c.PaymentMethod))
	}
	if from := c.UpdatedFrom(); from != nil {
		db = db.Where("updated_at >= ?", *from)
	}
	if until := c.UpdatedUntil(); until != nil {
		db = db.Where("updated_at <= ?", *until)
	}
	if c.MinPurchasePrice != nil {
		db = db.Where("purchase_price >= ?", *c.MinPurchasePrice)
	}
	if c.MaxPurchasePrice != nil {
		db = db.Where("purchase_price <= ?", *c.MaxPurchasePrice)
	}
	if c.MinSalePrice != nil {
		db = db.Where("sale_price >= ?", *c.MinSalePrice)
	}
	if c.MaxSalePrice != nil {
		db = db.Where("sale_price <= ?", *c.MaxSalePrice)
	}

	term, ok := c.ParsedTerm()
	if !ok {
		return db
	}
	like := "%" + term.Text + "%"
	group := db.Session(&gorm.Session{NewDB: true}).
		Where("LOWER(payment_terms) LIKE ?", like).
		Or("LOWER(payment_limitations) LIKE ?", like).
		Or("LOWER(observations) LIKE ?", like).
		Or("LOWER(contract_status) LIKE ?", like).
		Or("LOWER(contract_type) LIKE ?", like).
		Or("LOWER(payment_method) LIKE ?", like)
	if n := term.Integer; n != nil {
		group = group.Or("id = ? OR client_id = ? OR user_id = ? OR vehicle_id = ?", *n, *n, *n, *n)
	}
	if d := term.Decimal; d != nil {
		group = group.Or("purchase_price = ? OR sale_price = ?", *d, *d)
	}
	return db.Where(group)
}

func toContractModel(c entities.Contract) contractModel {
	return contractModel{
		ID:                 c.ID,
		ClientID:           c.ClientID,
		UserID:             c.UserID,
		VehicleID:          c.VehicleID,
		PurchasePrice:      c.PurchasePrice,
		SalePrice:          c.SalePrice,
		ContractType:       string(c.ContractType),
		ContractStatus:     string(c.ContractStatus),
		PaymentMethod:      string(c.PaymentMethod),
		PaymentTerms:       c.PaymentTerms,
		PaymentLimitations: c.PaymentLimitations,
		Observations:       c.Observations,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func (m contractModel) toEntity() entities.Contract {
	return entities.Contract{
		ID:                 m.ID,
		ClientID:           m.ClientID,
		UserID:             m.UserID,
		VehicleID:          m.VehicleID,
		PurchasePrice:      m.PurchasePrice,
		SalePrice:          m.SalePrice,
		ContractType:       entities.ContractType(m.ContractType),
		ContractStatus:     entities.ContractStatus(m.ContractStatus),
		PaymentMethod:      entities.PaymentMethod(m.PaymentMethod),
		PaymentTerms:       m.PaymentTerms,
		PaymentLimitations: m.PaymentLimitations,
		Observations:       m.Observations,
		CreatedAt:          m.CreatedAt.UTC(),
		UpdatedAt:          m.UpdatedAt.UTC(),
	}
}

func toEntities(models []contractModel) []entities.Contract {
	out := make([]entities.Contract, 0, len(models))
	for _, m := range models {
		out = append(out, m.toEntity())
	}
	return out
}
