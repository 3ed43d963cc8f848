package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"time"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"
)

const (
	reportDateLayout     = "02/01/2006"
	reportDateTimeLayout = "02/01/2006 15:04"
	reportEmptyMessage   = "No records exist for the selected period."
)

var reportHeaders = []string{
	"Contract type",
	"Contract status",
	"Client",
	"Client type",
	"Client document",
	"Client email",
	"Client phone",
	"Responsible user",
	"User (username)",
	"User email",
	"Vehicle brand",
	"Vehicle line",
	"Vehicle model",
	"Vehicle plate",
	"Vehicle type",
	"Vehicle status",
	"Purchase price",
	"Sale price",
	"Payment method",
	"Payment terms",
	"Payment limitations",
	"Observations",
	"Created at",
	"Last updated",
}

var (
	contractTypeLabels = map[entities.ContractType]string{
		entities.ContractTypePurchase: "Purchase",
		entities.ContractTypeSale:     "Sale",
	}
	contractStatusLabels = map[entities.ContractStatus]string{
		entities.ContractStatusPending:   "Pending",
		entities.ContractStatusActive:    "Active",
		entities.ContractStatusCompleted: "Completed",
		entities.ContractStatusCanceled:  "Canceled",
	}
	paymentMethodLabels = map[entities.PaymentMethod]string{
		entities.PaymentMethodCash:               "Cash",
		entities.PaymentMethodBankTransfer:       "Bank transfer",
		entities.PaymentMethodBankDeposit:        "Bank deposit",
		entities.PaymentMethodCashiersCheck:      "Cashier's check",
		entities.PaymentMethodMixed:              "Mixed",
		entities.PaymentMethodFinancing:          "Financing",
		entities.PaymentMethodDigitalWallet:      "Digital wallet",
		entities.PaymentMethodTradeIn:            "Trade-in",
		entities.PaymentMethodInstallmentPayment: "Installment payment",
	}
	summaryTypeLabels = map[string]string{
		string(entities.ClientKindPerson):      "Person",
		string(entities.ClientKindCompany):     "Company",
		string(entities.VehicleKindCar):        "Car",
		string(entities.VehicleKindMotorcycle): "Motorcycle",
		entities.SummaryTypeUnknown:            "Unknown",
	}
)

// IContractReportUseCase exports contracts created within a date window.
type IContractReportUseCase interface {
	GenerateCSV(ctx context.Context, startDate, endDate *time.Time) ([]byte, error)
	GenerateExcel(ctx context.Context, startDate, endDate *time.Time) ([]byte, error)
	GeneratePDF(ctx context.Context, startDate, endDate *time.Time) ([]byte, error)
}

type ContractReportUseCase struct {
	repo     interfaces.IContractRepository
	details  IContractDetailUseCase
	location *time.Location
}

var _ IContractReportUseCase = (*ContractReportUseCase)(nil)

// NewContractReportUseCase renders dates in loc; nil means UTC.
func NewContractReportUseCase(repo interfaces.IContractRepository, details IContractDetailUseCase, loc *time.Location) *ContractReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ContractReportUseCase{repo: repo, details: details, location: loc}
}

func (u *ContractReportUseCase) GenerateCSV(ctx context.Context, startDate, endDate *time.Time) ([]byte, error) {
	records, err := u.reportRecords(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{
		{"Period", periodText(startDate, endDate)},
		{},
		reportHeaders,
	}
	if len(records) == 0 {
		rows = append(rows, []string{reportEmptyMessage})
	}
	for _, r := range records {
		rows = append(rows, r.texts())
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write csv report: %w", err)
	}
	return buf.Bytes(), nil
}

// reportRecords loads the window, enriches it and flattens every detail into
// the labelled columns shared by all report formats.
func (u *ContractReportUseCase) reportRecords(ctx context.Context, startDate, endDate *time.Time) ([]reportRecord, error) {
	contracts, err := u.contractsCreatedBetween(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	details, err := u.details.ToDetails(ctx, contracts)
	if err != nil {
		return nil, err
	}
	records := make([]reportRecord, 0, len(details))
	for _, d := range details {
		records = append(records, u.reportRecord(d))
	}
	return records, nil
}

// contractsCreatedBetween returns contracts newest first, keeping those whose
// creation date falls within the inclusive window.
func (u *ContractReportUseCase) contractsCreatedBetween(ctx context.Context, startDate, endDate *time.Time) ([]entities.Contract, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	window := entities.ContractFilterCriteria{StartDate: startDate, EndDate: endDate}
	from, until := window.UpdatedFrom(), window.UpdatedUntil()
	out := make([]entities.Contract, 0, len(all))
	for _, c := range all {
		if c.CreatedAt.IsZero() {
			continue
		}
		if from != nil && c.CreatedAt.Before(*from) {
			continue
		}
		if until != nil && c.CreatedAt.After(*until) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// reportRecord is one contract with every column already labelled.
type reportRecord struct {
	ContractType       string
	ContractStatus     string
	ClientName         string
	ClientType         string
	ClientDocument     string
	ClientEmail        string
	ClientPhone        string
	UserFullName       string
	Username           string
	UserEmail          string
	VehicleBrand       string
	VehicleLine        string
	VehicleModel       string
	VehiclePlate       string
	VehicleType        string
	VehicleStatus      string
	PurchasePrice      float64
	SalePrice          float64
	PaymentMethod      string
	PaymentTerms       string
	PaymentLimitations string
	Observations       string
	CreatedAt          string
	UpdatedAt          string
}

// texts lists the columns in reportHeaders order.
func (r reportRecord) texts() []string {
	return []string{
		r.ContractType,
		r.ContractStatus,
		r.ClientName,
		r.ClientType,
		r.ClientDocument,
		r.ClientEmail,
		r.ClientPhone,
		r.UserFullName,
		r.Username,
		r.UserEmail,
		r.VehicleBrand,
		r.VehicleLine,
		r.VehicleModel,
		r.VehiclePlate,
		r.VehicleType,
		r.VehicleStatus,
		formatPrice(r.PurchasePrice),
		formatPrice(r.SalePrice),
		r.PaymentMethod,
		r.PaymentTerms,
		r.PaymentLimitations,
		r.Observations,
		r.CreatedAt,
		r.UpdatedAt,
	}
}

func (u *ContractReportUseCase) reportRecord(d entities.ContractDetail) reportRecord {
	var (
		client  entities.ClientSummary
		user    entities.UserSummary
		vehicle entities.VehicleSummary
	)
	if d.ClientSummary != nil {
		client = *d.ClientSummary
	}
	if d.UserSummary != nil {
		user = *d.UserSummary
	}
	if d.VehicleSummary != nil {
		vehicle = *d.VehicleSummary
	}

	r := reportRecord{
		ContractType:       labelOr(contractTypeLabels[d.ContractType], string(d.ContractType)),
		ContractStatus:     labelOr(contractStatusLabels[d.ContractStatus], string(d.ContractStatus)),
		ClientName:         client.Name,
		ClientType:         labelOr(summaryTypeLabels[client.Type], client.Type),
		ClientDocument:     client.Identifier,
		ClientEmail:        client.Email,
		UserFullName:       user.FullName,
		Username:           user.Username,
		UserEmail:          user.Email,
		VehicleBrand:       vehicle.Brand,
		VehicleLine:        vehicle.Line,
		VehicleModel:       vehicle.Model,
		VehiclePlate:       vehicle.Plate,
		VehicleType:        labelOr(summaryTypeLabels[vehicle.Type], vehicle.Type),
		PurchasePrice:      d.PurchasePrice,
		SalePrice:          d.SalePrice,
		PaymentMethod:      labelOr(paymentMethodLabels[d.PaymentMethod], string(d.PaymentMethod)),
		PaymentTerms:       d.PaymentTerms,
		PaymentLimitations: d.PaymentLimitations,
		CreatedAt:          u.formatTime(d.CreatedAt),
		UpdatedAt:          u.formatTime(d.UpdatedAt),
	}
	if client.PhoneNumber != nil {
		r.ClientPhone = strconv.FormatInt(*client.PhoneNumber, 10)
	}
	if vehicle.Status != nil {
		r.VehicleStatus = *vehicle.Status
	}
	if d.Observations != nil {
		r.Observations = *d.Observations
	}
	return r
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (u *ContractReportUseCase) formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(u.location).Format(reportDateTimeLayout)
}

func periodText(startDate, endDate *time.Time) string {
	switch {
	case startDate == nil && endDate == nil:
		return "All records"
	case startDate == nil:
		return "Up to " + endDate.Format(reportDateLayout)
	case endDate == nil:
		return "From " + startDate.Format(reportDateLayout)
	default:
		return startDate.Format(reportDateLayout) + " - " + endDate.Format(reportDateLayout)
	}
}

func labelOr(label, fallback string) string {
	if label != "" {
		return label
	}
	return fallback
}
