package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	request "purchase_sale/internal/adapter/http/dto/request"
	response "purchase_sale/internal/adapter/http/dto/response"
	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase"
	"purchase_sale/internal/usecase/interfaces"
	"purchase_sale/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
	errInvalidRequest         = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errContractNotFound       = pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
)

// rejectionCodes gives each rejected-input kind its error code.
var rejectionCodes = []struct {
	kind error
	code string
}{
	{usecase.ErrMissingReference, "MISSING_REFERENCE"},
	{usecase.ErrClientNotFound, "CLIENT_NOT_FOUND"},
	{usecase.ErrUserNotFound, "USER_NOT_FOUND"},
	{usecase.ErrVehicleNotFound, "VEHICLE_NOT_FOUND"},
	{usecase.ErrInvalidVehicleData, "INVALID_VEHICLE_DATA"},
	{usecase.ErrVehicleDataNotAllowed, "VEHICLE_DATA_NOT_ALLOWED"},
	{usecase.ErrInvalidSalePrice, "INVALID_SALE_PRICE"},
	{usecase.ErrInvalidPurchasePrice, "INVALID_PURCHASE_PRICE"},
	{usecase.ErrPurchasePriceUnavailable, "PURCHASE_PRICE_UNAVAILABLE"},
	{usecase.ErrInvalidPaymentData, "INVALID_PAYMENT_DATA"},
	{usecase.ErrInvalidContractState, "INVALID_CONTRACT_STATE"},
	{usecase.ErrDuplicatePurchase, "DUPLICATE_PURCHASE"},
	{usecase.ErrNoAvailableStock, "NO_AVAILABLE_STOCK"},
	{usecase.ErrDuplicateSale, "DUPLICATE_SALE"},
	{usecase.ErrContractTypeChange, "CONTRACT_TYPE_CHANGE"},
}

// ContractHandler serves the purchase/sale contract API.
type ContractHandler struct {
	contracts usecase.IContractUseCase
	details   usecase.IContractDetailUseCase
	reports   usecase.IContractReportUseCase
	pageSize  int
	now       func() time.Time
}

func NewContractHandler(
	contracts usecase.IContractUseCase,
	details usecase.IContractDetailUseCase,
	reports usecase.IContractReportUseCase,
	pageSize int,
) *ContractHandler {
	if pageSize <= 0 {
		pageSize = entities.DefaultPageSize
	}
	return &ContractHandler{
		contracts: contracts,
		details:   details,
		reports:   reports,
		pageSize:  pageSize,
		now:       time.Now,
	}
}

func (h *ContractHandler) Create(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Infof("[contract][handler] create invalid payload err=%v", err)
		writeError(c, errInvalidContractPayload.WithDetails(err.Error()))
		return
	}

	created, err := h.contracts.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Infof("[contract][handler] create failed err=%v", err)
		writeError(c, mapContractError(err))
		return
	}
	log.Infof("[contract][handler] create success id=%d type=%s vehicle_id=%d", created.ID, created.ContractType, created.VehicleID)

	c.JSON(http.StatusCreated, response.FromContract(created))
}

func (h *ContractHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	contract, found, err := h.contracts.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	if !found {
		writeError(c, errContractNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) GetAll(c *gin.Context) {
	contracts, err := h.contracts.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func (h *ContractHandler) GetAllDetailed(c *gin.Context) {
	contracts, err := h.contracts.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	details, err := h.details.ToDetails(c.Request.Context(), contracts)
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContractDetails(details))
}

func (h *ContractHandler) GetPage(c *gin.Context) {
	page, ok := h.pathPage(c)
	if !ok {
		return
	}

	result, err := h.contracts.FindAllPaged(c.Request.Context(), page)
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContractPage(result))
}

func (h *ContractHandler) GetPageDetailed(c *gin.Context) {
	page, ok := h.pathPage(c)
	if !ok {
		return
	}

	result, err := h.contracts.FindAllPaged(c.Request.Context(), page)
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	h.writeDetailPage(c, result)
}

// Search filters contracts by the query parameters and returns a detailed page.
func (h *ContractHandler) Search(c *gin.Context) {
	var query request.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}
	criteria, err := query.ToCriteria()
	if err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	result, err := h.contracts.Search(c.Request.Context(), criteria, query.PageRequest(h.pageSize))
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	h.writeDetailPage(c, result)
}

func (h *ContractHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Infof("[contract][handler] update invalid payload id=%d err=%v", id, err)
		writeError(c, errInvalidContractPayload.WithDetails(err.Error()))
		return
	}

	updated, found, err := h.contracts.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		log.Infof("[contract][handler] update failed id=%d err=%v", id, err)
		writeError(c, mapContractError(err))
		return
	}
	if !found {
		writeError(c, errContractNotFound)
		return
	}
	log.Infof("[contract][handler] update success id=%d status=%s", updated.ID, updated.ContractStatus)

	c.JSON(http.StatusOK, response.FromContract(updated))
}

func (h *ContractHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.contracts.DeleteByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	if !deleted {
		writeError(c, errContractNotFound)
		return
	}
	log.Infof("[contract][handler] delete success id=%d", id)
	c.Status(http.StatusNoContent)
}

func (h *ContractHandler) GetByClientID(c *gin.Context) {
	h.listByReference(c, "clientId", h.contracts.FindByClientID)
}

func (h *ContractHandler) GetByUserID(c *gin.Context) {
	h.listByReference(c, "userId", h.contracts.FindByUserID)
}

func (h *ContractHandler) GetByVehicleID(c *gin.Context) {
	h.listByReference(c, "vehicleId", h.contracts.FindByVehicleID)
}

const (
	contentTypeCSV   = "text/csv"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF   = "application/pdf"
)

// ExportCSV streams the contracts created between the optional startDate
// and endDate query parameters.
func (h *ContractHandler) ExportCSV(c *gin.Context) {
	h.exportReport(c, "csv", contentTypeCSV, h.reports.GenerateCSV)
}

func (h *ContractHandler) ExportExcel(c *gin.Context) {
	h.exportReport(c, "xlsx", contentTypeExcel, h.reports.GenerateExcel)
}

func (h *ContractHandler) ExportPDF(c *gin.Context) {
	h.exportReport(c, "pdf", contentTypePDF, h.reports.GeneratePDF)
}

func (h *ContractHandler) exportReport(
	c *gin.Context,
	extension, contentType string,
	generate func(ctx context.Context, startDate, endDate *time.Time) ([]byte, error),
) {
	start, err := request.ParseDate(c.Query("startDate"))
	if err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}
	end, err := request.ParseDate(c.Query("endDate"))
	if err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}
	if start != nil && end != nil && end.Before(*start) {
		writeError(c, errInvalidRequest.WithDetails("endDate must not be before startDate"))
		return
	}

	report, err := generate(c.Request.Context(), start, end)
	if err != nil {
		log.Errorf("[contract][handler] %s report failed err=%v", extension, err)
		writeError(c, mapContractError(err))
		return
	}

	filename := fmt.Sprintf("purchase-sale-report-%s.%s", h.now().Format("2006-01-02"), extension)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, report)
}

func (h *ContractHandler) listByReference(
	c *gin.Context,
	param string,
	finder func(ctx context.Context, id int64) ([]entities.Contract, error),
) {
	id, ok := pathID(c, param)
	if !ok {
		return
	}

	contracts, err := finder(c.Request.Context(), id)
	if err != nil {
		log.Infof("[contract][handler] list by %s failed id=%d err=%v", param, id, err)
		writeError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func (h *ContractHandler) writeDetailPage(c *gin.Context, page entities.Page[entities.Contract]) {
	details, err := h.details.ToDetails(c.Request.Context(), page.Content)
	if err != nil {
		writeError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, entities.MapPage(page, response.FromContractDetails(details)))
}

func (h *ContractHandler) pathPage(c *gin.Context) (entities.PageRequest, bool) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 0 {
		writeError(c, errInvalidRequest.WithDetails("page must be a non-negative integer"))
		return entities.PageRequest{}, false
	}
	return entities.PageRequest{Page: page, Size: h.pageSize}, true
}

func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, errInvalidRequest.WithDetails(param+" must be a positive integer"))
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapContractError(err error) *pkg.AppError {
	var (
		rejected *usecase.RejectedInputError
		upstream *interfaces.UpstreamError
	)
	switch {
	case errors.As(err, &rejected):
		code := "INVALID_REQUEST"
		for _, rc := range rejectionCodes {
			if errors.Is(err, rc.kind) {
				code = rc.code
				break
			}
		}
		return pkg.NewDomainError(code, "Invalid request", err, http.StatusBadRequest).WithDetails(rejected.Reason)
	case errors.As(err, &upstream):
		log.WithFields(log.Fields{
			"service": upstream.Service,
			"status":  upstream.StatusCode,
		}).Warnf("[contract][handler] upstream failure operation=%s", upstream.Operation)
		return pkg.NewDomainError("UPSTREAM_ERROR", "A dependent service failed", err, http.StatusBadGateway).WithDetails(upstream.Body)
	default:
		log.WithError(err).Error("[contract][handler] internal error")
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
