package routes

import (
	"purchase_sale/internal/adapter/http/handlers"
	"purchase_sale/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPurchaseSales = "/purchase-sales"
)

func addContractRoutes(rg *gin.RouterGroup, h *handlers.ContractHandler, auth *middleware.AuthMiddleware) {
	read := auth.Require(middleware.PermissionRead)

	contracts := rg.Group(PathPurchaseSales)
	{
		contracts.POST("", auth.Require(middleware.PermissionCreate), h.Create)
		contracts.GET("", read, h.GetAll)
		contracts.GET("/detailed", read, h.GetAllDetailed)
		contracts.GET("/page/:page", read, h.GetPage)
		contracts.GET("/page/:page/detailed", read, h.GetPageDetailed)
		contracts.GET("/search", read, h.Search)
		contracts.GET("/report/csv", read, h.ExportCSV)
		contracts.GET("/report/excel", read, h.ExportExcel)
		contracts.GET("/report/pdf", read, h.ExportPDF)
		contracts.GET("/client/:clientId", read, h.GetByClientID)
		contracts.GET("/user/:userId", read, h.GetByUserID)
		contracts.GET("/vehicle/:vehicleId", read, h.GetByVehicleID)
		contracts.GET("/:id", read, h.GetByID)
		contracts.PUT("/:id", auth.Require(middleware.PermissionUpdate), h.Update)
		contracts.DELETE("/:id", auth.Require(middleware.PermissionDelete), h.Delete)
	}
}
