package routes

import (
	"gestao_terceiros/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathEvents    = "/events"
	PathCalendar  = "/calendar"
	PathReports   = "/reports"
	PathSuppliers = "/suppliers"
	PathDocuments = "/documents"
)

func addOperationRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.ServiceOrderHandler,
	ledgerHandler *handlers.LedgerHandler,
	supplierHandler *handlers.SupplierHandler,
	documentHandler *handlers.DocumentHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Submit)
		orders.GET("", orderHandler.List)
		orders.GET("/:order_id", orderHandler.GetByID)
		orders.PATCH("/:order_id/line-lead", orderHandler.DecideLineLead)
		orders.POST("/:order_id/document", orderHandler.AttachDocument)
		orders.PATCH("/:order_id/manager", orderHandler.DecideManager)
		orders.GET("/:order_id/order", orderHandler.GetOrder)
	}

	events := rg.Group(PathEvents)
	{
		events.POST("", ledgerHandler.CreateEvent)
		events.GET("", ledgerHandler.ListEvents)
		events.GET("/:event_id", ledgerHandler.GetEvent)
		events.PUT("/:event_id", ledgerHandler.UpdateEvent)
		events.DELETE("/:event_id", ledgerHandler.DeleteEvent)
		events.PATCH("/:event_id/forecast", ledgerHandler.RecordForecast)
		events.PATCH("/:event_id/actual", ledgerHandler.RecordActual)
		events.PATCH("/:event_id/delivery", ledgerHandler.RegisterDelivery)
	}

	calendar := rg.Group(PathCalendar)
	{
		calendar.POST("", ledgerHandler.AddCalendarEntry)
		calendar.GET("", ledgerHandler.ListCalendar)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/ledger", ledgerHandler.Aggregate)
		reports.GET("/outlook", ledgerHandler.ForecastOutlook)
	}

	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.POST("", supplierHandler.Register)
		suppliers.GET("", supplierHandler.List)
		suppliers.GET("/:supplier_id", supplierHandler.GetByID)
		suppliers.GET("/:supplier_id/indicators", ledgerHandler.Indicators)
	}

	documents := rg.Group(PathDocuments)
	{
		documents.POST("", documentHandler.Upload)
		documents.GET("/url", documentHandler.PresignedURL)
	}
}
