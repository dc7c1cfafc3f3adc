package routes

import (
	"autocare_api/internal/adapter/http/handlers"
	"autocare_api/internal/adapter/http/middleware"
	"autocare_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", middleware.RequireRole(entities.RoleCustomer, entities.RoleTechnician), orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", middleware.RequireRole(entities.RoleSupplier), orderHandler.UpdateStatus)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", paymentHandler.GetPayment)
	}
}
