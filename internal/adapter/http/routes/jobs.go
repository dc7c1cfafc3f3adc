package routes

import (
	"autocare_api/internal/adapter/http/handlers"
	"autocare_api/internal/adapter/http/middleware"
	"autocare_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// addJobRoutes mounts the job lifecycle. Role guards here are a first filter; the
// lifecycle package still checks ownership of each command.
func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, paymentHandler *handlers.PaymentHandler) {
	customerOnly := middleware.RequireRole(entities.RoleCustomer)
	technicianOnly := middleware.RequireRole(entities.RoleTechnician)
	adminOnly := middleware.RequireRole()

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", customerOnly, jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.GET("/:id/history", jobHandler.History)

		jobs.PATCH("/:id/accept", technicianOnly, jobHandler.Accept)
		jobs.PATCH("/:id/arrive", technicianOnly, jobHandler.Arrive)
		jobs.POST("/:id/quote", technicianOnly, jobHandler.SendQuote)
		jobs.PATCH("/:id/quote/response", customerOnly, jobHandler.RespondQuote)
		jobs.POST("/:id/parts-request", technicianOnly, jobHandler.SubmitPartRequest)
		jobs.POST("/:id/bill", technicianOnly, jobHandler.SendBill)
		jobs.PATCH("/:id/bill/response", customerOnly, jobHandler.RespondBill)
		jobs.PATCH("/:id/bill/cash-collected", technicianOnly, jobHandler.ConfirmCashPayment)
		jobs.PATCH("/:id/cancel", jobHandler.Cancel)
		jobs.PATCH("/:id/status", adminOnly, jobHandler.UpdateStatus)
		jobs.POST("/:id/attachments", jobHandler.AddAttachment)

		jobs.GET("/:id/payments", paymentHandler.ListByJobID)
	}
}
