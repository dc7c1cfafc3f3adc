package handlers

import (
	"log"
	"net/http"

	response "autocare_api/internal/adapter/http/dto/response"
	"autocare_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the payment ledger of job bills. Charges themselves happen
// through the bill response of a job.

type PaymentHandler struct {
	usecase usecase.IBillPaymentUseCase
}

func NewPaymentHandler(uc usecase.IBillPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ListByJobID godoc
// @Summary      Payments recorded for a job
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {array}   response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /jobs/{id}/payments [get]
func (h *PaymentHandler) ListByJobID(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	jobID := c.Param("id")
	log.Printf("[payment][handler] list-by-job start job_id=%s", jobID)

	payments, err := h.usecase.ListByJobID(c.Request.Context(), actor, jobID)
	if err != nil {
		log.Printf("[payment][handler] list-by-job failed job_id=%s err=%v", jobID, err)
		respondError(c, err)
		return
	}
	log.Printf("[payment][handler] list-by-job success job_id=%s count=%d", jobID, len(payments))
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	payment, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", c.Param("id"), err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}
