package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	request "autocare_api/internal/adapter/http/dto/request"
	response "autocare_api/internal/adapter/http/dto/response"
	"autocare_api/internal/domain/entities"
	"autocare_api/internal/domain/lifecycle"
	"autocare_api/internal/usecase"
	"autocare_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for form fields and boundaries around the file part.
const multipartOverhead = 1 << 20

// JobHandler handles HTTP requests for service jobs.
//
// Handlers only translate HTTP into use case calls; who may run which command is
// decided by the lifecycle package.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob godoc
// @Summary      Create a service request
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateJobRequest  true  "Job"
// @Success      201   {object}  response.JobResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[job][handler] create invalid payload actor_id=%s err=%v", actor.ID, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), actor, payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// ListJobs godoc
// @Summary      List jobs visible to the caller
// @Tags         jobs
// @Produce      json
// @Param        status         query     string  false  "Status filter"
// @Param        customer_id    query     string  false  "Customer filter (admin)"
// @Param        technician_id  query     string  false  "Technician filter"
// @Param        limit          query     int     false  "Max results"
// @Success      200  {array}   response.JobResponse
// @Security     Bearer
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var query request.JobListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	jobs, err := h.usecase.List(c.Request.Context(), actor, interfaces.JobFilter{
		Status:       entities.JobStatus(strings.ToLower(strings.TrimSpace(query.Status))),
		CustomerID:   query.CustomerID,
		TechnicianID: query.TechnicianID,
		Limit:        query.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// GetJob godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.JobResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	job, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// History returns the status changes of a job. A broken hash chain is reported with
// intact=false instead of hiding the entries.
//
// @Summary      Job status history
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.HistoryResponse
// @Security     Bearer
// @Router       /jobs/{id}/history [get]
func (h *JobHandler) History(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id := c.Param("id")
	entries, err := h.usecase.History(c.Request.Context(), actor, id)
	if err != nil && !errors.Is(err, usecase.ErrHistoryTampered) {
		respondError(c, err)
		return
	}
	if err != nil {
		log.Printf("[job][handler] history tampered job_id=%s err=%v", id, err)
	}
	c.JSON(http.StatusOK, response.FromHistory(id, entries, err == nil))
}

// Accept godoc
// @Summary      Technician accepts a pending job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true   "Job ID"
// @Param        body  body      request.AcceptJobRequest  false  "Technician details"
// @Success      200   {object}  response.JobResponse
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /jobs/{id}/accept [patch]
func (h *JobHandler) Accept(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.AcceptJobRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	job, err := h.usecase.Accept(c.Request.Context(), actor, c.Param("id"), payload.ToCommand())
	h.respondJob(c, job, err)
}

// Arrive godoc
// @Summary      Technician arrived at the vehicle
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.JobResponse
// @Security     Bearer
// @Router       /jobs/{id}/arrive [patch]
func (h *JobHandler) Arrive(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	job, err := h.usecase.Arrive(c.Request.Context(), actor, c.Param("id"))
	h.respondJob(c, job, err)
}

// SendQuote godoc
// @Summary      Send a quote to the customer
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Job ID"
// @Param        body  body      request.ChargeRequest  true  "Quote"
// @Success      200   {object}  response.JobResponse
// @Security     Bearer
// @Router       /jobs/{id}/quote [post]
func (h *JobHandler) SendQuote(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	job, err := h.usecase.SendQuote(c.Request.Context(), actor, c.Param("id"), payload.ToQuote())
	h.respondJob(c, job, err)
}

// RespondQuote godoc
// @Summary      Customer approves or rejects the quote
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Job ID"
// @Param        body  body      request.QuoteResponseRequest  true  "Decision"
// @Success      200   {object}  response.JobResponse
// @Security     Bearer
// @Router       /jobs/{id}/quote/response [patch]
func (h *JobHandler) RespondQuote(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.QuoteResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		respondError(c, err)
		return
	}
	job, err := h.usecase.RespondQuote(c.Request.Context(), actor, c.Param("id"), cmd)
	h.respondJob(c, job, err)
}

// SubmitPartRequest godoc
// @Summary      Order parts from a supplier for the job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Job ID"
// @Param        body  body      request.PartRequestRequest  true  "Part request"
// @Success      201   {object}  response.PartRequestResponse
// @Security     Bearer
// @Router       /jobs/{id}/parts-request [post]
func (h *JobHandler) SubmitPartRequest(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.PartRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	job, order, err := h.usecase.SubmitPartRequest(c.Request.Context(), actor, c.Param("id"), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.PartRequestResponse{Job: response.FromJob(job), Order: response.FromOrder(order)})
}

// SendBill godoc
// @Summary      Send the final bill
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Job ID"
// @Param        body  body      request.ChargeRequest  true  "Bill"
// @Success      200   {object}  response.JobResponse
// @Security     Bearer
// @Router       /jobs/{id}/bill [post]
func (h *JobHandler) SendBill(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	job, err := h.usecase.SendBill(c.Request.Context(), actor, c.Param("id"), payload.ToBill())
	h.respondJob(c, job, err)
}

// RespondBill approves or rejects the bill. Approving with payment_method=online charges
// the bill through the payment provider before the job completes.
//
// @Summary      Customer answers the bill
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Job ID"
// @Param        body  body      request.BillResponseRequest  true  "Decision and payment"
// @Success      200   {object}  response.JobResponse
// @Failure      402   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /jobs/{id}/bill/response [patch]
func (h *JobHandler) RespondBill(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.BillResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[job][handler] respond_bill invalid payload job_id=%s err=%v", c.Param("id"), err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	cmd, paymentPayload, err := payload.ToCommand()
	if err != nil {
		respondError(c, err)
		return
	}
	job, err := h.usecase.RespondBill(c.Request.Context(), actor, c.Param("id"), cmd, paymentPayload)
	h.respondJob(c, job, err)
}

// ConfirmCashPayment godoc
// @Summary      Technician confirms cash collection
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.JobResponse
// @Security     Bearer
// @Router       /jobs/{id}/bill/cash-collected [patch]
func (h *JobHandler) ConfirmCashPayment(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	job, err := h.usecase.ConfirmCashPayment(c.Request.Context(), actor, c.Param("id"))
	h.respondJob(c, job, err)
}

// Cancel godoc
// @Summary      Cancel a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true   "Job ID"
// @Param        body  body      request.CancelJobRequest  false  "Reason"
// @Success      200   {object}  response.JobResponse
// @Security     Bearer
// @Router       /jobs/{id}/cancel [patch]
func (h *JobHandler) Cancel(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.CancelJobRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	job, err := h.usecase.Cancel(c.Request.Context(), actor, c.Param("id"), payload.Reason)
	h.respondJob(c, job, err)
}

// UpdateStatus godoc
// @Summary      Move a job along the status graph (admin)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Job ID"
// @Param        body  body      request.StatusUpdateRequest  true  "Target status"
// @Success      200   {object}  response.JobResponse
// @Security     Bearer
// @Router       /jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	target := entities.JobStatus(strings.ToLower(strings.TrimSpace(payload.Status)))
	job, err := h.usecase.UpdateStatus(c.Request.Context(), actor, c.Param("id"), target)
	h.respondJob(c, job, err)
}

// AddAttachment uploads a photo or voice note (multipart fields "kind" and "file").
//
// @Summary      Attach a photo or voice note
// @Tags         jobs
// @Accept       mpfd
// @Produce      json
// @Param        id    path      string  true  "Job ID"
// @Param        kind  formData  string  true  "photo or voice_note"
// @Param        file  formData  file    true  "File"
// @Success      200   {object}  response.JobResponse
// @Failure      413   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /jobs/{id}/attachments [post]
func (h *JobHandler) AddAttachment(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id := c.Param("id")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, usecase.MaxAttachmentSize+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, usecase.ErrAttachmentTooLarge)
			return
		}
		log.Printf("[job][handler] attachment missing file job_id=%s err=%v", id, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.WithMessage("file is required").ToHTTPError())
		return
	}
	kind := lifecycle.AttachmentKind(strings.ToLower(strings.TrimSpace(c.PostForm("kind"))))
	if !kind.Valid() {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.WithMessage("kind must be photo or voice_note").ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	job, err := h.usecase.AddAttachment(c.Request.Context(), actor, id, usecase.Attachment{
		Kind:        kind,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	h.respondJob(c, job, err)
}

func (h *JobHandler) respondJob(c *gin.Context, job entities.Job, err error) {
	if err != nil {
		log.Printf("[job][handler] %s %s failed job_id=%s err=%v", c.Request.Method, c.FullPath(), c.Param("id"), err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// bindOptionalJSON binds the body when there is one; an empty body leaves v untouched.
func bindOptionalJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
