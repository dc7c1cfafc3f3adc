package handlers

import (
	"log"
	"net/http"
	"strings"

	request "autocare_api/internal/adapter/http/dto/request"
	response "autocare_api/internal/adapter/http/dto/response"
	"autocare_api/internal/domain/entities"
	"autocare_api/internal/usecase"
	"autocare_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for supplier orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Place a retail or wholesale order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateOrderRequest  true  "Order"
// @Success      201   {object}  response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] create invalid payload actor_id=%s err=%v", actor.ID, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	order, err := h.usecase.CreateOrder(c.Request.Context(), actor, payload.ToDraft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders godoc
// @Summary      List orders of the caller
// @Tags         orders
// @Produce      json
// @Param        status  query     string  false  "Status filter"
// @Param        type    query     string  false  "retail or wholesale"
// @Param        job_id  query     string  false  "Linked job"
// @Param        limit   query     int     false  "Max results"
// @Success      200     {array}   response.OrderResponse
// @Security     Bearer
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var query request.OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	orders, err := h.usecase.List(c.Request.Context(), actor, interfaces.OrderFilter{
		Status: entities.OrderStatus(strings.ToLower(strings.TrimSpace(query.Status))),
		Type:   entities.OrderType(strings.ToLower(strings.TrimSpace(query.Type))),
		JobID:  query.JobID,
		Limit:  query.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	order, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateStatus godoc
// @Summary      Supplier moves the order forward
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Order ID"
// @Param        body  body      request.StatusUpdateRequest  true  "Target status"
// @Success      200   {object}  response.OrderResponse
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	id := c.Param("id")
	target := entities.OrderStatus(strings.ToLower(strings.TrimSpace(payload.Status)))
	order, err := h.usecase.UpdateStatus(c.Request.Context(), actor, id, target)
	if err != nil {
		log.Printf("[order][handler] update-status failed order_id=%s target=%s err=%v", id, target, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}
