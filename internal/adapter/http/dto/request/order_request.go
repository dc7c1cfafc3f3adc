package request

import (
	"strings"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/domain/lifecycle"
)

type CreateOrderRequest struct {
	Type       string             `json:"type"`
	SupplierID string             `json:"supplier_id" binding:"required"`
	Items      []OrderItemRequest `json:"items"`
	Urgency    string             `json:"urgency"`
	Location   string             `json:"location"`
}

func (r CreateOrderRequest) ToDraft() lifecycle.OrderDraft {
	return lifecycle.OrderDraft{
		Type:       entities.OrderType(strings.ToLower(strings.TrimSpace(r.Type))),
		SupplierID: r.SupplierID,
		Items:      toOrderItems(r.Items),
		Urgency:    entities.Urgency(strings.ToLower(strings.TrimSpace(r.Urgency))),
		Location:   r.Location,
	}
}

type OrderListQuery struct {
	Status string `form:"status"`
	Type   string `form:"type"`
	JobID  string `form:"job_id"`
	Limit  int    `form:"limit"`
}
