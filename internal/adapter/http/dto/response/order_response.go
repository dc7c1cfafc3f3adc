package response

import (
	"time"

	"autocare_api/internal/domain/entities"
)

type OrderResponse struct {
	ID          string               `json:"id"`
	Type        string               `json:"type"`
	RequesterID string               `json:"requester_id"`
	SupplierID  string               `json:"supplier_id"`
	JobID       string               `json:"job_id,omitempty"`
	Items       []entities.OrderItem `json:"items"`
	Amount      float64              `json:"amount"`
	Status      string               `json:"status"`
	Urgency     string               `json:"urgency"`
	Location    string               `json:"location,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := o.Items
	if items == nil {
		items = []entities.OrderItem{}
	}
	return OrderResponse{
		ID:          o.ID,
		Type:        string(o.Type),
		RequesterID: o.RequesterID,
		SupplierID:  o.SupplierID,
		JobID:       o.JobID,
		Items:       items,
		Amount:      o.Amount,
		Status:      string(o.Status),
		Urgency:     string(o.Urgency),
		Location:    o.Location,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
