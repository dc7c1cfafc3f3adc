package entities

import "time"

// OrderStatus represents the supplier-side order flow:
// pending -> accepted|rejected, accepted -> shipped -> delivered.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusRejected || s == OrderStatusDelivered
}

// OrderType separates customer retail purchases from technician wholesale part requests.
type OrderType string

const (
	OrderTypeRetail    OrderType = "retail"
	OrderTypeWholesale OrderType = "wholesale"
)

type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyUrgent Urgency = "urgent"
)

type OrderItem struct {
	Name       string  `json:"name"`
	PartNumber string  `json:"part_number,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Total      float64 `json:"total"`
}

// Order is a supplier-fulfilled parts/product order.
//
// Storage model:
//   - PK: id
//   - GSI supplier_id-index: supplier_id
//
// JobID is set for wholesale orders raised from a job's part request.
type Order struct {
	ID          string      `json:"id"`
	Type        OrderType   `json:"type"`
	RequesterID string      `json:"requester_id"`
	SupplierID  string      `json:"supplier_id"`
	JobID       string      `json:"job_id,omitempty"`
	Items       []OrderItem `json:"items"`
	Amount      float64     `json:"amount"`
	Status      OrderStatus `json:"status"`
	Urgency     Urgency     `json:"urgency"`
	Location    string      `json:"location,omitempty"`
	Version     int64       `json:"version"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = append([]OrderItem(nil), o.Items...)
	}
	return out
}

// VisibleTo reports whether actor may read the order: its supplier, its requester or an admin.
func (o Order) VisibleTo(actor Actor) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	if actor.ID == "" {
		return false
	}
	return o.SupplierID == actor.ID || o.RequesterID == actor.ID
}
