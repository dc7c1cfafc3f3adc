package lifecycle

import (
	"strings"
	"time"

	"autocare_api/internal/domain/entities"
)

// OrderDraft carries the caller supplied fields of a new order.
type OrderDraft struct {
	Type       entities.OrderType
	SupplierID string
	JobID      string
	Items      []entities.OrderItem
	Urgency    entities.Urgency
	Location   string
}

var orderTransitions = map[entities.OrderStatus][]entities.OrderStatus{
	entities.OrderStatusPending:  {entities.OrderStatusAccepted, entities.OrderStatusRejected},
	entities.OrderStatusAccepted: {entities.OrderStatusShipped},
	entities.OrderStatusShipped:  {entities.OrderStatusDelivered},
}

// NewOrder builds a pending order. Retail orders come from customers and wholesale
// orders from technicians.
func NewOrder(id string, draft OrderDraft, actor entities.Actor, now time.Time) (entities.Order, error) {
	if draft.Type == "" {
		draft.Type = entities.OrderTypeRetail
	}
	switch draft.Type {
	case entities.OrderTypeRetail:
		if actor.Role != entities.RoleCustomer && !actor.IsAdmin() {
			return entities.Order{}, forbidden("create_order", "retail orders are placed by customers")
		}
	case entities.OrderTypeWholesale:
		if actor.Role != entities.RoleTechnician && !actor.IsAdmin() {
			return entities.Order{}, forbidden("create_order", "wholesale orders are placed by technicians")
		}
	default:
		return entities.Order{}, invalid("type", "must be retail or wholesale")
	}
	if actor.ID == "" {
		return entities.Order{}, forbidden("create_order", "missing actor")
	}
	if strings.TrimSpace(id) == "" {
		return entities.Order{}, invalid("id", "is required")
	}
	supplierID := strings.TrimSpace(draft.SupplierID)
	if supplierID == "" {
		return entities.Order{}, invalid("supplier_id", "is required")
	}
	urgency := draft.Urgency
	if urgency == "" {
		urgency = entities.UrgencyNormal
	}
	if urgency != entities.UrgencyNormal && urgency != entities.UrgencyUrgent {
		return entities.Order{}, invalid("urgency", "must be normal or urgent")
	}
	items, err := normalizeOrderItems(draft.Items)
	if err != nil {
		return entities.Order{}, err
	}

	now = now.UTC()
	return entities.Order{
		ID:          strings.TrimSpace(id),
		Type:        draft.Type,
		RequesterID: actor.ID,
		SupplierID:  supplierID,
		JobID:       strings.TrimSpace(draft.JobID),
		Items:       items,
		Amount:      OrderAmount(items),
		Status:      entities.OrderStatusPending,
		Urgency:     urgency,
		Location:    strings.TrimSpace(draft.Location),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ValidOrderTransition reports whether an order may move from one status to the other.
func ValidOrderTransition(from, to entities.OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionOrder moves order to target. Only the order's supplier or an admin may do it.
func TransitionOrder(order entities.Order, target entities.OrderStatus, actor entities.Actor, now time.Time) (entities.Order, error) {
	if !target.Valid() {
		return entities.Order{}, invalid("status", "is not a known order status")
	}
	if !ValidOrderTransition(order.Status, target) {
		return entities.Order{}, &TransitionError{Command: "update_order_status", From: string(order.Status), Reason: "cannot move to " + string(target)}
	}
	if actor.ID == "" {
		return entities.Order{}, forbidden("update_order_status", "missing actor")
	}
	if !actor.IsAdmin() && (actor.Role != entities.RoleSupplier || actor.ID != order.SupplierID) {
		return entities.Order{}, forbidden("update_order_status", "not the order's supplier")
	}
	next := order.Clone()
	next.Status = target
	next.UpdatedAt = now.UTC()
	return next, nil
}
