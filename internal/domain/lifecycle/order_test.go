package lifecycle

import (
	"testing"

	"autocare_api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var supplier = entities.Actor{ID: "sup-1", Role: entities.RoleSupplier}

func newRetailOrder(t *testing.T) entities.Order {
	t.Helper()
	order, err := NewOrder("ord-1", OrderDraft{
		SupplierID: "sup-1",
		Items:      []entities.OrderItem{{Name: "wiper", Quantity: 2, UnitPrice: 15}, {Name: "bulb", Quantity: 1, Total: 7.5}},
		Location:   "Main St 10",
	}, customer, baseTime)
	require.NoError(t, err)
	return order
}

func TestNewOrder(t *testing.T) {
	t.Run("retail defaults", func(t *testing.T) {
		order := newRetailOrder(t)
		assert.Equal(t, entities.OrderTypeRetail, order.Type)
		assert.Equal(t, entities.OrderStatusPending, order.Status)
		assert.Equal(t, entities.UrgencyNormal, order.Urgency)
		assert.Equal(t, "cust-1", order.RequesterID)
		assert.Equal(t, 37.5, order.Amount)
	})

	t.Run("wholesale needs a technician", func(t *testing.T) {
		_, err := NewOrder("ord-1", OrderDraft{
			Type:       entities.OrderTypeWholesale,
			SupplierID: "sup-1",
			Items:      []entities.OrderItem{{Name: "pads", Quantity: 1, UnitPrice: 10}},
		}, customer, baseTime)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("item validation", func(t *testing.T) {
		cases := map[string][]entities.OrderItem{
			"empty":         nil,
			"no name":       {{Quantity: 1, UnitPrice: 1}},
			"zero quantity": {{Name: "x", UnitPrice: 1}},
			"negative":      {{Name: "x", Quantity: 1, UnitPrice: -1}},
		}
		for name, items := range cases {
			_, err := NewOrder("ord-1", OrderDraft{SupplierID: "sup-1", Items: items}, customer, baseTime)
			assert.ErrorIs(t, err, ErrValidation, name)
		}
	})

	t.Run("supplier required", func(t *testing.T) {
		_, err := NewOrder("ord-1", OrderDraft{Items: []entities.OrderItem{{Name: "x", Quantity: 1}}}, customer, baseTime)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "supplier_id", verr.Field)
	})
}

func TestTransitionOrder(t *testing.T) {
	t.Run("linear flow", func(t *testing.T) {
		order := newRetailOrder(t)
		for _, target := range []entities.OrderStatus{entities.OrderStatusAccepted, entities.OrderStatusShipped, entities.OrderStatusDelivered} {
			next, err := TransitionOrder(order, target, supplier, baseTime)
			require.NoError(t, err)
			assert.Equal(t, target, next.Status)
			order = next
		}
		assert.True(t, order.Status.IsTerminal())
	})

	t.Run("no skipping", func(t *testing.T) {
		order := newRetailOrder(t)
		_, err := TransitionOrder(order, entities.OrderStatusDelivered, supplier, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		order, err := TransitionOrder(newRetailOrder(t), entities.OrderStatusRejected, supplier, baseTime)
		require.NoError(t, err)
		_, err = TransitionOrder(order, entities.OrderStatusAccepted, supplier, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("only the supplier or an admin", func(t *testing.T) {
		order := newRetailOrder(t)
		_, err := TransitionOrder(order, entities.OrderStatusAccepted, entities.Actor{ID: "sup-2", Role: entities.RoleSupplier}, baseTime)
		assert.ErrorIs(t, err, ErrForbidden)
		_, err = TransitionOrder(order, entities.OrderStatusAccepted, customer, baseTime)
		assert.ErrorIs(t, err, ErrForbidden)
		_, err = TransitionOrder(order, entities.OrderStatusAccepted, admin, baseTime)
		assert.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := TransitionOrder(newRetailOrder(t), "lost", supplier, baseTime)
		assert.ErrorIs(t, err, ErrValidation)
	})
}
