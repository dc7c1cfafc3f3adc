package interfaces

import (
	"context"

	"autocare_api/internal/domain/entities"
)

type OrderMutator func(current entities.Order) (entities.Order, error)

type OrderFilter struct {
	SupplierID  string
	RequesterID string
	JobID       string
	Type        entities.OrderType
	Status      entities.OrderStatus
	Limit       int
}

// IOrderRepository abstracts persistence for Order, with the same Update contract as
// IJobRepository.
type IOrderRepository interface {
	Create(ctx context.Context, order entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Update(ctx context.Context, id string, mutate OrderMutator) (entities.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]entities.Order, error)
}
