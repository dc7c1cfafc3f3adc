package interfaces

import (
	"context"

	"autocare_api/internal/domain/entities"
)

// IPaymentRepository keeps the payment ledger of bills.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)
}
