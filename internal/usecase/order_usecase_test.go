package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/domain/lifecycle"
	"autocare_api/internal/usecase/interfaces"
	mock_interfaces "autocare_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixtureOrder(status entities.OrderStatus, jobID string) entities.Order {
	now := time.Now().UTC()
	return entities.Order{
		ID:          "ord-1",
		Type:        entities.OrderTypeWholesale,
		RequesterID: "tech-1",
		SupplierID:  "sup-1",
		JobID:       jobID,
		Items:       []entities.OrderItem{{Name: "pads", Quantity: 2, UnitPrice: 40, Total: 80}},
		Amount:      80,
		Status:      status,
		Urgency:     entities.UrgencyNormal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func expectOrderUpdate(repo *mock_interfaces.MockIOrderRepository, stored entities.Order) {
	repo.EXPECT().Update(gomock.Any(), stored.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, mutate interfaces.OrderMutator) (entities.Order, error) {
			next, err := mutate(stored.Clone())
			if err != nil {
				return entities.Order{}, err
			}
			next.Version = stored.Version + 1
			return next, nil
		},
	)
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("job orders come from part requests", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), testTechnician, lifecycle.OrderDraft{
			Type: entities.OrderTypeWholesale, SupplierID: "sup-1", JobID: "job-1",
			Items: []entities.OrderItem{{Name: "pads", Quantity: 1}},
		})
		if !errors.Is(err, lifecycle.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("retail success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.Type != entities.OrderTypeRetail || o.RequesterID != "cust-1" || o.Amount != 30 {
					t.Fatalf("unexpected order: %+v", o)
				}
				return o, nil
			},
		)

		_, err := uc.CreateOrder(context.Background(), testCustomer, lifecycle.OrderDraft{
			SupplierID: "sup-1",
			Items:      []entities.OrderItem{{Name: "wiper", Quantity: 2, UnitPrice: 15}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), testSupplier, "", entities.OrderStatusAccepted)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().Update(gomock.Any(), "ord-9", gomock.Any()).Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), testSupplier, "ord-9", entities.OrderStatusAccepted)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("skipping shipped is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		expectOrderUpdate(repo, fixtureOrder(entities.OrderStatusAccepted, ""))

		_, err := uc.UpdateStatus(context.Background(), testSupplier, "ord-1", entities.OrderStatusDelivered)
		if !errors.Is(err, lifecycle.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("delivery resumes the waiting job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		events := mock_interfaces.NewMockIJobEventPublisher(ctrl)
		uc := NewOrderUseCase(repo, jobs, events)

		job := fixtureJob(t,
			lifecycle.AcceptJob{},
			lifecycle.ArriveJob{},
			lifecycle.SendQuote{Items: []entities.LineItem{{Total: 80}}},
			lifecycle.RespondQuote{Decision: lifecycle.DecisionApprove},
		)
		res, err := lifecycle.Apply(job, lifecycle.SubmitPartRequest{
			OrderID: "ord-1", SupplierID: "sup-1", Items: []entities.OrderItem{{Name: "pads", Quantity: 2, UnitPrice: 40}},
		}, testTechnician, time.Now())
		if err != nil {
			t.Fatalf("fixture: %v", err)
		}

		expectOrderUpdate(repo, fixtureOrder(entities.OrderStatusShipped, "job-1"))
		expectUpdate(jobs, res.Job)
		events.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(entities.JobEvent{})).Do(
			func(_ context.Context, ev entities.JobEvent) {
				if ev.JobID != "job-1" || ev.Status != entities.JobStatusInProgress {
					t.Fatalf("unexpected event: %+v", ev)
				}
			},
		)

		order, err := uc.UpdateStatus(context.Background(), testSupplier, "ord-1", entities.OrderStatusDelivered)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != entities.OrderStatusDelivered {
			t.Fatalf("expected delivered, got %s", order.Status)
		}
	})

	t.Run("delivery of an unrelated job order is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewOrderUseCase(repo, jobs, nil)

		expectOrderUpdate(repo, fixtureOrder(entities.OrderStatusShipped, "job-1"))
		expectUpdate(jobs, fixtureJob(t, lifecycle.AcceptJob{}))

		order, err := uc.UpdateStatus(context.Background(), testSupplier, "ord-1", entities.OrderStatusDelivered)
		if err != nil || order.Status != entities.OrderStatusDelivered {
			t.Fatalf("unexpected result: %+v %v", order, err)
		}
	})
}

func TestOrderUseCase_Reads(t *testing.T) {
	t.Run("GetByID only for parties of the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(fixtureOrder(entities.OrderStatusPending, ""), nil).Times(2)

		if _, err := uc.GetByID(context.Background(), testSupplier, "ord-1"); err != nil {
			t.Fatalf("supplier should see the order: %v", err)
		}
		if _, err := uc.GetByID(context.Background(), testCustomer, "ord-1"); !errors.Is(err, ErrNotVisible) {
			t.Fatalf("expected ErrNotVisible, got %v", err)
		}
	})

	t.Run("List scopes suppliers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any(), interfaces.OrderFilter{SupplierID: "sup-1", Status: entities.OrderStatusPending, Limit: defaultListLimit}).
			Return([]entities.Order{fixtureOrder(entities.OrderStatusPending, "")}, nil)

		orders, err := uc.List(context.Background(), testSupplier, interfaces.OrderFilter{Status: entities.OrderStatusPending})
		if err != nil || len(orders) != 1 {
			t.Fatalf("unexpected result: %v %v", orders, err)
		}
	})

	t.Run("List rejects unknown status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.List(context.Background(), testAdmin, interfaces.OrderFilter{Status: "lost"})
		if !errors.Is(err, lifecycle.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
