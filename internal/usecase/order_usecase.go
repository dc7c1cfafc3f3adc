package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/domain/lifecycle"
	"autocare_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound  = fmt.Errorf("order %w", lifecycle.ErrNotFound)
	ErrInvalidOrderID = errors.New("invalid order id")

	errJobNotWaitingForParts = errors.New("job is not waiting for this order")
)

// systemActor moves jobs on behalf of supplier events.
var systemActor = entities.Actor{ID: "system", Role: entities.RoleAdmin}

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, actor entities.Actor, draft lifecycle.OrderDraft) (entities.Order, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, id string, target entities.OrderStatus) (entities.Order, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Order, error)
	List(ctx context.Context, actor entities.Actor, filter interfaces.OrderFilter) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	jobRepo interfaces.IJobRepository
	events  interfaces.IJobEventPublisher
	now     func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, jobRepo interfaces.IJobRepository, events interfaces.IJobEventPublisher) *OrderUseCase {
	return &OrderUseCase{repo: repo, jobRepo: jobRepo, events: events, now: time.Now}
}

// CreateOrder places a standalone order. Orders tied to a job are only raised through
// the job's part request.
func (u *OrderUseCase) CreateOrder(ctx context.Context, actor entities.Actor, draft lifecycle.OrderDraft) (entities.Order, error) {
	if strings.TrimSpace(draft.JobID) != "" {
		return entities.Order{}, &lifecycle.ValidationError{Field: "job_id", Reason: "is set by part requests only"}
	}
	order, err := lifecycle.NewOrder(uuid.NewString(), draft, actor, u.now())
	if err != nil {
		log.Printf("[order][usecase] create rejected actor_id=%s err=%v", actor.ID, err)
		return entities.Order{}, err
	}
	created, err := u.repo.Create(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] create failed order_id=%s err=%v", order.ID, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s type=%s supplier_id=%s amount=%.2f", created.ID, created.Type, created.SupplierID, created.Amount)
	return created, nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, id string, target entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	log.Printf("[order][usecase] update-status start order_id=%s target=%s actor_id=%s", id, target, actor.ID)

	updated, err := u.repo.Update(ctx, id, func(current entities.Order) (entities.Order, error) {
		return lifecycle.TransitionOrder(current, target, actor, u.now())
	})
	if err != nil {
		log.Printf("[order][usecase] update-status failed order_id=%s err=%v", id, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] update-status success order_id=%s status=%s", updated.ID, updated.Status)

	if updated.Status == entities.OrderStatusDelivered && updated.JobID != "" {
		u.resumeJob(ctx, updated)
	}
	return updated, nil
}

// resumeJob moves the job waiting on a delivered order from parts_ordered to in_progress.
// The order update already happened, so failures here are only logged.
func (u *OrderUseCase) resumeJob(ctx context.Context, order entities.Order) {
	if u.jobRepo == nil {
		return
	}
	job, err := u.jobRepo.Update(ctx, order.JobID, func(current entities.Job) (entities.Job, error) {
		if current.Status != entities.JobStatusPartsOrdered || current.PartsOrderID != order.ID {
			return entities.Job{}, errJobNotWaitingForParts
		}
		res, err := lifecycle.Apply(current, lifecycle.UpdateStatus{Target: entities.JobStatusInProgress}, systemActor, u.now())
		if err != nil {
			return entities.Job{}, err
		}
		return res.Job, nil
	})
	switch {
	case errors.Is(err, errJobNotWaitingForParts):
		log.Printf("[order][usecase] delivered order does not resume job order_id=%s job_id=%s", order.ID, order.JobID)
		return
	case err != nil:
		log.Printf("[order][usecase] resume job failed order_id=%s job_id=%s err=%v", order.ID, order.JobID, err)
		return
	case job.ID == "":
		log.Printf("[order][usecase] resume job not found order_id=%s job_id=%s", order.ID, order.JobID)
		return
	}
	log.Printf("[order][usecase] job resumed order_id=%s job_id=%s status=%s", order.ID, job.ID, job.Status)
	publishJobEvent(ctx, u.events, entities.JobEventUpdated, string(lifecycle.KindUpdateStatus), job, u.now())
}

func (u *OrderUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !order.VisibleTo(actor) {
		return entities.Order{}, ErrNotVisible
	}
	return order, nil
}

func (u *OrderUseCase) List(ctx context.Context, actor entities.Actor, filter interfaces.OrderFilter) ([]entities.Order, error) {
	switch actor.Role {
	case entities.RoleAdmin:
	case entities.RoleSupplier:
		filter.SupplierID = actor.ID
	case entities.RoleCustomer, entities.RoleTechnician:
		filter.RequesterID = actor.ID
	default:
		return nil, ErrNotVisible
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, &lifecycle.ValidationError{Field: "status", Reason: "is not a known order status"}
	}
	filter.Limit = clampLimit(filter.Limit)

	orders, err := u.repo.List(ctx, filter)
	if err != nil {
		log.Printf("[order][usecase] list failed actor_id=%s err=%v", actor.ID, err)
		return nil, err
	}
	return orders, nil
}
