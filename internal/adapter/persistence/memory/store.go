// Package memory keeps jobs, orders and payments in process memory. It backs local runs
// (STORAGE_DRIVER=memory) and follows the same contracts as the DynamoDB repositories.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/usecase/interfaces"
)

var ErrAlreadyExists = errors.New("record already exists")

type JobStore struct {
	mu   sync.Mutex
	jobs map[string]entities.Job
}

var _ interfaces.IJobRepository = (*JobStore)(nil)

func NewJobStore() *JobStore {
	return &JobStore{jobs: map[string]entities.Job{}}
}

func (s *JobStore) Create(_ context.Context, job entities.Job) (entities.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[job.ID]; ok {
		return entities.Job{}, ErrAlreadyExists
	}
	job = job.Clone()
	job.Version = 1
	s.jobs[job.ID] = job
	return job.Clone(), nil
}

func (s *JobStore) GetByID(_ context.Context, id string) (entities.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return entities.Job{}, nil
	}
	return job.Clone(), nil
}

// Update holds the store lock while the mutator runs, so updates of a job are serialized.
func (s *JobStore) Update(ctx context.Context, id string, mutate interfaces.JobMutator) (entities.Job, error) {
	if err := ctx.Err(); err != nil {
		return entities.Job{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.jobs[id]
	if !ok {
		return entities.Job{}, nil
	}
	next, err := mutate(current.Clone())
	if err != nil {
		return entities.Job{}, err
	}
	next.ID = current.ID
	next.Version = current.Version + 1
	s.jobs[id] = next.Clone()
	return next, nil
}

func (s *JobStore) List(_ context.Context, filter interfaces.JobFilter) ([]entities.Job, error) {
	s.mu.Lock()
	out := make([]entities.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		if filter.CustomerID != "" && job.CustomerID != filter.CustomerID {
			continue
		}
		if filter.TechnicianID != "" && job.TechnicianID != filter.TechnicianID {
			continue
		}
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		out = append(out, job.Clone())
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

type OrderStore struct {
	mu     sync.Mutex
	orders map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderStore)(nil)

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: map[string]entities.Order{}}
}

func (s *OrderStore) Create(_ context.Context, order entities.Order) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[order.ID]; ok {
		return entities.Order{}, ErrAlreadyExists
	}
	order = order.Clone()
	order.Version = 1
	s.orders[order.ID] = order
	return order.Clone(), nil
}

func (s *OrderStore) GetByID(_ context.Context, id string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return order.Clone(), nil
}

func (s *OrderStore) Update(ctx context.Context, id string, mutate interfaces.OrderMutator) (entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return entities.Order{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	next, err := mutate(current.Clone())
	if err != nil {
		return entities.Order{}, err
	}
	next.ID = current.ID
	next.Version = current.Version + 1
	s.orders[id] = next.Clone()
	return next, nil
}

func (s *OrderStore) List(_ context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	s.mu.Lock()
	out := make([]entities.Order, 0, len(s.orders))
	for _, order := range s.orders {
		switch {
		case filter.SupplierID != "" && order.SupplierID != filter.SupplierID,
			filter.RequesterID != "" && order.RequesterID != filter.RequesterID,
			filter.JobID != "" && order.JobID != filter.JobID,
			filter.Type != "" && order.Type != filter.Type,
			filter.Status != "" && order.Status != filter.Status:
			continue
		}
		out = append(out, order.Clone())
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

type PaymentStore struct {
	mu       sync.RWMutex
	payments map[string]entities.Payment
}

var _ interfaces.IPaymentRepository = (*PaymentStore)(nil)

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{payments: map[string]entities.Payment{}}
}

func (s *PaymentStore) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[p.ID]; ok {
		return entities.Payment{}, ErrAlreadyExists
	}
	s.payments[p.ID] = p
	return p, nil
}

func (s *PaymentStore) GetByID(_ context.Context, id string) (entities.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payments[id], nil
}

func (s *PaymentStore) ListByJobID(_ context.Context, jobID string) ([]entities.Payment, error) {
	s.mu.RLock()
	out := make([]entities.Payment, 0)
	for _, p := range s.payments {
		if p.JobID == jobID {
			out = append(out, p)
		}
	}
	s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
