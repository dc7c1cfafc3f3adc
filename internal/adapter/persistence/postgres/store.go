// Package postgres stores jobs and orders as JSONB documents next to the columns the
// list filters need. Update locks the row with SELECT ... FOR UPDATE for the whole
// read-modify-write.
package postgres

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

var ErrAlreadyExists = errors.New("record already exists")

const uniqueViolation = "23505"

// Migrate applies the embedded schema. It is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}

type JobStore struct {
	pool *pgxpool.Pool
}

var _ interfaces.IJobRepository = (*JobStore)(nil)

func NewJobStore(pool *pgxpool.Pool) *JobStore {
	return &JobStore{pool: pool}
}

func (s *JobStore) Create(ctx context.Context, job entities.Job) (entities.Job, error) {
	job = job.Clone()
	job.Version = 1
	doc, err := json.Marshal(job)
	if err != nil {
		return entities.Job{}, err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO jobs (id, customer_id, technician_id, status, version, created_at, doc)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, job.ID, job.CustomerID, nullIfEmpty(job.TechnicianID), string(job.Status), job.Version, job.CreatedAt, doc)
	if err != nil {
		return entities.Job{}, translate(err)
	}
	return job, nil
}

func (s *JobStore) GetByID(ctx context.Context, id string) (entities.Job, error) {
	return scanJob(s.pool.QueryRow(ctx, `SELECT doc FROM jobs WHERE id = $1`, id))
}

func (s *JobStore) Update(ctx context.Context, id string, mutate interfaces.JobMutator) (entities.Job, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return entities.Job{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	current, err := scanJob(tx.QueryRow(ctx, `SELECT doc FROM jobs WHERE id = $1 FOR UPDATE`, id))
	if err != nil || current.ID == "" {
		return entities.Job{}, err
	}

	next, err := mutate(current.Clone())
	if err != nil {
		return entities.Job{}, err
	}
	next.ID = current.ID
	next.Version = current.Version + 1

	doc, err := json.Marshal(next)
	if err != nil {
		return entities.Job{}, err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE jobs SET technician_id = $2, status = $3, version = $4, doc = $5 WHERE id = $1
	`, next.ID, nullIfEmpty(next.TechnicianID), string(next.Status), next.Version, doc); err != nil {
		return entities.Job{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Job{}, err
	}
	return next, nil
}

func (s *JobStore) List(ctx context.Context, filter interfaces.JobFilter) ([]entities.Job, error) {
	w := where{}
	w.eq("customer_id", filter.CustomerID)
	w.eq("technician_id", filter.TechnicianID)
	w.eq("status", string(filter.Status))

	rows, err := s.pool.Query(ctx, "SELECT doc FROM jobs"+w.sql()+" ORDER BY created_at DESC, id"+limit(filter.Limit), w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []entities.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

type OrderStore struct {
	pool *pgxpool.Pool
}

var _ interfaces.IOrderRepository = (*OrderStore)(nil)

func NewOrderStore(pool *pgxpool.Pool) *OrderStore {
	return &OrderStore{pool: pool}
}

func (s *OrderStore) Create(ctx context.Context, order entities.Order) (entities.Order, error) {
	order = order.Clone()
	order.Version = 1
	doc, err := json.Marshal(order)
	if err != nil {
		return entities.Order{}, err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO orders (id, supplier_id, requester_id, job_id, type, status, version, created_at, doc)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, order.ID, order.SupplierID, order.RequesterID, nullIfEmpty(order.JobID), string(order.Type), string(order.Status), order.Version, order.CreatedAt, doc)
	if err != nil {
		return entities.Order{}, translate(err)
	}
	return order, nil
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (entities.Order, error) {
	return scanOrder(s.pool.QueryRow(ctx, `SELECT doc FROM orders WHERE id = $1`, id))
}

func (s *OrderStore) Update(ctx context.Context, id string, mutate interfaces.OrderMutator) (entities.Order, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return entities.Order{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	current, err := scanOrder(tx.QueryRow(ctx, `SELECT doc FROM orders WHERE id = $1 FOR UPDATE`, id))
	if err != nil || current.ID == "" {
		return entities.Order{}, err
	}

	next, err := mutate(current.Clone())
	if err != nil {
		return entities.Order{}, err
	}
	next.ID = current.ID
	next.Version = current.Version + 1

	doc, err := json.Marshal(next)
	if err != nil {
		return entities.Order{}, err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE orders SET status = $2, version = $3, doc = $4 WHERE id = $1
	`, next.ID, string(next.Status), next.Version, doc); err != nil {
		return entities.Order{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Order{}, err
	}
	return next, nil
}

func (s *OrderStore) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	w := where{}
	w.eq("supplier_id", filter.SupplierID)
	w.eq("requester_id", filter.RequesterID)
	w.eq("job_id", filter.JobID)
	w.eq("type", string(filter.Type))
	w.eq("status", string(filter.Status))

	rows, err := s.pool.Query(ctx, "SELECT doc FROM orders"+w.sql()+" ORDER BY created_at DESC, id"+limit(filter.Limit), w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

type PaymentStore struct {
	pool *pgxpool.Pool
}

var _ interfaces.IPaymentRepository = (*PaymentStore)(nil)

func NewPaymentStore(pool *pgxpool.Pool) *PaymentStore {
	return &PaymentStore{pool: pool}
}

func (s *PaymentStore) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO payments (id, job_id, amount, method, status, paid_on, provider_payload_raw)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.ID, p.JobID, p.Amount, string(p.Method), string(p.Status), p.Date, []byte(p.ProviderPayloadRaw))
	if err != nil {
		return entities.Payment{}, translate(err)
	}
	return p, nil
}

const paymentColumns = `id, job_id, amount::float8, method, status, paid_on, provider_payload_raw`

func (s *PaymentStore) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	p, err := scanPayment(s.pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Payment{}, nil
	}
	return p, err
}

func (s *PaymentStore) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE job_id = $1 ORDER BY paid_on`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]entities.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func scanJob(row pgx.Row) (entities.Job, error) {
	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	var job entities.Job
	if err := json.Unmarshal(doc, &job); err != nil {
		return entities.Job{}, fmt.Errorf("decode job: %w", err)
	}
	return job, nil
}

func scanOrder(row pgx.Row) (entities.Order, error) {
	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	var order entities.Order
	if err := json.Unmarshal(doc, &order); err != nil {
		return entities.Order{}, fmt.Errorf("decode order: %w", err)
	}
	return order, nil
}

func scanPayment(row pgx.Row) (entities.Payment, error) {
	var (
		p      entities.Payment
		method string
		status string
		raw    []byte
	)
	if err := row.Scan(&p.ID, &p.JobID, &p.Amount, &method, &status, &p.Date, &raw); err != nil {
		return entities.Payment{}, err
	}
	p.Method = entities.PaymentMethod(method)
	p.Status = entities.PaymentStatus(status)
	if len(raw) > 0 {
		p.ProviderPayloadRaw = raw
		var parsed map[string]any
		if json.Unmarshal(raw, &parsed) == nil {
			p.ProviderPayload = parsed
		}
	}
	return p, nil
}

type where struct {
	clauses []string
	args    []any
}

func (w *where) eq(column, value string) {
	if value == "" {
		return
	}
	w.args = append(w.args, value)
	w.clauses = append(w.clauses, fmt.Sprintf("%s = $%d", column, len(w.args)))
}

func (w *where) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func limit(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d", n)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrAlreadyExists
	}
	return err
}
