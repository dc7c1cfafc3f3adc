package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/domain/lifecycle"
	"autocare_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound               = fmt.Errorf("job %w", lifecycle.ErrNotFound)
	ErrInvalidJobID              = errors.New("invalid job id")
	ErrNotVisible                = fmt.Errorf("%w: resource not visible to actor", lifecycle.ErrForbidden)
	ErrHistoryTampered           = errors.New("job history hash chain is broken")
	ErrMediaStorageNotConfigured = errors.New("media storage not configured")
	ErrAttachmentTooLarge        = errors.New("attachment too large")
)

const (
	defaultListLimit = 50
	maxListLimit     = 200

	// MaxAttachmentSize bounds photo and voice-note uploads.
	MaxAttachmentSize = 20 << 20
)

// Attachment is a file uploaded for a job.
type Attachment struct {
	Kind        lifecycle.AttachmentKind
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// IJobUseCase exposes the service-request lifecycle.
//
// Every mutation runs the lifecycle reducer inside IJobRepository.Update, so the
// read-modify-write of a job is atomic and concurrent commands never lose a write.

type IJobUseCase interface {
	CreateJob(ctx context.Context, actor entities.Actor, cmd lifecycle.CreateJob) (entities.Job, error)
	Accept(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.AcceptJob) (entities.Job, error)
	Arrive(ctx context.Context, actor entities.Actor, id string) (entities.Job, error)
	SendQuote(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.SendQuote) (entities.Job, error)
	RespondQuote(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.RespondQuote) (entities.Job, error)
	SubmitPartRequest(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.SubmitPartRequest) (entities.Job, entities.Order, error)
	SendBill(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.SendBill) (entities.Job, error)
	RespondBill(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.RespondBill, paymentPayload json.RawMessage) (entities.Job, error)
	ConfirmCashPayment(ctx context.Context, actor entities.Actor, id string) (entities.Job, error)
	Cancel(ctx context.Context, actor entities.Actor, id string, reason string) (entities.Job, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, id string, target entities.JobStatus) (entities.Job, error)
	AddAttachment(ctx context.Context, actor entities.Actor, id string, file Attachment) (entities.Job, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Job, error)
	History(ctx context.Context, actor entities.Actor, id string) ([]entities.StatusChange, error)
	List(ctx context.Context, actor entities.Actor, filter interfaces.JobFilter) ([]entities.Job, error)
}

type JobUseCase struct {
	repo     interfaces.IJobRepository
	orders   interfaces.IOrderRepository
	payments IBillPaymentUseCase
	media    interfaces.IMediaStorage
	events   interfaces.IJobEventPublisher
	now      func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(
	repo interfaces.IJobRepository,
	orders interfaces.IOrderRepository,
	payments IBillPaymentUseCase,
	media interfaces.IMediaStorage,
	events interfaces.IJobEventPublisher,
) *JobUseCase {
	return &JobUseCase{
		repo:     repo,
		orders:   orders,
		payments: payments,
		media:    media,
		events:   events,
		now:      time.Now,
	}
}

func (u *JobUseCase) CreateJob(ctx context.Context, actor entities.Actor, cmd lifecycle.CreateJob) (entities.Job, error) {
	job, err := lifecycle.NewJob(uuid.NewString(), cmd, actor, u.now())
	if err != nil {
		log.Printf("[job][usecase] create rejected actor_id=%s err=%v", actor.ID, err)
		return entities.Job{}, err
	}
	created, err := u.repo.Create(ctx, job)
	if err != nil {
		log.Printf("[job][usecase] create failed job_id=%s err=%v", job.ID, err)
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] create success job_id=%s customer_id=%s vehicle_id=%s", created.ID, created.CustomerID, created.VehicleID)
	u.publish(ctx, entities.JobEventCreated, string(lifecycle.KindCreate), created)
	return created, nil
}

func (u *JobUseCase) Accept(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.AcceptJob) (entities.Job, error) {
	res, err := u.apply(ctx, actor, id, cmd)
	return res.Job, err
}

func (u *JobUseCase) Arrive(ctx context.Context, actor entities.Actor, id string) (entities.Job, error) {
	res, err := u.apply(ctx, actor, id, lifecycle.ArriveJob{})
	return res.Job, err
}

func (u *JobUseCase) SendQuote(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.SendQuote) (entities.Job, error) {
	res, err := u.apply(ctx, actor, id, cmd)
	return res.Job, err
}

func (u *JobUseCase) RespondQuote(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.RespondQuote) (entities.Job, error) {
	res, err := u.apply(ctx, actor, id, cmd)
	return res.Job, err
}

// SubmitPartRequest moves the job to parts_ordered and then stores the supplier order it
// raised. The job is written first so a supplier never sees an order for a job that
// refused the request. When the order cannot be stored the job goes back to
// parts_required.
func (u *JobUseCase) SubmitPartRequest(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.SubmitPartRequest) (entities.Job, entities.Order, error) {
	cmd.OrderID = uuid.NewString()
	res, err := u.apply(ctx, actor, id, cmd)
	if err != nil {
		return entities.Job{}, entities.Order{}, err
	}
	if res.Order == nil {
		return res.Job, entities.Order{}, nil
	}
	order, err := u.orders.Create(ctx, *res.Order)
	if err != nil {
		log.Printf("[job][usecase] part order create failed job_id=%s order_id=%s err=%v", res.Job.ID, res.Order.ID, err)
		u.revertPartRequest(ctx, actor, res.Job.ID, res.Order.ID)
		return entities.Job{}, entities.Order{}, err
	}
	log.Printf("[job][usecase] part order created job_id=%s order_id=%s supplier_id=%s amount=%.2f", res.Job.ID, order.ID, order.SupplierID, order.Amount)
	return res.Job, order, nil
}

func (u *JobUseCase) revertPartRequest(ctx context.Context, actor entities.Actor, id, orderID string) {
	job, err := u.mutate(ctx, id, string(lifecycle.KindPartRequestReverted), func(current entities.Job) (entities.Job, error) {
		return lifecycle.RevertPartRequest(current, orderID, actor, u.now())
	})
	if err != nil {
		log.Printf("[job][usecase] job left pointing at missing order job_id=%s order_id=%s err=%v", id, orderID, err)
		return
	}
	u.publish(ctx, entities.JobEventUpdated, string(lifecycle.KindPartRequestReverted), job)
}

func (u *JobUseCase) SendBill(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.SendBill) (entities.Job, error) {
	res, err := u.apply(ctx, actor, id, cmd)
	return res.Job, err
}

// RespondBill resolves the pending bill. An online approval first reserves the bill
// inside the job update, so only one caller reaches the provider, then charges it and
// completes the job once the provider approved the payment. A failed charge releases the
// reservation.
func (u *JobUseCase) RespondBill(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.RespondBill, paymentPayload json.RawMessage) (entities.Job, error) {
	online := cmd.Decision == lifecycle.DecisionApprove && cmd.PaymentMethod == entities.PaymentMethodOnline
	if !online {
		res, err := u.apply(ctx, actor, id, cmd)
		return res.Job, err
	}
	if u.payments == nil {
		return entities.Job{}, ErrPaymentGatewayNotConfigured
	}

	job, err := u.mutate(ctx, id, "reserve_charge", func(current entities.Job) (entities.Job, error) {
		return lifecycle.ReserveOnlineCharge(current, cmd, actor, u.now())
	})
	if err != nil {
		return entities.Job{}, err
	}
	payment, err := u.payments.ChargeOnline(ctx, job, paymentPayload)
	if err != nil {
		u.releaseCharge(ctx, job.ID)
		return entities.Job{}, err
	}

	cmd.PaymentReference = payment.ID
	res, err := u.apply(ctx, actor, job.ID, cmd)
	if err != nil {
		log.Printf("[job][usecase] payment captured but bill not settled job_id=%s payment_id=%s err=%v", job.ID, payment.ID, err)
		return entities.Job{}, err
	}
	return res.Job, nil
}

func (u *JobUseCase) releaseCharge(ctx context.Context, id string) {
	if _, err := u.mutate(ctx, id, "release_charge", func(current entities.Job) (entities.Job, error) {
		return lifecycle.ReleaseOnlineCharge(current, u.now())
	}); err != nil {
		log.Printf("[job][usecase] bill left charging job_id=%s err=%v", id, err)
	}
}

func (u *JobUseCase) ConfirmCashPayment(ctx context.Context, actor entities.Actor, id string) (entities.Job, error) {
	res, err := u.apply(ctx, actor, id, lifecycle.ConfirmCashPayment{})
	if err != nil {
		return entities.Job{}, err
	}
	if u.payments != nil {
		if _, err := u.payments.RecordCash(ctx, res.Job); err != nil {
			log.Printf("[job][usecase] cash payment not recorded job_id=%s err=%v", res.Job.ID, err)
		}
	}
	return res.Job, nil
}

func (u *JobUseCase) Cancel(ctx context.Context, actor entities.Actor, id string, reason string) (entities.Job, error) {
	res, err := u.apply(ctx, actor, id, lifecycle.CancelJob{Reason: reason})
	return res.Job, err
}

func (u *JobUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, id string, target entities.JobStatus) (entities.Job, error) {
	res, err := u.apply(ctx, actor, id, lifecycle.UpdateStatus{Target: target})
	return res.Job, err
}

func (u *JobUseCase) AddAttachment(ctx context.Context, actor entities.Actor, id string, file Attachment) (entities.Job, error) {
	if file.Body == nil || file.Size <= 0 {
		return entities.Job{}, &lifecycle.ValidationError{Field: "file", Reason: "is required"}
	}
	if file.Size > MaxAttachmentSize {
		return entities.Job{}, ErrAttachmentTooLarge
	}
	job, err := u.load(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if err := lifecycle.CanAttach(job, file.Kind, actor); err != nil {
		return entities.Job{}, err
	}
	if u.media == nil {
		return entities.Job{}, ErrMediaStorageNotConfigured
	}

	key := fmt.Sprintf("jobs/%s/%s/%s%s", job.ID, file.Kind, uuid.NewString(), strings.ToLower(path.Ext(file.FileName)))
	url, err := u.media.Upload(ctx, key, file.ContentType, file.Size, file.Body)
	if err != nil {
		log.Printf("[job][usecase] attachment upload failed job_id=%s key=%s err=%v", job.ID, key, err)
		return entities.Job{}, err
	}

	updated, err := u.repo.Update(ctx, job.ID, func(current entities.Job) (entities.Job, error) {
		return lifecycle.Attach(current, file.Kind, url, actor, u.now())
	})
	if err != nil {
		log.Printf("[job][usecase] attachment not linked job_id=%s key=%s err=%v", job.ID, key, err)
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[job][usecase] attachment success job_id=%s kind=%s key=%s", updated.ID, file.Kind, key)
	u.publish(ctx, entities.JobEventUpdated, "attach", updated)
	return updated, nil
}

func (u *JobUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Job, error) {
	job, err := u.load(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if !job.VisibleTo(actor) {
		return entities.Job{}, ErrNotVisible
	}
	return job, nil
}

// History returns the job's status changes. The entries are returned together with
// ErrHistoryTampered when the hash chain does not verify.
func (u *JobUseCase) History(ctx context.Context, actor entities.Actor, id string) ([]entities.StatusChange, error) {
	job, err := u.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if broken := lifecycle.VerifyHistory(job); broken != 0 {
		log.Printf("[job][usecase] history verification failed job_id=%s seq=%d", job.ID, broken)
		return job.History, fmt.Errorf("%w: entry %d", ErrHistoryTampered, broken)
	}
	return job.History, nil
}

func (u *JobUseCase) List(ctx context.Context, actor entities.Actor, filter interfaces.JobFilter) ([]entities.Job, error) {
	switch actor.Role {
	case entities.RoleAdmin:
	case entities.RoleCustomer:
		filter.CustomerID = actor.ID
	case entities.RoleTechnician:
		// Technicians browse open jobs or work on their own.
		if filter.Status != entities.JobStatusPending || filter.TechnicianID != "" {
			filter.TechnicianID = actor.ID
		}
	default:
		return nil, ErrNotVisible
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, &lifecycle.ValidationError{Field: "status", Reason: "is not a known status"}
	}
	filter.Limit = clampLimit(filter.Limit)

	jobs, err := u.repo.List(ctx, filter)
	if err != nil {
		log.Printf("[job][usecase] list failed actor_id=%s err=%v", actor.ID, err)
		return nil, err
	}
	out := make([]entities.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.VisibleTo(actor) {
			out = append(out, job)
		}
	}
	return out, nil
}

func (u *JobUseCase) apply(ctx context.Context, actor entities.Actor, id string, cmd lifecycle.Command) (lifecycle.Result, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return lifecycle.Result{}, ErrInvalidJobID
	}
	log.Printf("[job][usecase] %s start job_id=%s actor_id=%s role=%s", cmd.Kind(), id, actor.ID, actor.Role)

	var res lifecycle.Result
	updated, err := u.repo.Update(ctx, id, func(current entities.Job) (entities.Job, error) {
		r, err := lifecycle.Apply(current, cmd, actor, u.now())
		if err != nil {
			return entities.Job{}, err
		}
		res = r
		return r.Job, nil
	})
	if err != nil {
		log.Printf("[job][usecase] %s failed job_id=%s err=%v", cmd.Kind(), id, err)
		return lifecycle.Result{}, err
	}
	if updated.ID == "" {
		log.Printf("[job][usecase] %s not found job_id=%s", cmd.Kind(), id)
		return lifecycle.Result{}, ErrJobNotFound
	}
	res.Job = updated
	log.Printf("[job][usecase] %s success job_id=%s status=%s version=%d", cmd.Kind(), updated.ID, updated.Status, updated.Version)
	u.publish(ctx, entities.JobEventUpdated, string(cmd.Kind()), updated)
	return res, nil
}

// mutate runs a mutation that is not a lifecycle command, so it neither publishes nor
// adds history.
func (u *JobUseCase) mutate(ctx context.Context, id, op string, fn interfaces.JobMutator) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	updated, err := u.repo.Update(ctx, id, fn)
	if err != nil {
		log.Printf("[job][usecase] %s failed job_id=%s err=%v", op, id, err)
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[job][usecase] %s success job_id=%s version=%d", op, updated.ID, updated.Version)
	return updated, nil
}

func (u *JobUseCase) load(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobUseCase) publish(ctx context.Context, eventType, command string, job entities.Job) {
	publishJobEvent(ctx, u.events, eventType, command, job, u.now())
}

func publishJobEvent(ctx context.Context, events interfaces.IJobEventPublisher, eventType, command string, job entities.Job, now time.Time) {
	if events == nil {
		return
	}
	events.Publish(ctx, entities.JobEvent{
		Type:    eventType,
		Command: command,
		JobID:   job.ID,
		Status:  job.Status,
		Job:     job,
		At:      now.UTC(),
	})
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
