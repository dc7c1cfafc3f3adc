package lifecycle

import (
	"strings"
	"time"

	"autocare_api/internal/domain/entities"
)

// Result is the outcome of applying a command to a job.
// Order is set when the command raised a supplier order (part request).
type Result struct {
	Job   entities.Job
	Order *entities.Order
}

// NewJob builds a pending job for the customer issuing cmd.
func NewJob(id string, cmd CreateJob, actor entities.Actor, now time.Time) (entities.Job, error) {
	if actor.ID == "" || (actor.Role != entities.RoleCustomer && !actor.IsAdmin()) {
		return entities.Job{}, forbidden(string(KindCreate), "only customers create jobs")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, invalid("id", "is required")
	}
	vehicleID := strings.TrimSpace(cmd.VehicleID)
	if vehicleID == "" {
		return entities.Job{}, invalid("vehicle_id", "is required")
	}
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		return entities.Job{}, invalid("description", "is required")
	}

	now = now.UTC()
	job := entities.Job{
		ID:            id,
		CustomerID:    actor.ID,
		CustomerPhone: strings.TrimSpace(cmd.CustomerPhone),
		VehicleID:     vehicleID,
		Description:   description,
		Address:       strings.TrimSpace(cmd.Address),
		Status:        entities.JobStatusPending,
		Photos:        compactStrings(cmd.Photos),
		VoiceNote:     strings.TrimSpace(cmd.VoiceNote),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	appendHistory(&job, KindCreate, "", actor, "", now)
	return job, nil
}

// CanApply runs every check Apply would run without producing a new job.
func CanApply(job entities.Job, cmd Command, actor entities.Actor) error {
	return check(job, cmd, actor)
}

// Apply validates cmd against the transition table and returns the job it produces.
// The input job is never modified.
func Apply(job entities.Job, cmd Command, actor entities.Actor, now time.Time) (Result, error) {
	if err := check(job, cmd, actor); err != nil {
		return Result{}, err
	}

	now = now.UTC()
	next := job.Clone()
	from := job.Status
	note := ""
	var order *entities.Order

	switch c := cmd.(type) {
	case AcceptJob:
		next.Status = entities.JobStatusAccepted
		next.TechnicianID = actor.ID
		next.TechnicianName = strings.TrimSpace(c.TechnicianName)
		next.GarageName = strings.TrimSpace(c.GarageName)

	case ArriveJob:
		next.Status = entities.JobStatusArrived

	case SendQuote:
		items, _ := normalizeLineItems("items", c.Items)
		next.Quote = &entities.Quote{
			Items:       items,
			LaborAmount: roundCents(c.Labor),
			TotalAmount: ComputeTotal(items, c.Labor),
			Status:      entities.ChargeStatusPending,
			IssuedAt:    now,
		}
		next.Status = entities.JobStatusQuotePending

	case RespondQuote:
		next.Quote.RespondedAt = &now
		if c.Decision == DecisionReject {
			next.Quote.Status = entities.ChargeStatusRejected
			next.Status = entities.JobStatusCancelled
			next.CancelReason = "quote rejected"
			break
		}
		next.Quote.Status = entities.ChargeStatusApproved
		next.PartsSource = c.PartsSource
		if next.PartsSource == "" {
			next.PartsSource = entities.PartsSourceTechnician
		}
		if next.PartsSource == entities.PartsSourceCustomer {
			next.Status = entities.JobStatusInProgress
		} else {
			next.Status = entities.JobStatusPartsRequired
		}

	case SubmitPartRequest:
		built, err := buildPartsOrder(job, c, actor, now)
		if err != nil {
			return Result{}, err
		}
		order = &built
		next.PartsOrderID = built.ID
		next.Status = entities.JobStatusPartsOrdered

	case SendBill:
		items, _ := normalizeLineItems("items", c.Items)
		next.Bill = &entities.Bill{
			Items:       items,
			LaborAmount: roundCents(c.Labor),
			TotalAmount: ComputeTotal(items, c.Labor),
			Status:      entities.ChargeStatusPending,
			IssuedAt:    now,
		}
		next.Status = entities.JobStatusBillingPending

	case RespondBill:
		next.Bill.RespondedAt = &now
		switch {
		case c.Decision == DecisionReject:
			next.Bill.Status = entities.ChargeStatusRejected
		case c.PaymentMethod == entities.PaymentMethodCash:
			next.Bill.Status = entities.ChargeStatusPending
			next.Bill.PaymentMethod = entities.PaymentMethodCash
			note = "awaiting cash collection"
		default:
			if strings.TrimSpace(c.PaymentReference) == "" {
				return Result{}, invalid("payment_reference", "is required for online payment")
			}
			next.Bill.PaymentMethod = entities.PaymentMethodOnline
			next.Bill.PaymentReference = strings.TrimSpace(c.PaymentReference)
			markPaid(&next, now)
		}

	case ConfirmCashPayment:
		markPaid(&next, now)

	case CancelJob:
		next.Status = entities.JobStatusCancelled
		next.CancelReason = strings.TrimSpace(c.Reason)
		note = next.CancelReason

	case UpdateStatus:
		if c.Target == entities.JobStatusCompleted {
			markPaid(&next, now)
		} else {
			next.Status = c.Target
		}
		if c.Target == entities.JobStatusCancelled {
			next.CancelReason = "cancelled by admin"
		}
	}

	next.UpdatedAt = now
	appendHistory(&next, cmd.Kind(), from, actor, note, now)
	return Result{Job: next, Order: order}, nil
}

func markPaid(job *entities.Job, now time.Time) {
	if job.Bill != nil {
		job.Bill.Status = entities.ChargeStatusPaid
		job.Bill.PaidAt = &now
	}
	job.Status = entities.JobStatusCompleted
	job.CompletedAt = &now
}

func check(job entities.Job, cmd Command, actor entities.Actor) error {
	if cmd == nil {
		return invalid("command", "is required")
	}
	kind := cmd.Kind()
	if kind == KindCreate {
		return &TransitionError{Command: string(kind), From: string(job.Status), Reason: "job already exists"}
	}
	if !ValidTransition(kind, job.Status) {
		return &TransitionError{Command: string(kind), From: string(job.Status)}
	}
	if err := checkActor(job, kind, actor); err != nil {
		return err
	}
	if chargeInFlight(job) && kind != KindRespondBill && !actor.IsAdmin() {
		return &TransitionError{Command: string(kind), From: string(job.Status), Reason: "bill payment in progress"}
	}
	return checkCommand(job, cmd)
}

func checkCommand(job entities.Job, cmd Command) error {
	kind := string(cmd.Kind())
	from := string(job.Status)

	switch c := cmd.(type) {
	case SendQuote:
		if len(c.Items) == 0 {
			return invalid("items", "must not be empty")
		}
		if c.Labor < 0 {
			return invalid("labor", "must not be negative")
		}
		if _, err := normalizeLineItems("items", c.Items); err != nil {
			return err
		}

	case RespondQuote:
		if c.Decision != DecisionApprove && c.Decision != DecisionReject {
			return invalid("response", "must be approve or reject")
		}
		switch c.PartsSource {
		case "", entities.PartsSourceCustomer, entities.PartsSourceTechnician:
		default:
			return invalid("parts_source", "must be customer or technician")
		}
		if job.Quote == nil || job.Quote.Status != entities.ChargeStatusPending {
			return &TransitionError{Command: kind, From: from, Reason: "no pending quote"}
		}

	case SubmitPartRequest:
		if strings.TrimSpace(c.OrderID) == "" {
			return invalid("order_id", "is required")
		}
		if strings.TrimSpace(c.SupplierID) == "" {
			return invalid("supplier_id", "is required")
		}
		if _, err := normalizeOrderItems(c.Items); err != nil {
			return err
		}
		if c.Urgency != "" && c.Urgency != entities.UrgencyNormal && c.Urgency != entities.UrgencyUrgent {
			return invalid("urgency", "must be normal or urgent")
		}

	case SendBill:
		if len(c.Items) == 0 && c.Labor <= 0 {
			return invalid("items", "bill needs items or labor")
		}
		if c.Labor < 0 {
			return invalid("labor", "must not be negative")
		}
		if _, err := normalizeLineItems("items", c.Items); err != nil {
			return err
		}
		if job.Status == entities.JobStatusBillingPending && (job.Bill == nil || job.Bill.Status != entities.ChargeStatusRejected) {
			return &TransitionError{Command: kind, From: from, Reason: "active bill already issued"}
		}

	case RespondBill:
		if c.Decision != DecisionApprove && c.Decision != DecisionReject {
			return invalid("response", "must be approve or reject")
		}
		if c.Decision == DecisionApprove && c.PaymentMethod != entities.PaymentMethodOnline && c.PaymentMethod != entities.PaymentMethodCash {
			return invalid("payment_method", "must be online or cash")
		}
		if job.Bill == nil {
			return &TransitionError{Command: kind, From: from, Reason: "no pending bill"}
		}
		switch job.Bill.Status {
		case entities.ChargeStatusPending:
		case entities.ChargeStatusCharging:
			// Only the settlement of the reserved charge may resolve the bill.
			settles := c.Decision == DecisionApprove && c.PaymentMethod == entities.PaymentMethodOnline && strings.TrimSpace(c.PaymentReference) != ""
			if !settles {
				return &TransitionError{Command: kind, From: from, Reason: "bill payment in progress"}
			}
		default:
			return &TransitionError{Command: kind, From: from, Reason: "no pending bill"}
		}

	case ConfirmCashPayment:
		if job.Bill == nil || job.Bill.Status != entities.ChargeStatusPending || job.Bill.PaymentMethod != entities.PaymentMethodCash {
			return &TransitionError{Command: kind, From: from, Reason: "bill is not awaiting cash"}
		}

	case UpdateStatus:
		if !c.Target.Valid() {
			return invalid("status", "is not a known status")
		}
		if !canReach(job.Status, c.Target) {
			return &TransitionError{Command: kind, From: from, Reason: "cannot move to " + string(c.Target)}
		}
	}
	return nil
}

func buildPartsOrder(job entities.Job, c SubmitPartRequest, actor entities.Actor, now time.Time) (entities.Order, error) {
	location := strings.TrimSpace(c.Location)
	if location == "" {
		location = job.Address
	}
	return NewOrder(strings.TrimSpace(c.OrderID), OrderDraft{
		Type:       entities.OrderTypeWholesale,
		SupplierID: c.SupplierID,
		JobID:      job.ID,
		Items:      c.Items,
		Urgency:    c.Urgency,
		Location:   location,
	}, actor, now)
}

func compactStrings(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
