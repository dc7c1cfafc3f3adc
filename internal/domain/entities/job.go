package entities

import "time"

// JobStatus represents the lifecycle of a service request (job).
//
// Domain notes:
//   - Statuses only move forward; completed and cancelled are terminal.
//   - Transitions are enforced by the lifecycle package, never by callers.

type JobStatus string

const (
	JobStatusPending        JobStatus = "pending"
	JobStatusAccepted       JobStatus = "accepted"
	JobStatusArrived        JobStatus = "arrived"
	JobStatusQuotePending   JobStatus = "quote_pending"
	JobStatusPartsRequired  JobStatus = "parts_required"
	JobStatusPartsOrdered   JobStatus = "parts_ordered"
	JobStatusInProgress     JobStatus = "in_progress"
	JobStatusBillingPending JobStatus = "billing_pending"
	JobStatusCompleted      JobStatus = "completed"
	JobStatusCancelled      JobStatus = "cancelled"
)

var jobStatuses = []JobStatus{
	JobStatusPending,
	JobStatusAccepted,
	JobStatusArrived,
	JobStatusQuotePending,
	JobStatusPartsRequired,
	JobStatusPartsOrdered,
	JobStatusInProgress,
	JobStatusBillingPending,
	JobStatusCompleted,
	JobStatusCancelled,
}

func (s JobStatus) Valid() bool {
	for _, st := range jobStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// ChargeStatus is shared by quotes and bills.
type ChargeStatus string

const (
	ChargeStatusPending  ChargeStatus = "pending"
	ChargeStatusApproved ChargeStatus = "approved"
	ChargeStatusRejected ChargeStatus = "rejected"
	ChargeStatusPaid     ChargeStatus = "paid"

	// ChargeStatusCharging marks a bill whose online payment is in flight at the provider.
	ChargeStatusCharging ChargeStatus = "charging"
)

type PartsSource string

const (
	PartsSourceCustomer   PartsSource = "customer"
	PartsSourceTechnician PartsSource = "technician"
)

type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCash   PaymentMethod = "cash"
)

// LineItem is a single priced entry of a quote or bill.
// Total defaults to Quantity * UnitPrice when not given.
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity,omitempty"`
	UnitPrice float64 `json:"unit_price,omitempty"`
	Total     float64 `json:"total"`
}

// Quote is the technician's proposed cost before work begins.
type Quote struct {
	Items       []LineItem   `json:"items"`
	LaborAmount float64      `json:"labor_amount"`
	TotalAmount float64      `json:"total_amount"`
	Status      ChargeStatus `json:"status"`
	IssuedAt    time.Time    `json:"issued_at"`
	RespondedAt *time.Time   `json:"responded_at,omitempty"`
}

// Bill is the technician's final invoice.
//
// A bill approved for cash stays pending until the technician confirms collection.
type Bill struct {
	Items            []LineItem    `json:"items"`
	LaborAmount      float64       `json:"labor_amount"`
	TotalAmount      float64       `json:"total_amount"`
	Status           ChargeStatus  `json:"status"`
	PaymentMethod    PaymentMethod `json:"payment_method,omitempty"`
	PaymentReference string        `json:"payment_reference,omitempty"`
	IssuedAt         time.Time     `json:"issued_at"`
	RespondedAt      *time.Time    `json:"responded_at,omitempty"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`
}

// StatusChange is one entry of a job's append-only history.
//
// Hash = sha256(prev_hash|job_id|command|from|to|at|seq), so a rewritten entry
// breaks every hash after it.
type StatusChange struct {
	Seq       int       `json:"seq"`
	Command   string    `json:"command"`
	From      JobStatus `json:"from,omitempty"`
	To        JobStatus `json:"to"`
	ActorID   string    `json:"actor_id"`
	ActorRole Role      `json:"actor_role"`
	Note      string    `json:"note,omitempty"`
	At        time.Time `json:"at"`
	PrevHash  string    `json:"prev_hash"`
	Hash      string    `json:"hash"`
}

// Job is a customer's service request.
//
// Storage model:
//   - PK: id
//   - GSI customer_id-index: customer_id
//   - GSI technician_id-index: technician_id (sparse, set once accepted)
//
// Version is bumped by the repository on every update and backs optimistic locking.
type Job struct {
	ID             string         `json:"id"`
	CustomerID     string         `json:"customer_id"`
	CustomerPhone  string         `json:"customer_phone,omitempty"`
	VehicleID      string         `json:"vehicle_id"`
	Description    string         `json:"description"`
	Address        string         `json:"address,omitempty"`
	Status         JobStatus      `json:"status"`
	TechnicianID   string         `json:"technician_id,omitempty"`
	TechnicianName string         `json:"technician_name,omitempty"`
	GarageName     string         `json:"garage_name,omitempty"`
	Photos         []string       `json:"photos,omitempty"`
	VoiceNote      string         `json:"voice_note,omitempty"`
	Quote          *Quote         `json:"quote,omitempty"`
	Bill           *Bill          `json:"bill,omitempty"`
	PartsSource    PartsSource    `json:"parts_source,omitempty"`
	PartsOrderID   string         `json:"parts_order_id,omitempty"`
	CancelReason   string         `json:"cancel_reason,omitempty"`
	History        []StatusChange `json:"history,omitempty"`
	Version        int64          `json:"version"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
}

// Clone returns a deep copy so reducers and stores never share slices or pointers.
func (j Job) Clone() Job {
	out := j
	if j.Photos != nil {
		out.Photos = append([]string(nil), j.Photos...)
	}
	if j.History != nil {
		out.History = append([]StatusChange(nil), j.History...)
	}
	if j.Quote != nil {
		q := *j.Quote
		q.Items = append([]LineItem(nil), j.Quote.Items...)
		q.RespondedAt = cloneTime(j.Quote.RespondedAt)
		out.Quote = &q
	}
	if j.Bill != nil {
		b := *j.Bill
		b.Items = append([]LineItem(nil), j.Bill.Items...)
		b.RespondedAt = cloneTime(j.Bill.RespondedAt)
		b.PaidAt = cloneTime(j.Bill.PaidAt)
		out.Bill = &b
	}
	out.CompletedAt = cloneTime(j.CompletedAt)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
